package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shivam970806/VMS/domain"
	"github.com/shivam970806/VMS/domain/model"
	"github.com/shivam970806/VMS/domain/repository"
	"github.com/shivam970806/VMS/pkg/logger"
)

// purchaseOrderRepository implements the PurchaseOrder repository interface using GORM
type purchaseOrderRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewPurchaseOrderRepository creates a new instance of purchaseOrderRepository
func NewPurchaseOrderRepository(db *gorm.DB, logger logger.LoggerInterface) repository.PurchaseOrder {
	return &purchaseOrderRepository{
		db:     db,
		logger: logger,
	}
}

// Create adds a new purchase order. The vendor association is never upserted.
func (r *purchaseOrderRepository) Create(ctx context.Context, order *model.PurchaseOrder) error {
	r.logger.InfoContext(ctx, "Creating purchase order", "poNumber", order.PONumber, "vendorID", order.VendorID)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(order).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create purchase order", "poNumber", order.PONumber, "error", err)
		return fmt.Errorf("failed to create purchase order: %w", err)
	}
	r.logger.InfoContext(ctx, "Purchase order created successfully", "poNumber", order.PONumber)
	return nil
}

// Save writes every column of an existing purchase order
func (r *purchaseOrderRepository) Save(ctx context.Context, order *model.PurchaseOrder) error {
	r.logger.InfoContext(ctx, "Saving purchase order", "poNumber", order.PONumber, "status", order.Status)
	if err := conn(ctx, r.db).Omit(clause.Associations).Save(order).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to save purchase order", "poNumber", order.PONumber, "error", err)
		return fmt.Errorf("failed to save purchase order: %w", err)
	}
	r.logger.InfoContext(ctx, "Purchase order saved successfully", "poNumber", order.PONumber)
	return nil
}

// GetByPONumber retrieves an order with its vendor
func (r *purchaseOrderRepository) GetByPONumber(ctx context.Context, poNumber string) (*model.PurchaseOrder, error) {
	r.logger.InfoContext(ctx, "Getting purchase order", "poNumber", poNumber)
	var order model.PurchaseOrder
	if err := conn(ctx, r.db).Preload("Vendor").Where("po_number = ?", poNumber).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.WarnContext(ctx, "Purchase order not found", "poNumber", poNumber)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get purchase order", "poNumber", poNumber, "error", err)
		return nil, fmt.Errorf("failed to get purchase order: %w", err)
	}
	return &order, nil
}

// GetLatestByVendor retrieves the vendor's most recent order by order date.
// Orders sharing an order date are broken by the highest PO number.
func (r *purchaseOrderRepository) GetLatestByVendor(ctx context.Context, vendorID string) (*model.PurchaseOrder, error) {
	var order model.PurchaseOrder
	err := conn(ctx, r.db).
		Where("vendor_id = ?", vendorID).
		Order("order_date DESC").
		Order("created_at DESC").
		Order("po_number DESC").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get latest purchase order", "vendorID", vendorID, "error", err)
		return nil, fmt.Errorf("failed to get latest purchase order: %w", err)
	}
	return &order, nil
}

// ListByVendor retrieves every order of a vendor
func (r *purchaseOrderRepository) ListByVendor(ctx context.Context, vendorID string) ([]*model.PurchaseOrder, error) {
	var orders []*model.PurchaseOrder
	if err := conn(ctx, r.db).Where("vendor_id = ?", vendorID).Order("order_date ASC").Find(&orders).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list purchase orders by vendor", "vendorID", vendorID, "error", err)
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	return orders, nil
}

// List retrieves a paginated list of orders
func (r *purchaseOrderRepository) List(ctx context.Context, filter repository.PurchaseOrderFilter, offset, limit int) ([]*model.PurchaseOrder, int, error) {
	r.logger.InfoContext(ctx, "Listing purchase orders", "vendorID", filter.VendorID, "offset", offset, "limit", limit)
	var orders []*model.PurchaseOrder
	var total int64

	scoped := func() *gorm.DB {
		query := conn(ctx, r.db).Model(&model.PurchaseOrder{})
		if filter.VendorID != "" {
			query = query.Where("vendor_id = ?", filter.VendorID)
		}
		return query
	}

	if err := scoped().Count(&total).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to count purchase orders", "error", err)
		return nil, 0, fmt.Errorf("failed to count purchase orders: %w", err)
	}

	if err := scoped().Preload("Vendor").Order("order_date DESC").Order("po_number DESC").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list purchase orders", "offset", offset, "limit", limit, "error", err)
		return nil, 0, fmt.Errorf("failed to list purchase orders: %w", err)
	}

	r.logger.InfoContext(ctx, "Purchase orders listed successfully", "count", len(orders), "total", total)
	return orders, int(total), nil
}

// Delete removes a purchase order
func (r *purchaseOrderRepository) Delete(ctx context.Context, poNumber string) error {
	r.logger.InfoContext(ctx, "Deleting purchase order", "poNumber", poNumber)
	result := conn(ctx, r.db).Delete(&model.PurchaseOrder{}, "po_number = ?", poNumber)
	if result.Error != nil {
		r.logger.ErrorContext(ctx, "Failed to delete purchase order", "poNumber", poNumber, "error", result.Error)
		return fmt.Errorf("failed to delete purchase order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "Purchase order not found for deletion", "poNumber", poNumber)
		return domain.ErrNotFound
	}
	r.logger.InfoContext(ctx, "Purchase order deleted successfully", "poNumber", poNumber)
	return nil
}

// DeleteByVendor removes every order of a vendor
func (r *purchaseOrderRepository) DeleteByVendor(ctx context.Context, vendorID string) error {
	r.logger.InfoContext(ctx, "Deleting purchase orders of vendor", "vendorID", vendorID)
	if err := conn(ctx, r.db).Where("vendor_id = ?", vendorID).Delete(&model.PurchaseOrder{}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete purchase orders of vendor", "vendorID", vendorID, "error", err)
		return fmt.Errorf("failed to delete purchase orders: %w", err)
	}
	return nil
}
