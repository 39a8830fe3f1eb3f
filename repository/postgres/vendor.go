package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shivam970806/VMS/domain"
	"github.com/shivam970806/VMS/domain/model"
	"github.com/shivam970806/VMS/domain/performance"
	"github.com/shivam970806/VMS/domain/repository"
	"github.com/shivam970806/VMS/pkg/logger"
)

// vendorRepository implements the Vendor repository interface using GORM
type vendorRepository struct {
	// db is the GORM database instance for database operations
	db *gorm.DB
	// logger is used for logging operations within the repository
	logger logger.LoggerInterface
}

// NewVendorRepository creates a new instance of vendorRepository
func NewVendorRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Vendor {
	return &vendorRepository{
		db:     db,
		logger: logger,
	}
}

// Create adds a new vendor to the database
func (r *vendorRepository) Create(ctx context.Context, vendor *model.Vendor) error {
	r.logger.InfoContext(ctx, "Creating vendor", "code", vendor.VendorCode)
	if err := conn(ctx, r.db).Create(vendor).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create vendor", "code", vendor.VendorCode, "error", err)
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	r.logger.InfoContext(ctx, "Vendor created successfully", "id", vendor.ID, "code", vendor.VendorCode)
	return nil
}

func (r *vendorRepository) getBy(ctx context.Context, db *gorm.DB, column, value string) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := db.Where(column+" = ?", value).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.WarnContext(ctx, "Vendor not found", column, value)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get vendor", column, value, "error", err)
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return &vendor, nil
}

// GetByID retrieves a vendor by its unique identifier
func (r *vendorRepository) GetByID(ctx context.Context, id string) (*model.Vendor, error) {
	r.logger.InfoContext(ctx, "Getting vendor by ID", "id", id)
	return r.getBy(ctx, conn(ctx, r.db), "id", id)
}

// GetByCode retrieves a vendor by its vendor code
func (r *vendorRepository) GetByCode(ctx context.Context, code string) (*model.Vendor, error) {
	r.logger.InfoContext(ctx, "Getting vendor by code", "code", code)
	return r.getBy(ctx, conn(ctx, r.db), "vendor_code", code)
}

// GetByName retrieves a vendor by its name
func (r *vendorRepository) GetByName(ctx context.Context, name string) (*model.Vendor, error) {
	r.logger.InfoContext(ctx, "Getting vendor by name", "name", name)
	return r.getBy(ctx, conn(ctx, r.db), "name", name)
}

// LockByID reads the vendor with SELECT ... FOR UPDATE. Must be called with a transaction context.
func (r *vendorRepository) LockByID(ctx context.Context, id string) (*model.Vendor, error) {
	r.logger.DebugContext(ctx, "Locking vendor row", "id", id)
	return r.getBy(ctx, conn(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), "id", id)
}

// List retrieves a paginated list of vendors
func (r *vendorRepository) List(ctx context.Context, offset, limit int) ([]*model.Vendor, int, error) {
	r.logger.InfoContext(ctx, "Listing vendors", "offset", offset, "limit", limit)
	var vendors []*model.Vendor
	var total int64

	db := conn(ctx, r.db)
	if err := db.Model(&model.Vendor{}).Count(&total).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to count vendors", "error", err)
		return nil, 0, fmt.Errorf("failed to count vendors: %w", err)
	}

	if err := db.Offset(offset).Limit(limit).Order("vendor_code ASC").Find(&vendors).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list vendors", "offset", offset, "limit", limit, "error", err)
		return nil, 0, fmt.Errorf("failed to list vendors: %w", err)
	}

	r.logger.InfoContext(ctx, "Vendors listed successfully", "count", len(vendors), "offset", offset, "limit", limit, "total", total)
	return vendors, int(total), nil
}

// Update modifies the identity fields of an existing vendor. Metrics are
// only written through UpdateMetrics.
func (r *vendorRepository) Update(ctx context.Context, vendor *model.Vendor) error {
	r.logger.InfoContext(ctx, "Updating vendor", "id", vendor.ID, "code", vendor.VendorCode)
	result := conn(ctx, r.db).Model(&model.Vendor{}).
		Where("id = ?", vendor.ID).
		Select("name", "contact_details", "address", "vendor_code").
		Updates(vendor)
	if result.Error != nil {
		r.logger.ErrorContext(ctx, "Failed to update vendor", "id", vendor.ID, "error", result.Error)
		return fmt.Errorf("failed to update vendor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "Vendor not found for update", "id", vendor.ID)
		return domain.ErrNotFound
	}
	r.logger.InfoContext(ctx, "Vendor updated successfully", "id", vendor.ID, "code", vendor.VendorCode)
	return nil
}

// UpdateMetrics overwrites the four performance metrics, nulls included
func (r *vendorRepository) UpdateMetrics(ctx context.Context, id string, metrics performance.Metrics) error {
	r.logger.DebugContext(ctx, "Updating vendor metrics", "id", id)
	result := conn(ctx, r.db).Model(&model.Vendor{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"on_time_delivery_rate": metrics.OnTimeDeliveryRate,
			"quality_rating_avg":    metrics.QualityRatingAvg,
			"average_response_time": metrics.AverageResponseTime,
			"fulfillment_rate":      metrics.FulfillmentRate,
		})
	if result.Error != nil {
		r.logger.ErrorContext(ctx, "Failed to update vendor metrics", "id", id, "error", result.Error)
		return fmt.Errorf("failed to update vendor metrics: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "Vendor not found for metrics update", "id", id)
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a vendor
func (r *vendorRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting vendor", "id", id)
	result := conn(ctx, r.db).Delete(&model.Vendor{}, "id = ?", id)
	if result.Error != nil {
		r.logger.ErrorContext(ctx, "Failed to delete vendor", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete vendor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "Vendor not found for deletion", "id", id)
		return domain.ErrNotFound
	}
	r.logger.InfoContext(ctx, "Vendor deleted successfully", "id", id)
	return nil
}
