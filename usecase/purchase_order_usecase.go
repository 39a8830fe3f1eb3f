package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shivam970806/VMS/domain"
	"github.com/shivam970806/VMS/domain/event"
	"github.com/shivam970806/VMS/domain/lifecycle"
	"github.com/shivam970806/VMS/domain/model"
	"github.com/shivam970806/VMS/domain/repository"
	"github.com/shivam970806/VMS/pkg/logger"
)

var (
	minQualityRating = decimal.Zero
	maxQualityRating = decimal.NewFromInt(10)
)

// CreateOrderInput carries the fields accepted when an order is placed
type CreateOrderInput struct {
	VendorCode   string
	Items        map[string]any
	Quantity     int
	DeliveryDate *time.Time
	CreatedBy    string

	// Status and QualityRating are rejected when present
	Status        *string
	QualityRating *decimal.Decimal
}

// OrderPatch is a partial update of a pending order. Nil fields are left unchanged.
type OrderPatch struct {
	VendorCode    *string
	CreatedBy     *string
	Items         map[string]any
	Quantity      *int
	DeliveryDate  *time.Time
	Status        *string
	QualityRating *decimal.Decimal
}

// PurchaseOrderUseCase defines purchase order operations
type PurchaseOrderUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*model.PurchaseOrder, error)
	UpdateOrder(ctx context.Context, poNumber string, patch OrderPatch, caller string) (*model.PurchaseOrder, error)
	AcknowledgeOrder(ctx context.Context, poNumber string) (*model.PurchaseOrder, error)
	GetOrder(ctx context.Context, poNumber string) (*model.PurchaseOrder, error)
	ListOrders(ctx context.Context, vendorCode string, offset, limit int) ([]*model.PurchaseOrder, int, error)
	DeleteOrder(ctx context.Context, poNumber string) error
}

type purchaseOrderUseCase struct {
	transactor  repository.Transactor
	vendorRepo  repository.Vendor
	orderRepo   repository.PurchaseOrder
	performance PerformanceUseCase
	publisher   event.PerformancePublisher
	recorder    PerformanceRecorder
	logger      logger.LoggerInterface
	now         func() time.Time
}

// NewPurchaseOrderUseCase creates a new instance of purchaseOrderUseCase.
// publisher and recorder may be nil.
func NewPurchaseOrderUseCase(
	transactor repository.Transactor,
	vendorRepo repository.Vendor,
	orderRepo repository.PurchaseOrder,
	performanceUC PerformanceUseCase,
	publisher event.PerformancePublisher,
	recorder PerformanceRecorder,
	appLogger logger.LoggerInterface,
) PurchaseOrderUseCase {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &purchaseOrderUseCase{
		transactor:  transactor,
		vendorRepo:  vendorRepo,
		orderRepo:   orderRepo,
		performance: performanceUC,
		publisher:   publisher,
		recorder:    recorder,
		logger:      appLogger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder places a new pending order with the vendor, then refreshes the
// vendor's metrics in the same transaction
func (uc *purchaseOrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (*model.PurchaseOrder, error) {
	uc.logger.InfoContext(ctx, "Creating purchase order in usecase", "vendorCode", in.VendorCode, "quantity", in.Quantity)

	if in.Status != nil {
		uc.logger.WarnContext(ctx, "Status supplied at order creation", "vendorCode", in.VendorCode)
		return nil, domain.ErrForbiddenField.WithField("status")
	}
	if in.QualityRating != nil {
		uc.logger.WarnContext(ctx, "Quality rating supplied at order creation", "vendorCode", in.VendorCode)
		return nil, domain.ErrForbiddenField.WithField("quality_rating")
	}

	var (
		order  *model.PurchaseOrder
		result *RecomputeResult
	)
	err := uc.transactor.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		vendor, err := uc.vendorRepo.GetByCode(txCtx, in.VendorCode)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrMissingVendor
			}
			return fmt.Errorf("error loading vendor: %w", err)
		}
		if _, err := uc.vendorRepo.LockByID(txCtx, vendor.ID); err != nil {
			return fmt.Errorf("error locking vendor: %w", err)
		}

		lastPONumber := ""
		latest, err := uc.orderRepo.GetLatestByVendor(txCtx, vendor.ID)
		switch {
		case err == nil:
			lastPONumber = latest.PONumber
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("error loading latest order: %w", err)
		}

		items := in.Items
		if items == nil {
			items = map[string]any{}
		}

		now := uc.now()
		order = &model.PurchaseOrder{
			VendorID:     vendor.ID,
			OrderDate:    now,
			IssueDate:    now,
			DeliveryDate: in.DeliveryDate,
			Items:        items,
			Quantity:     in.Quantity,
			Status:       model.StatusPending,
			CreatedBy:    in.CreatedBy,
		}

		input := lifecycle.Input{Now: now, VendorCode: vendor.VendorCode, LastPONumber: lastPONumber}
		if err := lifecycle.Run(order, input, lifecycle.WritePass...); err != nil {
			return err
		}

		if err := uc.orderRepo.Create(txCtx, order); err != nil {
			return err
		}

		result, err = uc.performance.Recompute(txCtx, vendor.ID, TriggerCreateOrder)
		if err != nil {
			return err
		}
		order.Vendor = *result.Vendor
		return nil
	})
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to create purchase order in usecase", "vendorCode", in.VendorCode, "error", err)
		return nil, err
	}

	uc.publish(ctx, result, order.PONumber, TriggerCreateOrder)
	uc.logger.InfoContext(ctx, "Purchase order created successfully in usecase", "poNumber", order.PONumber)
	return order, nil
}

// lockOrder reads the order, locks its vendor and reads the order again so
// the returned state cannot change until the transaction ends
func (uc *purchaseOrderUseCase) lockOrder(txCtx context.Context, poNumber string) (*model.PurchaseOrder, error) {
	order, err := uc.orderRepo.GetByPONumber(txCtx, poNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrPurchaseOrderNotFound
		}
		return nil, fmt.Errorf("error loading purchase order: %w", err)
	}

	if _, err := uc.vendorRepo.LockByID(txCtx, order.VendorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrMissingVendor
		}
		return nil, fmt.Errorf("error locking vendor: %w", err)
	}

	order, err = uc.orderRepo.GetByPONumber(txCtx, poNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrPurchaseOrderNotFound
		}
		return nil, fmt.Errorf("error loading purchase order: %w", err)
	}
	return order, nil
}

// validatePatch checks a patch against the current order before anything is changed
func validatePatch(order *model.PurchaseOrder, patch OrderPatch) error {
	if !order.IsPending() {
		return domain.ErrImmutable
	}
	if patch.CreatedBy != nil {
		return domain.ErrForbiddenField.WithField("created_by")
	}
	if patch.VendorCode != nil && *patch.VendorCode != order.Vendor.VendorCode {
		return domain.ErrForbiddenField.WithField("vendor_code")
	}
	if patch.QualityRating != nil {
		if patch.QualityRating.LessThan(minQualityRating) || patch.QualityRating.GreaterThan(maxQualityRating) {
			return domain.ErrInvalidRating
		}
	}
	if patch.Status != nil && !model.IsValidStatus(*patch.Status) {
		return domain.ErrInvalidStatus
	}
	if !order.IsAcknowledged() {
		// Cancelling is the one status change allowed before acknowledgment.
		if patch.QualityRating != nil {
			return domain.ErrNotAcknowledged.WithField("quality_rating")
		}
		if patch.Status != nil && *patch.Status != model.StatusCancelled {
			return domain.ErrNotAcknowledged.WithField("status")
		}
	}
	return nil
}

func applyPatch(order *model.PurchaseOrder, patch OrderPatch) {
	if patch.Items != nil {
		order.Items = patch.Items
	}
	if patch.Quantity != nil {
		order.Quantity = *patch.Quantity
	}
	if patch.DeliveryDate != nil {
		d := *patch.DeliveryDate
		order.DeliveryDate = &d
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if patch.QualityRating != nil {
		order.QualityRating = decimal.NewNullDecimal(*patch.QualityRating)
	}
}

// UpdateOrder applies a partial update to a pending order and refreshes the
// vendor's metrics
func (uc *purchaseOrderUseCase) UpdateOrder(ctx context.Context, poNumber string, patch OrderPatch, caller string) (*model.PurchaseOrder, error) {
	uc.logger.InfoContext(ctx, "Updating purchase order in usecase", "poNumber", poNumber, "caller", caller)

	var (
		order  *model.PurchaseOrder
		result *RecomputeResult
	)
	err := uc.transactor.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		order, err = uc.lockOrder(txCtx, poNumber)
		if err != nil {
			return err
		}

		if err := validatePatch(order, patch); err != nil {
			return err
		}
		applyPatch(order, patch)

		input := lifecycle.Input{Now: uc.now(), VendorCode: order.Vendor.VendorCode}
		if err := lifecycle.Run(order, input, lifecycle.WritePass...); err != nil {
			return err
		}

		if err := uc.orderRepo.Save(txCtx, order); err != nil {
			return err
		}

		result, err = uc.performance.Recompute(txCtx, order.VendorID, TriggerUpdateOrder)
		if err != nil {
			return err
		}
		order.Vendor = *result.Vendor
		return nil
	})
	if err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) && appErr.Code < 500 {
			uc.logger.WarnContext(ctx, "Purchase order update rejected", "poNumber", poNumber, "reason", appErr.Reason, "error", err)
		} else {
			uc.logger.ErrorContext(ctx, "Failed to update purchase order in usecase", "poNumber", poNumber, "error", err)
		}
		return nil, err
	}

	uc.publish(ctx, result, order.PONumber, TriggerUpdateOrder)
	uc.logger.InfoContext(ctx, "Purchase order updated successfully in usecase", "poNumber", poNumber, "status", order.Status)
	return order, nil
}

// AcknowledgeOrder stamps the acknowledgment date once and derives the response time
func (uc *purchaseOrderUseCase) AcknowledgeOrder(ctx context.Context, poNumber string) (*model.PurchaseOrder, error) {
	uc.logger.InfoContext(ctx, "Acknowledging purchase order in usecase", "poNumber", poNumber)

	var (
		order  *model.PurchaseOrder
		result *RecomputeResult
	)
	err := uc.transactor.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		order, err = uc.lockOrder(txCtx, poNumber)
		if err != nil {
			return err
		}
		if order.IsAcknowledged() {
			return domain.ErrAlreadyAcknowledged
		}

		now := uc.now()
		order.AcknowledgmentDate = &now
		if err := lifecycle.Run(order, lifecycle.Input{Now: now}, lifecycle.AcknowledgePass...); err != nil {
			return err
		}

		if err := uc.orderRepo.Save(txCtx, order); err != nil {
			return err
		}

		result, err = uc.performance.Recompute(txCtx, order.VendorID, TriggerAcknowledgeOrder)
		if err != nil {
			return err
		}
		order.Vendor = *result.Vendor
		return nil
	})
	if err != nil {
		uc.logger.WarnContext(ctx, "Failed to acknowledge purchase order in usecase", "poNumber", poNumber, "error", err)
		return nil, err
	}

	uc.publish(ctx, result, order.PONumber, TriggerAcknowledgeOrder)
	uc.logger.InfoContext(ctx, "Purchase order acknowledged successfully in usecase", "poNumber", poNumber, "responseTime", order.ResponseTime.Decimal.String())
	return order, nil
}

// GetOrder retrieves an order with its vendor
func (uc *purchaseOrderUseCase) GetOrder(ctx context.Context, poNumber string) (*model.PurchaseOrder, error) {
	uc.logger.InfoContext(ctx, "Getting purchase order in usecase", "poNumber", poNumber)

	order, err := uc.orderRepo.GetByPONumber(ctx, poNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "Purchase order not found", "poNumber", poNumber)
			return nil, domain.ErrPurchaseOrderNotFound
		}
		uc.logger.ErrorContext(ctx, "Failed to get purchase order in repository", "poNumber", poNumber, "error", err)
		return nil, err
	}
	return order, nil
}

// ListOrders retrieves a page of orders, optionally for one vendor
func (uc *purchaseOrderUseCase) ListOrders(ctx context.Context, vendorCode string, offset, limit int) ([]*model.PurchaseOrder, int, error) {
	uc.logger.InfoContext(ctx, "Listing purchase orders in usecase", "vendorCode", vendorCode, "offset", offset, "limit", limit)

	filter := repository.PurchaseOrderFilter{}
	if vendorCode != "" {
		vendor, err := uc.vendorRepo.GetByCode(ctx, vendorCode)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				uc.logger.WarnContext(ctx, "Vendor not found for order listing", "vendorCode", vendorCode)
				return nil, 0, domain.ErrVendorNotFound
			}
			return nil, 0, err
		}
		filter.VendorID = vendor.ID
	}

	orders, total, err := uc.orderRepo.List(ctx, filter, offset, limit)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to list purchase orders in repository", "error", err)
		return nil, 0, err
	}
	return orders, total, nil
}

// DeleteOrder removes an order and refreshes the vendor's metrics
func (uc *purchaseOrderUseCase) DeleteOrder(ctx context.Context, poNumber string) error {
	uc.logger.InfoContext(ctx, "Deleting purchase order in usecase", "poNumber", poNumber)

	var result *RecomputeResult
	err := uc.transactor.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		order, err := uc.lockOrder(txCtx, poNumber)
		if err != nil {
			return err
		}

		if err := uc.orderRepo.Delete(txCtx, poNumber); err != nil {
			return err
		}

		result, err = uc.performance.Recompute(txCtx, order.VendorID, TriggerDeleteOrder)
		return err
	})
	if err != nil {
		uc.logger.WarnContext(ctx, "Failed to delete purchase order in usecase", "poNumber", poNumber, "error", err)
		return err
	}

	uc.publish(ctx, result, poNumber, TriggerDeleteOrder)
	uc.logger.InfoContext(ctx, "Purchase order deleted successfully in usecase", "poNumber", poNumber)
	return nil
}

// publish emits the PerformanceUpdated event of a committed write. Broker
// failures are logged and never fail the request.
func (uc *purchaseOrderUseCase) publish(ctx context.Context, result *RecomputeResult, poNumber, trigger string) {
	if result == nil {
		return
	}
	evt := event.NewPerformanceUpdated(result.Vendor, poNumber, trigger, result.SnapshotTaken, uc.now())
	err := uc.publisher.PublishPerformanceUpdated(ctx, evt)
	uc.recorder.RecordEvent(evt.Type, err)
	if err != nil {
		uc.logger.WarnContext(ctx, "Failed to publish performance event", "vendorCode", evt.VendorCode, "eventID", evt.EventID, "error", err)
	}
}
