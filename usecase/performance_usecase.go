// Package usecase contains business logic for vendors, purchase orders and
// vendor performance
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shivam970806/VMS/domain"
	"github.com/shivam970806/VMS/domain/model"
	"github.com/shivam970806/VMS/domain/performance"
	"github.com/shivam970806/VMS/domain/repository"
	"github.com/shivam970806/VMS/pkg/logger"
)

// Recompute triggers
const (
	TriggerCreateOrder      = "create_order"
	TriggerUpdateOrder      = "update_order"
	TriggerAcknowledgeOrder = "acknowledge_order"
	TriggerDeleteOrder      = "delete_order"
)

// PerformanceRecorder receives counters about recomputation and event publishing
type PerformanceRecorder interface {
	RecordRecompute(trigger string)
	RecordSnapshot()
	RecordEvent(eventType string, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordRecompute(string) {}
func (nopRecorder) RecordSnapshot() {}
func (nopRecorder) RecordEvent(string, error) {}

// RecomputeResult describes the outcome of one recomputation
type RecomputeResult struct {
	// Vendor carries the freshly written metrics
	Vendor *model.Vendor
	// Previous holds the metrics as they stood before the recomputation
	Previous performance.Metrics
	// SnapshotTaken is true when the previous metrics were archived
	SnapshotTaken bool
}

// PerformanceUseCase defines vendor performance operations
type PerformanceUseCase interface {
	// Recompute refreshes the vendor's metrics from its full order history.
	// It joins the transaction carried by ctx, if any.
	Recompute(ctx context.Context, vendorID, trigger string) (*RecomputeResult, error)
	// GetVendorPerformance returns the vendor's current metrics
	GetVendorPerformance(ctx context.Context, vendorCode string) (performance.Metrics, error)
	// ListPerformanceHistory returns the vendor's archived snapshots, newest first
	ListPerformanceHistory(ctx context.Context, vendorCode string, offset, limit int) ([]*model.HistoricalPerformance, int, error)
}

type performanceUseCase struct {
	transactor  repository.Transactor
	vendorRepo  repository.Vendor
	orderRepo   repository.PurchaseOrder
	historyRepo repository.HistoricalPerformance
	recorder    PerformanceRecorder
	logger      logger.LoggerInterface
}

// NewPerformanceUseCase creates a new instance of performanceUseCase.
// recorder may be nil.
func NewPerformanceUseCase(
	transactor repository.Transactor,
	vendorRepo repository.Vendor,
	orderRepo repository.PurchaseOrder,
	historyRepo repository.HistoricalPerformance,
	recorder PerformanceRecorder,
	appLogger logger.LoggerInterface,
) PerformanceUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &performanceUseCase{
		transactor:  transactor,
		vendorRepo:  vendorRepo,
		orderRepo:   orderRepo,
		historyRepo: historyRepo,
		recorder:    recorder,
		logger:      appLogger,
	}
}

// Recompute archives the current metrics when any is set, then derives and
// stores new ones. The snapshot always sees the pre-update values.
func (uc *performanceUseCase) Recompute(ctx context.Context, vendorID, trigger string) (*RecomputeResult, error) {
	uc.logger.InfoContext(ctx, "Recomputing vendor performance in usecase", "vendorID", vendorID, "trigger", trigger)

	var result *RecomputeResult
	err := uc.transactor.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		vendor, err := uc.vendorRepo.GetByID(txCtx, vendorID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrVendorNotFound
			}
			return fmt.Errorf("error loading vendor: %w", err)
		}

		previous := performance.FromVendor(vendor)
		snapshotTaken := false
		if previous.HasAny() {
			if err := uc.historyRepo.Create(txCtx, performance.Snapshot(vendor)); err != nil {
				return fmt.Errorf("error archiving vendor performance: %w", err)
			}
			snapshotTaken = true
		}

		orders, err := uc.orderRepo.ListByVendor(txCtx, vendorID)
		if err != nil {
			return fmt.Errorf("error loading vendor orders: %w", err)
		}

		next := performance.Compute(orders)
		if err := uc.vendorRepo.UpdateMetrics(txCtx, vendorID, next); err != nil {
			return fmt.Errorf("error storing vendor performance: %w", err)
		}
		next.ApplyTo(vendor)

		result = &RecomputeResult{
			Vendor:        vendor,
			Previous:      previous,
			SnapshotTaken: snapshotTaken,
		}
		return nil
	})
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to recompute vendor performance", "vendorID", vendorID, "trigger", trigger, "error", err)
		return nil, err
	}

	uc.recorder.RecordRecompute(trigger)
	if result.SnapshotTaken {
		uc.recorder.RecordSnapshot()
	}

	uc.logger.InfoContext(ctx, "Vendor performance recomputed in usecase",
		"vendorID", vendorID,
		"trigger", trigger,
		"snapshot", result.SnapshotTaken,
		"fulfillmentRate", result.Vendor.FulfillmentRate.Decimal.String(),
	)
	return result, nil
}

// GetVendorPerformance returns the vendor's current metrics
func (uc *performanceUseCase) GetVendorPerformance(ctx context.Context, vendorCode string) (performance.Metrics, error) {
	uc.logger.InfoContext(ctx, "Getting vendor performance in usecase", "vendorCode", vendorCode)

	vendor, err := uc.vendorRepo.GetByCode(ctx, vendorCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "Vendor not found for performance", "vendorCode", vendorCode)
			return performance.Metrics{}, domain.ErrVendorNotFound
		}
		uc.logger.ErrorContext(ctx, "Failed to get vendor for performance", "vendorCode", vendorCode, "error", err)
		return performance.Metrics{}, err
	}

	return performance.FromVendor(vendor), nil
}

// ListPerformanceHistory returns the vendor's archived snapshots, newest first
func (uc *performanceUseCase) ListPerformanceHistory(ctx context.Context, vendorCode string, offset, limit int) ([]*model.HistoricalPerformance, int, error) {
	uc.logger.InfoContext(ctx, "Listing vendor performance history in usecase", "vendorCode", vendorCode, "offset", offset, "limit", limit)

	vendor, err := uc.vendorRepo.GetByCode(ctx, vendorCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "Vendor not found for performance history", "vendorCode", vendorCode)
			return nil, 0, domain.ErrVendorNotFound
		}
		uc.logger.ErrorContext(ctx, "Failed to get vendor for performance history", "vendorCode", vendorCode, "error", err)
		return nil, 0, err
	}

	snapshots, total, err := uc.historyRepo.ListByVendor(ctx, vendor.ID, offset, limit)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to list performance history in repository", "vendorID", vendor.ID, "error", err)
		return nil, 0, err
	}
	return snapshots, total, nil
}
