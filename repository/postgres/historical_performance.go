package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shivam970806/VMS/domain/model"
	"github.com/shivam970806/VMS/domain/repository"
	"github.com/shivam970806/VMS/pkg/logger"
)

type historicalPerformanceRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewHistoricalPerformanceRepository creates the snapshot store
func NewHistoricalPerformanceRepository(db *gorm.DB, logger logger.LoggerInterface) repository.HistoricalPerformance {
	return &historicalPerformanceRepository{
		db:     db,
		logger: logger,
	}
}

// Create appends a snapshot
func (r *historicalPerformanceRepository) Create(ctx context.Context, snapshot *model.HistoricalPerformance) error {
	r.logger.InfoContext(ctx, "Creating historical performance snapshot", "vendorID", snapshot.VendorID)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(snapshot).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create historical performance snapshot", "vendorID", snapshot.VendorID, "error", err)
		return fmt.Errorf("failed to create historical performance: %w", err)
	}
	return nil
}

// ListByVendor retrieves a vendor's snapshots, newest first
func (r *historicalPerformanceRepository) ListByVendor(ctx context.Context, vendorID string, offset, limit int) ([]*model.HistoricalPerformance, int, error) {
	var snapshots []*model.HistoricalPerformance

	total, err := r.CountByVendor(ctx, vendorID)
	if err != nil {
		return nil, 0, err
	}

	// ULIDs sort by creation time, which breaks ties within one timestamp tick
	if err := conn(ctx, r.db).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&snapshots).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list historical performance", "vendorID", vendorID, "error", err)
		return nil, 0, fmt.Errorf("failed to list historical performance: %w", err)
	}

	return snapshots, total, nil
}

// CountByVendor counts a vendor's snapshots
func (r *historicalPerformanceRepository) CountByVendor(ctx context.Context, vendorID string) (int, error) {
	var total int64
	if err := conn(ctx, r.db).Model(&model.HistoricalPerformance{}).Where("vendor_id = ?", vendorID).Count(&total).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to count historical performance", "vendorID", vendorID, "error", err)
		return 0, fmt.Errorf("failed to count historical performance: %w", err)
	}
	return int(total), nil
}

// DeleteByVendor removes a vendor's snapshots
func (r *historicalPerformanceRepository) DeleteByVendor(ctx context.Context, vendorID string) error {
	r.logger.InfoContext(ctx, "Deleting historical performance of vendor", "vendorID", vendorID)
	if err := conn(ctx, r.db).Where("vendor_id = ?", vendorID).Delete(&model.HistoricalPerformance{}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete historical performance", "vendorID", vendorID, "error", err)
		return fmt.Errorf("failed to delete historical performance: %w", err)
	}
	return nil
}
