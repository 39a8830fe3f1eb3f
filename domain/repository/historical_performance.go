package repository

import (
	"context"

	"github.com/shivam970806/VMS/domain/model"
)

// HistoricalPerformance interface defines the contract for the append-only snapshot store
type HistoricalPerformance interface {
	// Create appends a snapshot
	Create(ctx context.Context, snapshot *model.HistoricalPerformance) error
	// ListByVendor retrieves a vendor's snapshots, newest first
	ListByVendor(ctx context.Context, vendorID string, offset, limit int) ([]*model.HistoricalPerformance, int, error)
	// CountByVendor counts a vendor's snapshots
	CountByVendor(ctx context.Context, vendorID string) (int, error)
	// DeleteByVendor removes a vendor's snapshots when the vendor itself is deleted
	DeleteByVendor(ctx context.Context, vendorID string) error
}
