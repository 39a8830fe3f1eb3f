// Package repository defines the interfaces for data access layer
package repository

import (
	"context"

	"github.com/shivam970806/VMS/domain/model"
	"github.com/shivam970806/VMS/domain/performance"
)

// Transactor runs a function inside a database transaction. Repositories
// called with txCtx join that transaction.
type Transactor interface {
	ExecuteInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

// Vendor interface defines the contract for vendor-related database operations
type Vendor interface {
	// Create adds a new vendor to the database
	Create(ctx context.Context, vendor *model.Vendor) error
	// GetByID retrieves a vendor by its unique identifier
	GetByID(ctx context.Context, id string) (*model.Vendor, error)
	// GetByCode retrieves a vendor by its vendor code
	GetByCode(ctx context.Context, code string) (*model.Vendor, error)
	// GetByName retrieves a vendor by its name
	GetByName(ctx context.Context, name string) (*model.Vendor, error)
	// LockByID retrieves a vendor and holds a row lock on it until the transaction ends
	LockByID(ctx context.Context, id string) (*model.Vendor, error)
	// List retrieves a paginated list of vendors
	List(ctx context.Context, offset, limit int) ([]*model.Vendor, int, error)
	// Update modifies the identity fields of an existing vendor
	Update(ctx context.Context, vendor *model.Vendor) error
	// UpdateMetrics overwrites the four performance metrics, nulls included
	UpdateMetrics(ctx context.Context, id string, metrics performance.Metrics) error
	// Delete removes a vendor
	Delete(ctx context.Context, id string) error
}
