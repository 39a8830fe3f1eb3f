package repository

import (
	"context"

	"github.com/shivam970806/VMS/domain/model"
)

// PurchaseOrderFilter narrows a purchase order listing
type PurchaseOrderFilter struct {
	VendorID string
}

// PurchaseOrder interface defines the contract for purchase order database operations
type PurchaseOrder interface {
	// Create adds a new purchase order
	Create(ctx context.Context, order *model.PurchaseOrder) error
	// Save writes every column of an existing purchase order
	Save(ctx context.Context, order *model.PurchaseOrder) error
	// GetByPONumber retrieves an order with its vendor
	GetByPONumber(ctx context.Context, poNumber string) (*model.PurchaseOrder, error)
	// GetLatestByVendor retrieves the vendor's most recent order by order date
	GetLatestByVendor(ctx context.Context, vendorID string) (*model.PurchaseOrder, error)
	// ListByVendor retrieves every order of a vendor
	ListByVendor(ctx context.Context, vendorID string) ([]*model.PurchaseOrder, error)
	// List retrieves a paginated list of orders
	List(ctx context.Context, filter PurchaseOrderFilter, offset, limit int) ([]*model.PurchaseOrder, int, error)
	// Delete removes a purchase order
	Delete(ctx context.Context, poNumber string) error
	// DeleteByVendor removes every order of a vendor
	DeleteByVendor(ctx context.Context, vendorID string) error
}
