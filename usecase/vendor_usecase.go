package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shivam970806/VMS/domain"
	"github.com/shivam970806/VMS/domain/model"
	"github.com/shivam970806/VMS/domain/performance"
	"github.com/shivam970806/VMS/domain/repository"
	"github.com/shivam970806/VMS/pkg/logger"
)

// VendorPatch is a partial update of a vendor. Nil fields are left unchanged.
type VendorPatch struct {
	Name           *string
	ContactDetails *string
	Address        *string
	VendorCode     *string
	// CreatedBy is write protected and rejected when present
	CreatedBy *string
}

// VendorUseCase defines the interface for vendor-related business operations
type VendorUseCase interface {
	// CreateVendor adds a new vendor with no metrics
	CreateVendor(ctx context.Context, vendor *model.Vendor) error
	// GetVendor retrieves a vendor by its code
	GetVendor(ctx context.Context, vendorCode string) (*model.Vendor, error)
	// ListVendors retrieves a paginated list of vendors
	ListVendors(ctx context.Context, offset, limit int) ([]*model.Vendor, int, error)
	// UpdateVendor applies a partial update to the vendor's identity fields
	UpdateVendor(ctx context.Context, vendorCode string, patch VendorPatch) (*model.Vendor, error)
	// DeleteVendor removes the vendor with its orders and history
	DeleteVendor(ctx context.Context, vendorCode string) error
}

// vendorUseCase implements the VendorUseCase interface
type vendorUseCase struct {
	transactor  repository.Transactor
	vendorRepo  repository.Vendor
	orderRepo   repository.PurchaseOrder
	historyRepo repository.HistoricalPerformance
	logger      logger.LoggerInterface
}

// NewVendorUseCase creates a new instance of vendorUseCase
func NewVendorUseCase(
	transactor repository.Transactor,
	vendorRepo repository.Vendor,
	orderRepo repository.PurchaseOrder,
	historyRepo repository.HistoricalPerformance,
	appLogger logger.LoggerInterface,
) VendorUseCase {
	return &vendorUseCase{
		transactor:  transactor,
		vendorRepo:  vendorRepo,
		orderRepo:   orderRepo,
		historyRepo: historyRepo,
		logger:      appLogger,
	}
}

func (uc *vendorUseCase) checkUnique(ctx context.Context, vendorID, code, name string) error {
	if code != "" {
		existing, err := uc.vendorRepo.GetByCode(ctx, code)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			uc.logger.ErrorContext(ctx, "Error checking vendor code uniqueness", "code", code, "error", err)
			return fmt.Errorf("error checking vendor code uniqueness: %w", err)
		}
		if existing != nil && existing.ID != vendorID {
			uc.logger.WarnContext(ctx, "Vendor with this code already exists", "code", code)
			return domain.ErrVendorCodeAlreadyExists
		}
	}

	if name != "" {
		existing, err := uc.vendorRepo.GetByName(ctx, name)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			uc.logger.ErrorContext(ctx, "Error checking vendor name uniqueness", "name", name, "error", err)
			return fmt.Errorf("error checking vendor name uniqueness: %w", err)
		}
		if existing != nil && existing.ID != vendorID {
			uc.logger.WarnContext(ctx, "Vendor with this name already exists", "name", name)
			return domain.ErrVendorNameAlreadyExists
		}
	}
	return nil
}

// CreateVendor adds a new vendor with no metrics
func (uc *vendorUseCase) CreateVendor(ctx context.Context, vendor *model.Vendor) error {
	uc.logger.InfoContext(ctx, "Creating vendor in usecase", "code", vendor.VendorCode, "name", vendor.Name)

	vendor.VendorCode = strings.TrimSpace(vendor.VendorCode)
	vendor.Name = strings.TrimSpace(vendor.Name)

	// Business logic validation
	if vendor.VendorCode == "" {
		uc.logger.WarnContext(ctx, "Vendor code is required for vendor creation")
		return domain.ErrVendorCodeRequired
	}
	if vendor.Name == "" {
		uc.logger.WarnContext(ctx, "Vendor name is required for vendor creation")
		return domain.ErrVendorNameRequired
	}

	if err := uc.checkUnique(ctx, "", vendor.VendorCode, vendor.Name); err != nil {
		return err
	}

	// metrics are derived, never supplied
	performance.Metrics{}.ApplyTo(vendor)

	if err := uc.vendorRepo.Create(ctx, vendor); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to create vendor in repository", "code", vendor.VendorCode, "error", err)
		return err
	}

	uc.logger.InfoContext(ctx, "Vendor created successfully in usecase", "id", vendor.ID, "code", vendor.VendorCode)
	return nil
}

func (uc *vendorUseCase) getByCode(ctx context.Context, vendorCode string) (*model.Vendor, error) {
	vendor, err := uc.vendorRepo.GetByCode(ctx, vendorCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "Vendor not found", "code", vendorCode)
			return nil, domain.ErrVendorNotFound
		}
		uc.logger.ErrorContext(ctx, "Failed to get vendor in repository", "code", vendorCode, "error", err)
		return nil, err
	}
	return vendor, nil
}

// GetVendor retrieves a vendor by its code
func (uc *vendorUseCase) GetVendor(ctx context.Context, vendorCode string) (*model.Vendor, error) {
	uc.logger.InfoContext(ctx, "Getting vendor in usecase", "code", vendorCode)
	return uc.getByCode(ctx, vendorCode)
}

// ListVendors retrieves a paginated list of vendors
func (uc *vendorUseCase) ListVendors(ctx context.Context, offset, limit int) ([]*model.Vendor, int, error) {
	uc.logger.InfoContext(ctx, "Listing vendors in usecase", "offset", offset, "limit", limit)

	vendors, total, err := uc.vendorRepo.List(ctx, offset, limit)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to list vendors in repository", "offset", offset, "limit", limit, "error", err)
		return nil, 0, err
	}

	uc.logger.InfoContext(ctx, "Vendors listed successfully in usecase", "count", len(vendors), "total", total)
	return vendors, total, nil
}

// UpdateVendor applies a partial update to the vendor's identity fields
func (uc *vendorUseCase) UpdateVendor(ctx context.Context, vendorCode string, patch VendorPatch) (*model.Vendor, error) {
	uc.logger.InfoContext(ctx, "Updating vendor in usecase", "code", vendorCode)

	if patch.CreatedBy != nil {
		uc.logger.WarnContext(ctx, "Attempt to change vendor owner", "code", vendorCode)
		return nil, domain.ErrForbiddenField.WithField("created_by")
	}

	var vendor *model.Vendor
	err := uc.transactor.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		vendor, err = uc.getByCode(txCtx, vendorCode)
		if err != nil {
			return err
		}

		if patch.VendorCode != nil {
			code := strings.TrimSpace(*patch.VendorCode)
			if code == "" {
				return domain.ErrVendorCodeRequired
			}
			vendor.VendorCode = code
		}
		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return domain.ErrVendorNameRequired
			}
			vendor.Name = name
		}
		if patch.ContactDetails != nil {
			vendor.ContactDetails = *patch.ContactDetails
		}
		if patch.Address != nil {
			vendor.Address = *patch.Address
		}

		if err := uc.checkUnique(txCtx, vendor.ID, vendor.VendorCode, vendor.Name); err != nil {
			return err
		}

		return uc.vendorRepo.Update(txCtx, vendor)
	})
	if err != nil {
		uc.logger.WarnContext(ctx, "Failed to update vendor in usecase", "code", vendorCode, "error", err)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "Vendor updated successfully in usecase", "id", vendor.ID, "code", vendor.VendorCode)
	return vendor, nil
}

// DeleteVendor removes the vendor with its orders and history in one transaction
func (uc *vendorUseCase) DeleteVendor(ctx context.Context, vendorCode string) error {
	uc.logger.InfoContext(ctx, "Deleting vendor in usecase", "code", vendorCode)

	err := uc.transactor.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		vendor, err := uc.getByCode(txCtx, vendorCode)
		if err != nil {
			return err
		}
		if _, err := uc.vendorRepo.LockByID(txCtx, vendor.ID); err != nil {
			return fmt.Errorf("error locking vendor: %w", err)
		}
		if err := uc.historyRepo.DeleteByVendor(txCtx, vendor.ID); err != nil {
			return err
		}
		if err := uc.orderRepo.DeleteByVendor(txCtx, vendor.ID); err != nil {
			return err
		}
		return uc.vendorRepo.Delete(txCtx, vendor.ID)
	})
	if err != nil {
		uc.logger.WarnContext(ctx, "Failed to delete vendor in usecase", "code", vendorCode, "error", err)
		return err
	}

	uc.logger.InfoContext(ctx, "Vendor deleted successfully in usecase", "code", vendorCode)
	return nil
}
