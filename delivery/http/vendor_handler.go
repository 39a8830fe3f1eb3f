package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shivam970806/VMS/contracts/vendor_service"
	"github.com/shivam970806/VMS/domain/model"
	"github.com/shivam970806/VMS/pkg/api"
	"github.com/shivam970806/VMS/pkg/logger"
	"github.com/shivam970806/VMS/pkg/validator"
	"github.com/shivam970806/VMS/usecase"
)

// VendorHandler handles HTTP requests for vendor operations
type VendorHandler struct {
	// VendorUseCase contains business logic for vendor operations
	VendorUseCase usecase.VendorUseCase
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
}

// NewVendorHandler creates a new instance of VendorHandler
func NewVendorHandler(vendorUseCase usecase.VendorUseCase, logger logger.LoggerInterface) *VendorHandler {
	return &VendorHandler{
		VendorUseCase: vendorUseCase,
		Logger:        logger,
		API:           api.New(),
	}
}

// CreateVendorHandler handles HTTP requests to create a vendor
func (h *VendorHandler) CreateVendorHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create vendor handler called")

	var req vendor_service.CreateVendorRequest
	if err := decodePayload(w, r, vendor_service.CreateVendorFields, &req); err != nil {
		h.Logger.WarnContext(ctx, "Invalid request body for vendor creation", "error", err)
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	// Validate request
	if validationErrors := validator.ValidateStruct(req); validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for vendor creation", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	userID, _ := UserIDFromContext(ctx)
	vendor := &model.Vendor{
		Name:           req.Name,
		ContactDetails: req.ContactDetails,
		Address:        req.Address,
		VendorCode:     req.VendorCode,
		CreatedBy:      userID,
	}

	if err := h.VendorUseCase.CreateVendor(ctx, vendor); err != nil {
		h.Logger.WarnContext(ctx, "Error creating vendor", "code", req.VendorCode, "error", err)
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	h.Logger.InfoContext(ctx, "Vendor created successfully in handler", "id", vendor.ID, "code", vendor.VendorCode)
	h.API.Created(ctx, w, vendorToResponse(vendor))
}

// ListVendorsHandler handles HTTP requests to list vendors with pagination
func (h *VendorHandler) ListVendorsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List vendors handler called")

	offset, limit := parsePagination(r)

	vendors, total, err := h.VendorUseCase.ListVendors(ctx, offset, limit)
	if err != nil {
		h.Logger.ErrorContext(ctx, "Error listing vendors", "offset", offset, "limit", limit, "error", err)
		h.API.InternalServerError(ctx, w, "Failed to list vendors")
		return
	}

	meta := &api.Meta{
		Pagination: api.NewPagination(offset, limit, total),
	}

	h.Logger.InfoContext(ctx, "Vendors listed successfully in handler", "count", len(vendors), "total", total)
	h.API.SuccessWithMeta(ctx, w, vendorsToResponses(vendors), meta)
}

// GetVendorHandler handles HTTP requests to get a vendor by code
func (h *VendorHandler) GetVendorHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vendorCode := chi.URLParam(r, "vendorCode")
	h.Logger.InfoContext(ctx, "Get vendor handler called", "code", vendorCode)

	vendor, err := h.VendorUseCase.GetVendor(ctx, vendorCode)
	if err != nil {
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	h.API.Success(ctx, w, vendorToResponse(vendor))
}

// UpdateVendorHandler handles HTTP requests to partially update a vendor
func (h *VendorHandler) UpdateVendorHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vendorCode := chi.URLParam(r, "vendorCode")
	h.Logger.InfoContext(ctx, "Update vendor handler called", "code", vendorCode)

	var req vendor_service.UpdateVendorRequest
	if err := decodePayload(w, r, vendor_service.UpdateVendorFields, &req); err != nil {
		h.Logger.WarnContext(ctx, "Invalid request body for vendor update", "code", vendorCode, "error", err)
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	if validationErrors := validator.ValidateStruct(req); validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for vendor update", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	vendor, err := h.VendorUseCase.UpdateVendor(ctx, vendorCode, usecase.VendorPatch{
		Name:           req.Name,
		ContactDetails: req.ContactDetails,
		Address:        req.Address,
		VendorCode:     req.VendorCode,
	})
	if err != nil {
		h.Logger.WarnContext(ctx, "Error updating vendor", "code", vendorCode, "error", err)
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	h.Logger.InfoContext(ctx, "Vendor updated successfully in handler", "id", vendor.ID, "code", vendor.VendorCode)
	h.API.Success(ctx, w, vendorToResponse(vendor))
}

// DeleteVendorHandler handles HTTP requests to delete a vendor and its orders
func (h *VendorHandler) DeleteVendorHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vendorCode := chi.URLParam(r, "vendorCode")
	h.Logger.InfoContext(ctx, "Delete vendor handler called", "code", vendorCode)

	if err := h.VendorUseCase.DeleteVendor(ctx, vendorCode); err != nil {
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	h.Logger.InfoContext(ctx, "Vendor deleted successfully in handler", "code", vendorCode)
	h.API.Success(ctx, w, map[string]string{"message": "Vendor deleted successfully"})
}
