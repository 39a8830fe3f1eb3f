package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shivam970806/VMS/contracts/vendor_service"
	"github.com/shivam970806/VMS/pkg/api"
	"github.com/shivam970806/VMS/pkg/logger"
	"github.com/shivam970806/VMS/pkg/validator"
	"github.com/shivam970806/VMS/usecase"
)

// PurchaseOrderHandler handles HTTP requests for purchase order operations
type PurchaseOrderHandler struct {
	// PurchaseOrderUseCase contains business logic for purchase order operations
	PurchaseOrderUseCase usecase.PurchaseOrderUseCase
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
}

// NewPurchaseOrderHandler creates a new instance of PurchaseOrderHandler
func NewPurchaseOrderHandler(purchaseOrderUseCase usecase.PurchaseOrderUseCase, logger logger.LoggerInterface) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		PurchaseOrderUseCase: purchaseOrderUseCase,
		Logger:               logger,
		API:                  api.New(),
	}
}

// CreateOrderHandler handles HTTP requests to place a purchase order
func (h *PurchaseOrderHandler) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create purchase order handler called")

	var req vendor_service.CreatePurchaseOrderRequest
	if err := decodePayload(w, r, vendor_service.CreatePurchaseOrderFields, &req); err != nil {
		h.Logger.WarnContext(ctx, "Invalid request body for purchase order creation", "error", err)
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	if validationErrors := validator.ValidateStruct(req); validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for purchase order creation", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	deliveryDate, err := parseTimestamp(req.DeliveryDate, "delivery_date")
	if err != nil {
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	userID, _ := UserIDFromContext(ctx)
	order, err := h.PurchaseOrderUseCase.CreateOrder(ctx, usecase.CreateOrderInput{
		VendorCode:   req.VendorCode,
		Items:        req.Items,
		Quantity:     req.Quantity,
		DeliveryDate: deliveryDate,
		CreatedBy:    userID,
	})
	if err != nil {
		h.Logger.WarnContext(ctx, "Error creating purchase order", "vendorCode", req.VendorCode, "error", err)
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	h.Logger.InfoContext(ctx, "Purchase order created successfully in handler", "poNumber", order.PONumber)
	h.API.Created(ctx, w, orderToResponse(order))
}

// ListOrdersHandler handles HTTP requests to list purchase orders, optionally for one vendor
func (h *PurchaseOrderHandler) ListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List purchase orders handler called")

	offset, limit := parsePagination(r)
	vendorCode := r.URL.Query().Get("vendor_code")

	orders, total, err := h.PurchaseOrderUseCase.ListOrders(ctx, vendorCode, offset, limit)
	if err != nil {
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	meta := &api.Meta{
		Pagination: api.NewPagination(offset, limit, total),
	}

	h.Logger.InfoContext(ctx, "Purchase orders listed successfully in handler", "count", len(orders), "total", total)
	h.API.SuccessWithMeta(ctx, w, ordersToResponses(orders), meta)
}

// GetOrderHandler handles HTTP requests to get a purchase order
func (h *PurchaseOrderHandler) GetOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	poNumber := chi.URLParam(r, "poNumber")
	h.Logger.InfoContext(ctx, "Get purchase order handler called", "poNumber", poNumber)

	order, err := h.PurchaseOrderUseCase.GetOrder(ctx, poNumber)
	if err != nil {
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	h.API.Success(ctx, w, orderToResponse(order))
}

// UpdateOrderHandler handles HTTP requests to partially update a pending purchase order
func (h *PurchaseOrderHandler) UpdateOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	poNumber := chi.URLParam(r, "poNumber")
	h.Logger.InfoContext(ctx, "Update purchase order handler called", "poNumber", poNumber)

	var req vendor_service.UpdatePurchaseOrderRequest
	if err := decodePayload(w, r, vendor_service.UpdatePurchaseOrderFields, &req); err != nil {
		h.Logger.WarnContext(ctx, "Invalid request body for purchase order update", "poNumber", poNumber, "error", err)
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	rating, err := parseRating(req.QualityRating)
	if err != nil {
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}
	deliveryDate, err := parseTimestamp(req.DeliveryDate, "delivery_date")
	if err != nil {
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	if validationErrors := validator.ValidateStruct(req); validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for purchase order update", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	caller, _ := UserIDFromContext(ctx)
	order, err := h.PurchaseOrderUseCase.UpdateOrder(ctx, poNumber, usecase.OrderPatch{
		VendorCode:    req.VendorCode,
		Items:         req.Items,
		Quantity:      req.Quantity,
		DeliveryDate:  deliveryDate,
		Status:        req.Status,
		QualityRating: rating,
	}, caller)
	if err != nil {
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	h.Logger.InfoContext(ctx, "Purchase order updated successfully in handler", "poNumber", poNumber, "status", order.Status)
	h.API.Success(ctx, w, orderToResponse(order))
}

// AcknowledgeOrderHandler handles HTTP requests to acknowledge a purchase order
func (h *PurchaseOrderHandler) AcknowledgeOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	poNumber := chi.URLParam(r, "poNumber")
	h.Logger.InfoContext(ctx, "Acknowledge purchase order handler called", "poNumber", poNumber)

	order, err := h.PurchaseOrderUseCase.AcknowledgeOrder(ctx, poNumber)
	if err != nil {
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	h.Logger.InfoContext(ctx, "Purchase order acknowledged successfully in handler", "poNumber", poNumber)
	h.API.Success(ctx, w, orderToResponse(order))
}

// DeleteOrderHandler handles HTTP requests to delete a purchase order
func (h *PurchaseOrderHandler) DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	poNumber := chi.URLParam(r, "poNumber")
	h.Logger.InfoContext(ctx, "Delete purchase order handler called", "poNumber", poNumber)

	if err := h.PurchaseOrderUseCase.DeleteOrder(ctx, poNumber); err != nil {
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	h.Logger.InfoContext(ctx, "Purchase order deleted successfully in handler", "poNumber", poNumber)
	h.API.Success(ctx, w, map[string]string{"message": "Purchase order deleted successfully"})
}
