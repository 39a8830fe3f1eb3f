package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shivam970806/VMS/pkg/api"
	"github.com/shivam970806/VMS/pkg/logger"
	"github.com/shivam970806/VMS/usecase"
)

// PerformanceHandler serves vendor performance reads
type PerformanceHandler struct {
	PerformanceUseCase usecase.PerformanceUseCase
	Logger             logger.LoggerInterface
	API                api.Api
}

// NewPerformanceHandler creates a new instance of PerformanceHandler
func NewPerformanceHandler(performanceUseCase usecase.PerformanceUseCase, logger logger.LoggerInterface) *PerformanceHandler {
	return &PerformanceHandler{
		PerformanceUseCase: performanceUseCase,
		Logger:             logger,
		API:                api.New(),
	}
}

// GetPerformanceHandler returns the vendor's current metrics
func (h *PerformanceHandler) GetPerformanceHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vendorCode := chi.URLParam(r, "vendorCode")
	h.Logger.InfoContext(ctx, "Get vendor performance handler called", "code", vendorCode)

	metrics, err := h.PerformanceUseCase.GetVendorPerformance(ctx, vendorCode)
	if err != nil {
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	h.API.Success(ctx, w, performanceToResponse(vendorCode, metrics))
}

// ListHistoryHandler returns the vendor's archived metrics, newest first
func (h *PerformanceHandler) ListHistoryHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vendorCode := chi.URLParam(r, "vendorCode")
	h.Logger.InfoContext(ctx, "List performance history handler called", "code", vendorCode)

	offset, limit := parsePagination(r)

	snapshots, total, err := h.PerformanceUseCase.ListPerformanceHistory(ctx, vendorCode, offset, limit)
	if err != nil {
		writeError(ctx, w, h.API, h.Logger, err)
		return
	}

	meta := &api.Meta{
		Pagination: api.NewPagination(offset, limit, total),
	}
	h.API.SuccessWithMeta(ctx, w, historyToResponses(vendorCode, snapshots), meta)
}
