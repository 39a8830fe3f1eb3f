package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shivam970806/VMS/contracts/vendor_service"
	"github.com/shivam970806/VMS/domain"
	"github.com/shivam970806/VMS/domain/model"
	"github.com/shivam970806/VMS/domain/performance"
	"github.com/shivam970806/VMS/pkg/api"
	"github.com/shivam970806/VMS/pkg/logger"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// parsePagination reads offset and limit query parameters with defaults and bounds
func parsePagination(r *http.Request) (offset, limit int) {
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	limit, err = strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return offset, limit
}

// writeError maps domain errors onto the response envelope. Unknown errors become 500.
func writeError(ctx context.Context, w http.ResponseWriter, apiClient api.Api, log logger.LoggerInterface, err error) {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		log.ErrorContext(ctx, "Unhandled error", "error", err)
		apiClient.InternalServerError(ctx, w, "Internal server error")
		return
	}

	apiErr := &api.Error{
		Code:    appErr.Reason,
		Message: appErr.Message,
	}
	if appErr.Field != "" {
		apiErr.Details = []api.ErrorDetail{{Field: appErr.Field, Message: appErr.Error()}}
	}
	if appErr.Code >= http.StatusInternalServerError {
		log.ErrorContext(ctx, "Request failed", "reason", appErr.Reason, "error", err)
	}
	apiClient.Error(ctx, w, appErr.Code, apiErr)
}

// convertValidationErrors converts validation errors to API format
func convertValidationErrors(validationErrors map[string]string) []api.ErrorDetail {
	errorDetails := make([]api.ErrorDetail, 0, len(validationErrors))
	for field, message := range validationErrors {
		errorDetails = append(errorDetails, api.ErrorDetail{
			Field:   field,
			Message: message,
		})
	}
	return errorDetails
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func vendorToResponse(v *model.Vendor) *vendor_service.VendorResponse {
	return &vendor_service.VendorResponse{
		ID:                  v.ID,
		VendorCode:          v.VendorCode,
		Name:                v.Name,
		ContactDetails:      v.ContactDetails,
		Address:             v.Address,
		OnTimeDeliveryRate:  performance.Float(v.OnTimeDeliveryRate),
		QualityRatingAvg:    performance.Float(v.QualityRatingAvg),
		AverageResponseTime: performance.Float(v.AverageResponseTime),
		FulfillmentRate:     performance.Float(v.FulfillmentRate),
		CreatedBy:           v.CreatedBy,
		CreatedAt:           formatTime(v.CreatedAt),
		UpdatedAt:           formatTime(v.UpdatedAt),
	}
}

func vendorsToResponses(vendors []*model.Vendor) []*vendor_service.VendorResponse {
	responses := make([]*vendor_service.VendorResponse, len(vendors))
	for i, v := range vendors {
		responses[i] = vendorToResponse(v)
	}
	return responses
}

func orderToResponse(o *model.PurchaseOrder) *vendor_service.PurchaseOrderResponse {
	return &vendor_service.PurchaseOrderResponse{
		PONumber:           o.PONumber,
		VendorCode:         o.Vendor.VendorCode,
		OrderDate:          formatTime(o.OrderDate),
		DeliveryDate:       formatTimePtr(o.DeliveryDate),
		Items:              o.Items,
		Quantity:           o.Quantity,
		Status:             o.Status,
		QualityRating:      performance.Float(o.QualityRating),
		IssueDate:          formatTime(o.IssueDate),
		AcknowledgmentDate: formatTimePtr(o.AcknowledgmentDate),
		ResponseTime:       performance.Float(o.ResponseTime),
		OnTimeDelivery:     o.OnTimeDelivery,
		CreatedBy:          o.CreatedBy,
		CreatedAt:          formatTime(o.CreatedAt),
		UpdatedAt:          formatTime(o.UpdatedAt),
	}
}

func ordersToResponses(orders []*model.PurchaseOrder) []*vendor_service.PurchaseOrderResponse {
	responses := make([]*vendor_service.PurchaseOrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = orderToResponse(o)
	}
	return responses
}

func performanceToResponse(vendorCode string, m performance.Metrics) *vendor_service.PerformanceResponse {
	return &vendor_service.PerformanceResponse{
		VendorCode:          vendorCode,
		OnTimeDeliveryRate:  performance.Float(m.OnTimeDeliveryRate),
		QualityRatingAvg:    performance.Float(m.QualityRatingAvg),
		AverageResponseTime: performance.Float(m.AverageResponseTime),
		FulfillmentRate:     performance.Float(m.FulfillmentRate),
	}
}

func historyToResponses(vendorCode string, snapshots []*model.HistoricalPerformance) []*vendor_service.HistoricalPerformanceResponse {
	responses := make([]*vendor_service.HistoricalPerformanceResponse, len(snapshots))
	for i, s := range snapshots {
		responses[i] = &vendor_service.HistoricalPerformanceResponse{
			ID:                  s.ID,
			VendorCode:          vendorCode,
			OnTimeDeliveryRate:  performance.Float(s.OnTimeDeliveryRate),
			QualityRatingAvg:    performance.Float(s.QualityRatingAvg),
			AverageResponseTime: performance.Float(s.AverageResponseTime),
			FulfillmentRate:     performance.Float(s.FulfillmentRate),
			CreatedBy:           s.CreatedBy,
			CreatedAt:           formatTime(s.CreatedAt),
		}
	}
	return responses
}
