// Package vendor_service contains request and response contracts for the vendor-management-service
package vendor_service

// CreateVendorRequest represents the request payload for creating a vendor
type CreateVendorRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	ContactDetails string `json:"contact_details" validate:"required"`
	Address        string `json:"address" validate:"required"`
	VendorCode     string `json:"vendor_code" validate:"required,min=1,max=50,code"`
}

// UpdateVendorRequest represents a partial update of a vendor
type UpdateVendorRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=100"`
	ContactDetails *string `json:"contact_details"`
	Address        *string `json:"address"`
	VendorCode     *string `json:"vendor_code" validate:"omitempty,min=1,max=50,code"`
}

// VendorResponse represents the response payload for a vendor
type VendorResponse struct {
	ID                  string   `json:"id"`
	VendorCode          string   `json:"vendor_code"`
	Name                string   `json:"name"`
	ContactDetails      string   `json:"contact_details"`
	Address             string   `json:"address"`
	OnTimeDeliveryRate  *float64 `json:"on_time_delivery_rate"`
	QualityRatingAvg    *float64 `json:"quality_rating_avg"`
	AverageResponseTime *float64 `json:"average_response_time"`
	FulfillmentRate     *float64 `json:"fulfillment_rate"`
	CreatedBy           string   `json:"created_by"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

// PerformanceResponse represents a vendor's current metrics. Unset metrics are null.
type PerformanceResponse struct {
	VendorCode          string   `json:"vendor_code"`
	OnTimeDeliveryRate  *float64 `json:"on_time_delivery_rate"`
	QualityRatingAvg    *float64 `json:"quality_rating_avg"`
	AverageResponseTime *float64 `json:"average_response_time"`
	FulfillmentRate     *float64 `json:"fulfillment_rate"`
}

// HistoricalPerformanceResponse represents one archived metrics snapshot
type HistoricalPerformanceResponse struct {
	ID                  string   `json:"id"`
	VendorCode          string   `json:"vendor_code"`
	OnTimeDeliveryRate  *float64 `json:"on_time_delivery_rate"`
	QualityRatingAvg    *float64 `json:"quality_rating_avg"`
	AverageResponseTime *float64 `json:"average_response_time"`
	FulfillmentRate     *float64 `json:"fulfillment_rate"`
	CreatedBy           string   `json:"created_by"`
	CreatedAt           string   `json:"created_at"`
}
