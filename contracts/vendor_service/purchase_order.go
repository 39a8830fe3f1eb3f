package vendor_service

import "encoding/json"

// CreatePurchaseOrderRequest represents the request payload for placing an order.
// DeliveryDate is kept raw so the handler can report malformed timestamps precisely.
type CreatePurchaseOrderRequest struct {
	VendorCode   string          `json:"vendor_code" validate:"required,max=50"`
	Items        map[string]any  `json:"items" validate:"required"`
	Quantity     int             `json:"quantity" validate:"required,gte=1"`
	DeliveryDate json.RawMessage `json:"delivery_date"`
}

// UpdatePurchaseOrderRequest represents a partial update of a pending order
type UpdatePurchaseOrderRequest struct {
	VendorCode    *string         `json:"vendor_code" validate:"omitempty,max=50"`
	Items         map[string]any  `json:"items"`
	Quantity      *int            `json:"quantity" validate:"omitempty,gte=1"`
	DeliveryDate  json.RawMessage `json:"delivery_date"`
	Status        *string         `json:"status"`
	QualityRating json.RawMessage `json:"quality_rating"`
}

// PurchaseOrderResponse represents the response payload for a purchase order
type PurchaseOrderResponse struct {
	PONumber           string         `json:"po_number"`
	VendorCode         string         `json:"vendor_code"`
	OrderDate          string         `json:"order_date"`
	DeliveryDate       *string        `json:"delivery_date"`
	Items              map[string]any `json:"items"`
	Quantity           int            `json:"quantity"`
	Status             string         `json:"status"`
	QualityRating      *float64       `json:"quality_rating"`
	IssueDate          string         `json:"issue_date"`
	AcknowledgmentDate *string        `json:"acknowledgment_date"`
	ResponseTime       *float64       `json:"response_time"`
	OnTimeDelivery     bool           `json:"on_time_delivery"`
	CreatedBy          string         `json:"created_by"`
	CreatedAt          string         `json:"created_at"`
	UpdatedAt          string         `json:"updated_at"`
}
