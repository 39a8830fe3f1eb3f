package vendor_service

// FieldSet is the closed set of JSON fields a request body may carry.
// Forbidden fields are known to the API but write protected for the operation.
type FieldSet struct {
	Accepted  []string
	Forbidden []string
}

// Classify reports whether field is accepted, forbidden or unknown
func (f FieldSet) Classify(field string) (accepted, forbidden bool) {
	for _, name := range f.Accepted {
		if name == field {
			return true, false
		}
	}
	for _, name := range f.Forbidden {
		if name == field {
			return false, true
		}
	}
	return false, false
}

var vendorReadOnly = []string{
	"id",
	"on_time_delivery_rate",
	"quality_rating_avg",
	"average_response_time",
	"fulfillment_rate",
	"created_by",
	"created_at",
	"updated_at",
}

var orderReadOnly = []string{
	"po_number",
	"order_date",
	"issue_date",
	"acknowledgment_date",
	"response_time",
	"on_time_delivery",
	"created_by",
	"created_at",
	"updated_at",
}

// Field sets per operation
var (
	CreateVendorFields = FieldSet{
		Accepted:  []string{"name", "contact_details", "address", "vendor_code"},
		Forbidden: vendorReadOnly,
	}
	UpdateVendorFields = CreateVendorFields

	CreatePurchaseOrderFields = FieldSet{
		Accepted:  []string{"vendor_code", "items", "quantity", "delivery_date"},
		Forbidden: append([]string{"status", "quality_rating"}, orderReadOnly...),
	}
	UpdatePurchaseOrderFields = FieldSet{
		Accepted:  []string{"vendor_code", "items", "quantity", "delivery_date", "status", "quality_rating"},
		Forbidden: orderReadOnly,
	}
)
