package lifecycle

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shivam970806/VMS/domain"
	"github.com/shivam970806/VMS/domain/model"
)

// Input carries what the steps need besides the order itself
type Input struct {
	// Now is the instant the write happens
	Now time.Time
	// VendorCode of the order's vendor
	VendorCode string
	// LastPONumber is the number of the vendor's most recent order, empty if none
	LastPONumber string
}

// Step transforms an order in place
type Step func(order *model.PurchaseOrder, in Input) error

var secondsPerHour = decimal.NewFromInt(3600)

// AssignPONumber generates the order identifier unless one is already present
func AssignPONumber(order *model.PurchaseOrder, in Input) error {
	if order.PONumber != "" {
		return nil
	}
	if in.VendorCode == "" {
		return errors.New("vendor code is required to assign a purchase order number")
	}

	poNumber, err := NextPONumber(in.VendorCode, in.LastPONumber, in.Now)
	if err != nil {
		return err
	}
	order.PONumber = poNumber
	return nil
}

// ComputeResponseTime sets ResponseTime to the hours between issue and
// acknowledgment, compared at second granularity
func ComputeResponseTime(order *model.PurchaseOrder, _ Input) error {
	if order.AcknowledgmentDate == nil {
		return nil
	}
	if order.IssueDate.IsZero() {
		return domain.ErrInvalidTimestamp.WithField("issue_date")
	}
	if order.AcknowledgmentDate.IsZero() {
		return domain.ErrInvalidTimestamp.WithField("acknowledgment_date")
	}

	issued := order.IssueDate.Truncate(time.Second)
	acknowledged := order.AcknowledgmentDate.Truncate(time.Second)
	if acknowledged.Before(issued) {
		return domain.ErrInvalidTimestamp.
			WithMessage("acknowledgment date precedes issue date").
			WithField("acknowledgment_date")
	}

	seconds := decimal.NewFromInt(int64(acknowledged.Sub(issued) / time.Second))
	order.ResponseTime = decimal.NewNullDecimal(seconds.Div(secondsPerHour).Round(2))
	return nil
}

// ApplyCompletion derives delivery fields for completed orders and zeroes the
// quality rating of every other order
func ApplyCompletion(order *model.PurchaseOrder, in Input) error {
	if order.Status != model.StatusCompleted {
		order.QualityRating = decimal.NewNullDecimal(decimal.Zero)
		return nil
	}

	if order.DeliveryDate == nil {
		delivered := in.Now
		order.DeliveryDate = &delivered
		order.OnTimeDelivery = true
		return nil
	}

	// The stored delivery date is compared against the save instant.
	if order.DeliveryDate.After(in.Now) {
		order.OnTimeDelivery = true
	}
	return nil
}

// WritePass is applied on every create and update
var WritePass = []Step{AssignPONumber, ComputeResponseTime, ApplyCompletion}

// AcknowledgePass is applied when an order is acknowledged
var AcknowledgePass = []Step{ComputeResponseTime}

// Run applies steps in order to a working copy and only writes it back to
// order when every step succeeded
func Run(order *model.PurchaseOrder, in Input, steps ...Step) error {
	working := *order
	if order.DeliveryDate != nil {
		d := *order.DeliveryDate
		working.DeliveryDate = &d
	}
	if order.AcknowledgmentDate != nil {
		a := *order.AcknowledgmentDate
		working.AcknowledgmentDate = &a
	}

	for _, step := range steps {
		if err := step(&working, in); err != nil {
			return err
		}
	}

	*order = working
	return nil
}
