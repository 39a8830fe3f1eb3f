// Package event defines the domain events emitted after a committed write.
package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shivam970806/VMS/domain/model"
	"github.com/shivam970806/VMS/domain/performance"
)

// TypePerformanceUpdated names the event emitted after vendor metrics are recomputed
const TypePerformanceUpdated = "PerformanceUpdated"

// PerformanceUpdated announces a vendor's freshly recomputed metrics
type PerformanceUpdated struct {
	EventID             string    `json:"event_id"`
	Type                string    `json:"type"`
	VendorID            string    `json:"vendor_id"`
	VendorCode          string    `json:"vendor_code"`
	PONumber            string    `json:"po_number,omitempty"`
	Trigger             string    `json:"trigger"`
	OnTimeDeliveryRate  *float64  `json:"on_time_delivery_rate"`
	QualityRatingAvg    *float64  `json:"quality_rating_avg"`
	AverageResponseTime *float64  `json:"average_response_time"`
	FulfillmentRate     *float64  `json:"fulfillment_rate"`
	SnapshotTaken       bool      `json:"snapshot_taken"`
	OccurredAt          time.Time `json:"occurred_at"`
}

// NewPerformanceUpdated builds the event for vendor after a write caused by trigger
func NewPerformanceUpdated(vendor *model.Vendor, poNumber, trigger string, snapshotTaken bool, at time.Time) PerformanceUpdated {
	m := performance.FromVendor(vendor)
	return PerformanceUpdated{
		EventID:             uuid.NewString(),
		Type:                TypePerformanceUpdated,
		VendorID:            vendor.ID,
		VendorCode:          vendor.VendorCode,
		PONumber:            poNumber,
		Trigger:             trigger,
		OnTimeDeliveryRate:  performance.Float(m.OnTimeDeliveryRate),
		QualityRatingAvg:    performance.Float(m.QualityRatingAvg),
		AverageResponseTime: performance.Float(m.AverageResponseTime),
		FulfillmentRate:     performance.Float(m.FulfillmentRate),
		SnapshotTaken:       snapshotTaken,
		OccurredAt:          at.UTC(),
	}
}

// PerformancePublisher hands events to the message broker
type PerformancePublisher interface {
	PublishPerformanceUpdated(ctx context.Context, evt PerformanceUpdated) error
}

// NopPublisher drops every event
type NopPublisher struct{}

// PublishPerformanceUpdated implements PerformancePublisher
func (NopPublisher) PublishPerformanceUpdated(context.Context, PerformanceUpdated) error {
	return nil
}
