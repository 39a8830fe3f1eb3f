package performance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shivam970806/VMS/domain/model"
)

func dec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func ackTime() *time.Time {
	t := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &t
}

func assertNullDecimal(t *testing.T, expected string, actual decimal.NullDecimal, field string) {
	t.Helper()
	if expected == "" {
		assert.False(t, actual.Valid, "%s should be null", field)
		return
	}
	if assert.True(t, actual.Valid, "%s should be set", field) {
		assert.True(t, decimal.RequireFromString(expected).Equal(actual.Decimal), "%s: expected %s, got %s", field, expected, actual.Decimal)
	}
}

func TestCompute(t *testing.T) {
	ack := ackTime()

	tests := []struct {
		name        string
		orders      []*model.PurchaseOrder
		onTime      string
		quality     string
		response    string
		fulfillment string
	}{
		{
			name: "no orders",
		},
		{
			name: "single pending unacknowledged order",
			orders: []*model.PurchaseOrder{
				{Status: model.StatusPending, QualityRating: dec("0")},
			},
			fulfillment: "0",
		},
		{
			name: "acknowledged pending order",
			orders: []*model.PurchaseOrder{
				{Status: model.StatusPending, AcknowledgmentDate: ack, ResponseTime: dec("1.5")},
			},
			response:    "1.5",
			fulfillment: "0",
		},
		{
			name: "one completed on time",
			orders: []*model.PurchaseOrder{
				{Status: model.StatusCompleted, AcknowledgmentDate: ack, ResponseTime: dec("2"), QualityRating: dec("8"), OnTimeDelivery: true},
			},
			onTime:      "100",
			quality:     "8",
			response:    "2",
			fulfillment: "100",
		},
		{
			name: "completed plus cancelled",
			orders: []*model.PurchaseOrder{
				{Status: model.StatusCompleted, AcknowledgmentDate: ack, ResponseTime: dec("2"), QualityRating: dec("8"), OnTimeDelivery: true},
				{Status: model.StatusCancelled, QualityRating: dec("0")},
			},
			onTime:      "100",
			quality:     "8",
			response:    "2",
			fulfillment: "50",
		},
		{
			name: "rounding to two places",
			orders: []*model.PurchaseOrder{
				{Status: model.StatusCompleted, AcknowledgmentDate: ack, ResponseTime: dec("1"), QualityRating: dec("7"), OnTimeDelivery: true},
				{Status: model.StatusCompleted, AcknowledgmentDate: ack, ResponseTime: dec("1"), QualityRating: dec("8")},
				{Status: model.StatusCompleted, AcknowledgmentDate: ack, ResponseTime: dec("2"), QualityRating: dec("8")},
			},
			onTime:      "33.33",
			quality:     "7.67",
			response:    "1.33",
			fulfillment: "100",
		},
		{
			name: "completed without a rating",
			orders: []*model.PurchaseOrder{
				{Status: model.StatusCompleted, AcknowledgmentDate: ack, ResponseTime: dec("3")},
				{Status: model.StatusPending},
			},
			onTime:      "0",
			response:    "3",
			fulfillment: "50",
		},
		{
			name: "acknowledgment without response time is ignored",
			orders: []*model.PurchaseOrder{
				{Status: model.StatusPending, AcknowledgmentDate: ack},
			},
			fulfillment: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Compute(tt.orders)

			assertNullDecimal(t, tt.onTime, m.OnTimeDeliveryRate, "on_time_delivery_rate")
			assertNullDecimal(t, tt.quality, m.QualityRatingAvg, "quality_rating_avg")
			assertNullDecimal(t, tt.response, m.AverageResponseTime, "average_response_time")
			assertNullDecimal(t, tt.fulfillment, m.FulfillmentRate, "fulfillment_rate")
		})
	}
}

func TestCompute_Idempotent(t *testing.T) {
	orders := []*model.PurchaseOrder{
		{Status: model.StatusCompleted, AcknowledgmentDate: ackTime(), ResponseTime: dec("4.25"), QualityRating: dec("9"), OnTimeDelivery: true},
		{Status: model.StatusCancelled},
	}

	assert.True(t, Compute(orders).Equal(Compute(orders)))
}

func TestHasAny(t *testing.T) {
	assert.False(t, Metrics{}.HasAny())
	assert.True(t, Metrics{FulfillmentRate: dec("0")}.HasAny(), "a zero metric still counts as set")
	assert.True(t, Metrics{AverageResponseTime: dec("1")}.HasAny())
}

func TestEqual(t *testing.T) {
	a := Metrics{FulfillmentRate: dec("50.00"), QualityRatingAvg: dec("8")}
	b := Metrics{FulfillmentRate: dec("50"), QualityRatingAvg: dec("8.0")}

	assert.True(t, a.Equal(b), "equal values with different scale are equal")
	assert.False(t, a.Equal(Metrics{FulfillmentRate: dec("50")}), "null and set differ")
}

func TestFromVendorApplyToSnapshot(t *testing.T) {
	vendor := &model.Vendor{
		ID:                 "01JVENDOR0000000000000000A",
		CreatedBy:          "buyer-1",
		FulfillmentRate:    dec("100"),
		QualityRatingAvg:   dec("8"),
		OnTimeDeliveryRate: dec("100"),
	}

	current := FromVendor(vendor)
	assert.True(t, current.HasAny())

	snapshot := Snapshot(vendor)
	assert.Equal(t, vendor.ID, snapshot.VendorID)
	assert.Equal(t, "buyer-1", snapshot.CreatedBy)
	assert.True(t, snapshot.FulfillmentRate.Decimal.Equal(decimal.NewFromInt(100)))
	assert.False(t, snapshot.AverageResponseTime.Valid)

	Metrics{FulfillmentRate: dec("50")}.ApplyTo(vendor)
	assert.True(t, vendor.FulfillmentRate.Decimal.Equal(decimal.NewFromInt(50)))
	assert.False(t, vendor.QualityRatingAvg.Valid, "ApplyTo overwrites with nulls")

	// the snapshot keeps the pre-update values
	assert.True(t, snapshot.QualityRatingAvg.Valid)
}

func TestFloat(t *testing.T) {
	assert.Nil(t, Float(decimal.NullDecimal{}))

	f := Float(dec("33.33"))
	if assert.NotNil(t, f) {
		assert.Equal(t, 33.33, *f)
	}
}
