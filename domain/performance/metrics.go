// Package performance derives a vendor's aggregate metrics from its order history.
package performance

import (
	"github.com/shopspring/decimal"

	"github.com/shivam970806/VMS/domain/model"
)

// Precision is the number of decimal places every metric is rounded to
const Precision = 2

var hundred = decimal.NewFromInt(100)

// Metrics is the set of aggregates kept on a vendor
type Metrics struct {
	OnTimeDeliveryRate  decimal.NullDecimal
	QualityRatingAvg    decimal.NullDecimal
	AverageResponseTime decimal.NullDecimal
	FulfillmentRate     decimal.NullDecimal
}

// FromVendor returns the metrics currently stored on v
func FromVendor(v *model.Vendor) Metrics {
	return Metrics{
		OnTimeDeliveryRate:  v.OnTimeDeliveryRate,
		QualityRatingAvg:    v.QualityRatingAvg,
		AverageResponseTime: v.AverageResponseTime,
		FulfillmentRate:     v.FulfillmentRate,
	}
}

// HasAny reports whether at least one metric is set
func (m Metrics) HasAny() bool {
	return m.OnTimeDeliveryRate.Valid ||
		m.QualityRatingAvg.Valid ||
		m.AverageResponseTime.Valid ||
		m.FulfillmentRate.Valid
}

// Equal compares two metric sets value by value
func (m Metrics) Equal(o Metrics) bool {
	return nullEqual(m.OnTimeDeliveryRate, o.OnTimeDeliveryRate) &&
		nullEqual(m.QualityRatingAvg, o.QualityRatingAvg) &&
		nullEqual(m.AverageResponseTime, o.AverageResponseTime) &&
		nullEqual(m.FulfillmentRate, o.FulfillmentRate)
}

// ApplyTo copies the metrics onto v
func (m Metrics) ApplyTo(v *model.Vendor) {
	v.OnTimeDeliveryRate = m.OnTimeDeliveryRate
	v.QualityRatingAvg = m.QualityRatingAvg
	v.AverageResponseTime = m.AverageResponseTime
	v.FulfillmentRate = m.FulfillmentRate
}

// Snapshot builds the history record for the metrics as they stand on v
func Snapshot(v *model.Vendor) *model.HistoricalPerformance {
	return &model.HistoricalPerformance{
		VendorID:            v.ID,
		OnTimeDeliveryRate:  v.OnTimeDeliveryRate,
		QualityRatingAvg:    v.QualityRatingAvg,
		AverageResponseTime: v.AverageResponseTime,
		FulfillmentRate:     v.FulfillmentRate,
		CreatedBy:           v.CreatedBy,
	}
}

// Compute derives the four metrics from the complete order set of one vendor.
// Aggregates over an empty set are null.
func Compute(orders []*model.PurchaseOrder) Metrics {
	var (
		total       = len(orders)
		completed   int
		onTime      int
		acked       int
		responseSum = decimal.Zero
		rated       int
		ratingSum   = decimal.Zero
	)

	for _, o := range orders {
		if o.AcknowledgmentDate != nil && o.ResponseTime.Valid {
			acked++
			responseSum = responseSum.Add(o.ResponseTime.Decimal)
		}
		if o.Status != model.StatusCompleted {
			continue
		}
		completed++
		if o.OnTimeDelivery {
			onTime++
		}
		if o.QualityRating.Valid {
			rated++
			ratingSum = ratingSum.Add(o.QualityRating.Decimal)
		}
	}

	var m Metrics
	if acked > 0 {
		m.AverageResponseTime = mean(responseSum, acked)
	}
	if total > 0 {
		m.FulfillmentRate = percent(completed, total)
	}
	if rated > 0 {
		m.QualityRatingAvg = mean(ratingSum, rated)
	}
	if completed > 0 {
		m.OnTimeDeliveryRate = percent(onTime, completed)
	}
	return m
}

func mean(sum decimal.Decimal, n int) decimal.NullDecimal {
	return decimal.NewNullDecimal(sum.Div(decimal.NewFromInt(int64(n))).Round(Precision))
}

func percent(part, whole int) decimal.NullDecimal {
	ratio := decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(whole)))
	return decimal.NewNullDecimal(ratio.Round(Precision))
}

func nullEqual(a, b decimal.NullDecimal) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || a.Decimal.Equal(b.Decimal)
}

// Float converts a nullable metric into a JSON friendly pointer
func Float(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}
