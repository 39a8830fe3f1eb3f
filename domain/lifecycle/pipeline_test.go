package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivam970806/VMS/domain"
	"github.com/shivam970806/VMS/domain/model"
)

var testNow = time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)

func ptr(t time.Time) *time.Time { return &t }

func newPendingOrder() *model.PurchaseOrder {
	return &model.PurchaseOrder{
		VendorID:  "01JVENDOR0000000000000000A",
		OrderDate: testNow,
		IssueDate: testNow,
		Quantity:  5,
		Status:    model.StatusPending,
	}
}

func TestAssignPONumber(t *testing.T) {
	order := newPendingOrder()

	require.NoError(t, AssignPONumber(order, Input{Now: testNow, VendorCode: "AC01"}))
	assert.Equal(t, "AC01-20250307-0001", order.PONumber)

	require.NoError(t, AssignPONumber(order, Input{Now: testNow, VendorCode: "AC01", LastPONumber: "AC01-20250307-0009"}))
	assert.Equal(t, "AC01-20250307-0001", order.PONumber, "an existing number is never overwritten")

	other := newPendingOrder()
	assert.Error(t, AssignPONumber(other, Input{Now: testNow}), "vendor code is required")

	corrupt := newPendingOrder()
	err := AssignPONumber(corrupt, Input{Now: testNow, VendorCode: "AC01", LastPONumber: "AC01-bad"})
	assert.ErrorIs(t, err, domain.ErrMalformedIdentifier)
	assert.Empty(t, corrupt.PONumber)
}

func TestComputeResponseTime(t *testing.T) {
	tests := []struct {
		name     string
		issue    time.Time
		ack      *time.Time
		expected string
		wantErr  bool
	}{
		{name: "not acknowledged", issue: testNow},
		{name: "ninety minutes", issue: testNow, ack: ptr(testNow.Add(90 * time.Minute)), expected: "1.5"},
		{name: "same instant", issue: testNow, ack: ptr(testNow), expected: "0"},
		{name: "sub-second components are discarded", issue: testNow.Add(900 * time.Millisecond), ack: ptr(testNow.Add(time.Hour + 100*time.Millisecond)), expected: "1"},
		{name: "rounded to two places", issue: testNow, ack: ptr(testNow.Add(20 * time.Minute)), expected: "0.33"},
		{name: "acknowledged before issue", issue: testNow, ack: ptr(testNow.Add(-time.Minute)), wantErr: true},
		{name: "zero issue date", ack: ptr(testNow), wantErr: true},
		{name: "zero acknowledgment date", issue: testNow, ack: &time.Time{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &model.PurchaseOrder{IssueDate: tt.issue, AcknowledgmentDate: tt.ack}

			err := ComputeResponseTime(order, Input{Now: testNow})
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidTimestamp)
				return
			}
			require.NoError(t, err)

			if tt.expected == "" {
				assert.False(t, order.ResponseTime.Valid, "response time requires an acknowledgment")
				return
			}
			require.True(t, order.ResponseTime.Valid)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(order.ResponseTime.Decimal), "got %s", order.ResponseTime.Decimal)
		})
	}
}

func TestApplyCompletion(t *testing.T) {
	t.Run("pending order has its rating zeroed", func(t *testing.T) {
		order := newPendingOrder()
		order.QualityRating = decimal.NewNullDecimal(decimal.NewFromInt(9))

		require.NoError(t, ApplyCompletion(order, Input{Now: testNow}))
		require.True(t, order.QualityRating.Valid)
		assert.True(t, order.QualityRating.Decimal.IsZero())
		assert.False(t, order.OnTimeDelivery)
	})

	t.Run("cancelled order has its rating zeroed", func(t *testing.T) {
		order := newPendingOrder()
		order.Status = model.StatusCancelled
		order.QualityRating = decimal.NewNullDecimal(decimal.NewFromInt(4))

		require.NoError(t, ApplyCompletion(order, Input{Now: testNow}))
		assert.True(t, order.QualityRating.Decimal.IsZero())
	})

	t.Run("completed without delivery date", func(t *testing.T) {
		order := newPendingOrder()
		order.Status = model.StatusCompleted
		order.QualityRating = decimal.NewNullDecimal(decimal.NewFromInt(8))

		require.NoError(t, ApplyCompletion(order, Input{Now: testNow}))
		require.NotNil(t, order.DeliveryDate)
		assert.True(t, order.DeliveryDate.Equal(testNow))
		assert.True(t, order.OnTimeDelivery)
		assert.True(t, order.QualityRating.Decimal.Equal(decimal.NewFromInt(8)), "completed ratings are kept")
	})

	t.Run("completed with delivery date in the future", func(t *testing.T) {
		order := newPendingOrder()
		order.Status = model.StatusCompleted
		order.DeliveryDate = ptr(testNow.Add(24 * time.Hour))

		require.NoError(t, ApplyCompletion(order, Input{Now: testNow}))
		assert.True(t, order.OnTimeDelivery)
	})

	t.Run("completed with delivery date in the past", func(t *testing.T) {
		order := newPendingOrder()
		order.Status = model.StatusCompleted
		order.DeliveryDate = ptr(testNow.Add(-24 * time.Hour))

		require.NoError(t, ApplyCompletion(order, Input{Now: testNow}))
		assert.False(t, order.OnTimeDelivery)
	})

	t.Run("completed with delivery date equal to now", func(t *testing.T) {
		order := newPendingOrder()
		order.Status = model.StatusCompleted
		order.DeliveryDate = ptr(testNow)

		require.NoError(t, ApplyCompletion(order, Input{Now: testNow}))
		assert.False(t, order.OnTimeDelivery, "the comparison is strict")
	})
}

func TestRun_WritePass(t *testing.T) {
	order := newPendingOrder()
	order.AcknowledgmentDate = ptr(testNow.Add(2 * time.Hour))
	order.Status = model.StatusCompleted
	order.QualityRating = decimal.NewNullDecimal(decimal.NewFromInt(8))

	err := Run(order, Input{Now: testNow.Add(3 * time.Hour), VendorCode: "AC01"}, WritePass...)
	require.NoError(t, err)

	assert.Equal(t, "AC01-20250307-0001", order.PONumber)
	assert.True(t, order.ResponseTime.Decimal.Equal(decimal.NewFromInt(2)))
	assert.True(t, order.OnTimeDelivery)
	assert.NotNil(t, order.DeliveryDate)
}

func TestRun_AllOrNothing(t *testing.T) {
	order := newPendingOrder()
	order.AcknowledgmentDate = ptr(testNow.Add(-time.Hour))
	order.QualityRating = decimal.NewNullDecimal(decimal.NewFromInt(5))

	err := Run(order, Input{Now: testNow, VendorCode: "AC01"}, WritePass...)
	assert.ErrorIs(t, err, domain.ErrInvalidTimestamp)

	assert.Empty(t, order.PONumber, "the identifier from step one must not leak")
	assert.False(t, order.ResponseTime.Valid)
	assert.True(t, order.QualityRating.Decimal.Equal(decimal.NewFromInt(5)), "later steps must not run")
}

func TestRun_StopsAtFirstError(t *testing.T) {
	var calls int
	boom := errors.New("boom")
	counting := func(*model.PurchaseOrder, Input) error { calls++; return nil }
	failing := func(*model.PurchaseOrder, Input) error { return boom }

	err := Run(newPendingOrder(), Input{}, counting, failing, counting)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRun_AcknowledgePassLeavesStatusFieldsAlone(t *testing.T) {
	order := newPendingOrder()
	order.PONumber = "AC01-20250307-0001"
	order.AcknowledgmentDate = ptr(testNow.Add(30 * time.Minute))

	require.NoError(t, Run(order, Input{Now: testNow}, AcknowledgePass...))

	assert.True(t, order.ResponseTime.Decimal.Equal(decimal.RequireFromString("0.5")))
	assert.False(t, order.QualityRating.Valid, "acknowledge does not run completion handling")
}
