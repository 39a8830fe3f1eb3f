package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shivam970806/VMS/domain"
	"github.com/shivam970806/VMS/domain/event"
	"github.com/shivam970806/VMS/domain/model"
	"github.com/shivam970806/VMS/domain/repository"
	"github.com/shivam970806/VMS/pkg/logger"
	pg "github.com/shivam970806/VMS/pkg/postgres"
	"github.com/shivam970806/VMS/repository/postgres"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishPerformanceUpdated(ctx context.Context, evt event.PerformanceUpdated) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

type countingRecorder struct {
	recomputes map[string]int
	snapshots  int
	events     int
	failures   int
}

func (r *countingRecorder) RecordRecompute(trigger string) { r.recomputes[trigger]++ }

func (r *countingRecorder) RecordSnapshot() { r.snapshots++ }

func (r *countingRecorder) RecordEvent(_ string, err error) {
	r.events++
	if err != nil {
		r.failures++
	}
}

type testEnv struct {
	vendors     VendorUseCase
	orders      PurchaseOrderUseCase
	performance PerformanceUseCase
	historyRepo repository.HistoricalPerformance
	orderRepo   repository.PurchaseOrder
	clock       *fakeClock
	recorder    *countingRecorder
}

func setupEnv(t *testing.T, publisher event.PerformancePublisher) testEnv {
	t.Helper()
	client, err := pg.NewSQLiteClient(pg.SQLiteConfig{DSN: "file:" + ulid.Make().String() + "?mode=memory&cache=shared"})
	require.NoError(t, err, "Failed to open sqlite")
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Migrate(model.Models()...), "Failed to migrate")

	db := client.GetDB()
	log := logger.NoOpLogger()
	transactor := postgres.NewTransactor(db, log)
	vendorRepo := postgres.NewVendorRepository(db, log)
	orderRepo := postgres.NewPurchaseOrderRepository(db, log)
	historyRepo := postgres.NewHistoricalPerformanceRepository(db, log)

	recorder := &countingRecorder{recomputes: map[string]int{}}
	clock := &fakeClock{now: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)}

	performanceUC := NewPerformanceUseCase(transactor, vendorRepo, orderRepo, historyRepo, recorder, log)
	orderUC := NewPurchaseOrderUseCase(transactor, vendorRepo, orderRepo, performanceUC, publisher, recorder, log)
	orderUC.(*purchaseOrderUseCase).now = clock.Now

	return testEnv{
		vendors:     NewVendorUseCase(transactor, vendorRepo, orderRepo, historyRepo, log),
		orders:      orderUC,
		performance: performanceUC,
		historyRepo: historyRepo,
		orderRepo:   orderRepo,
		clock:       clock,
		recorder:    recorder,
	}
}

func (e testEnv) createVendor(t *testing.T, code string) *model.Vendor {
	t.Helper()
	vendor := &model.Vendor{
		Name:           "Vendor " + code,
		ContactDetails: "orders@" + code + ".example",
		Address:        "12 Dock Street",
		VendorCode:     code,
		CreatedBy:      "buyer-1",
	}
	require.NoError(t, e.vendors.CreateVendor(context.Background(), vendor), "CreateVendor() should not fail")
	return vendor
}

func (e testEnv) createOrder(t *testing.T, code string) *model.PurchaseOrder {
	t.Helper()
	order, err := e.orders.CreateOrder(context.Background(), CreateOrderInput{
		VendorCode: code,
		Items:      map[string]any{"widget": float64(4)},
		Quantity:   4,
		CreatedBy:  "buyer-1",
	})
	require.NoError(t, err, "CreateOrder() should not fail")
	return order
}

func (e testEnv) historyCount(t *testing.T, vendorID string) int {
	t.Helper()
	count, err := e.historyRepo.CountByVendor(context.Background(), vendorID)
	require.NoError(t, err)
	return count
}

func strPtr(s string) *string { return &s }

func ratingPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func assertMetric(t *testing.T, want string, got decimal.NullDecimal, name string) {
	t.Helper()
	if want == "" {
		assert.False(t, got.Valid, "%s should be null", name)
		return
	}
	require.True(t, got.Valid, "%s should be set", name)
	assert.True(t, decimal.RequireFromString(want).Equal(got.Decimal), "%s: want %s, got %s", name, want, got.Decimal)
}

func TestOrderLifecycle_CompleteAndCancel(t *testing.T) {
	env := setupEnv(t, nil)
	ctx := context.Background()
	vendor := env.createVendor(t, "AC01")

	order := env.createOrder(t, "AC01")
	assert.Equal(t, "AC01-20240305-0001", order.PONumber)
	assert.Equal(t, model.StatusPending, order.Status)
	assert.Nil(t, order.AcknowledgmentDate, "New orders are not acknowledged")

	env.clock.Advance(2 * time.Hour)
	acked, err := env.orders.AcknowledgeOrder(ctx, order.PONumber)
	require.NoError(t, err, "AcknowledgeOrder() should not fail")
	require.NotNil(t, acked.AcknowledgmentDate)
	assertMetric(t, "2", acked.ResponseTime, "response time")

	env.clock.Advance(time.Hour)
	completed, err := env.orders.UpdateOrder(ctx, order.PONumber, OrderPatch{
		Status:        strPtr(model.StatusCompleted),
		QualityRating: ratingPtr(8),
	}, "buyer-1")
	require.NoError(t, err, "UpdateOrder() should complete the order")
	assert.Equal(t, model.StatusCompleted, completed.Status)
	require.NotNil(t, completed.DeliveryDate, "Completion stamps the delivery date")
	assert.True(t, completed.OnTimeDelivery)

	metrics, err := env.performance.GetVendorPerformance(ctx, "AC01")
	require.NoError(t, err)
	assertMetric(t, "100", metrics.FulfillmentRate, "fulfillment rate")
	assertMetric(t, "8", metrics.QualityRatingAvg, "quality rating")
	assertMetric(t, "100", metrics.OnTimeDeliveryRate, "on-time rate")
	assertMetric(t, "2", metrics.AverageResponseTime, "response time")

	second := env.createOrder(t, "AC01")
	assert.Equal(t, "AC01-20240305-0002", second.PONumber)

	cancelled, err := env.orders.UpdateOrder(ctx, second.PONumber, OrderPatch{Status: strPtr(model.StatusCancelled)}, "buyer-1")
	require.NoError(t, err, "Pending orders can be cancelled before acknowledgment")
	assert.Equal(t, model.StatusCancelled, cancelled.Status)
	assertMetric(t, "0", cancelled.QualityRating, "cancelled rating")

	metrics, err = env.performance.GetVendorPerformance(ctx, "AC01")
	require.NoError(t, err)
	assertMetric(t, "50", metrics.FulfillmentRate, "fulfillment rate")
	assertMetric(t, "8", metrics.QualityRatingAvg, "quality rating")
	assertMetric(t, "100", metrics.OnTimeDeliveryRate, "on-time rate")

	// every write after the first one archives the previous metrics
	assert.Equal(t, 4, env.historyCount(t, vendor.ID))
	assert.Equal(t, 4, env.recorder.snapshots)
	assert.Equal(t, 2, env.recorder.recomputes[TriggerCreateOrder])
	assert.Equal(t, 2, env.recorder.recomputes[TriggerUpdateOrder])
	assert.Equal(t, 1, env.recorder.recomputes[TriggerAcknowledgeOrder])

	history, total, err := env.performance.ListPerformanceHistory(ctx, "AC01", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, history, 4)
	// snapshots hold the metrics as they stood before each write
	assertMetric(t, "50", history[0].FulfillmentRate, "metrics before the cancellation")
	assertMetric(t, "100", history[1].FulfillmentRate, "metrics before the second order")
	assertMetric(t, "0", history[3].FulfillmentRate, "metrics before the acknowledgment")
}

func TestCreateOrder_FirstOrderTakesNoSnapshot(t *testing.T) {
	env := setupEnv(t, nil)
	vendor := env.createVendor(t, "AC02")

	env.createOrder(t, "AC02")

	assert.Equal(t, 0, env.historyCount(t, vendor.ID), "A vendor without metrics has nothing to archive")
	metrics, err := env.performance.GetVendorPerformance(context.Background(), "AC02")
	require.NoError(t, err)
	assertMetric(t, "0", metrics.FulfillmentRate, "fulfillment rate")
	assertMetric(t, "", metrics.QualityRatingAvg, "quality rating")
	assertMetric(t, "", metrics.OnTimeDeliveryRate, "on-time rate")
	assertMetric(t, "", metrics.AverageResponseTime, "response time")
}

func TestCreateOrder_SequenceIncreases(t *testing.T) {
	env := setupEnv(t, nil)
	env.createVendor(t, "SEQ")
	env.createVendor(t, "OTHER")

	assert.Equal(t, "SEQ-20240305-0001", env.createOrder(t, "SEQ").PONumber)
	env.clock.Advance(time.Minute)
	assert.Equal(t, "SEQ-20240305-0002", env.createOrder(t, "SEQ").PONumber)
	assert.Equal(t, "OTHER-20240305-0001", env.createOrder(t, "OTHER").PONumber, "Sequences are per vendor")

	env.clock.Advance(24 * time.Hour)
	assert.Equal(t, "SEQ-20240306-0003", env.createOrder(t, "SEQ").PONumber, "The sequence carries over to the next day")
}

func TestCreateOrder_Rejections(t *testing.T) {
	env := setupEnv(t, nil)
	env.createVendor(t, "REJ")
	ctx := context.Background()

	tests := []struct {
		name    string
		input   CreateOrderInput
		wantErr error
	}{
		{
			name:    "unknown vendor",
			input:   CreateOrderInput{VendorCode: "NOPE", Quantity: 1, CreatedBy: "buyer-1"},
			wantErr: domain.ErrMissingVendor,
		},
		{
			name:    "status supplied",
			input:   CreateOrderInput{VendorCode: "REJ", Quantity: 1, CreatedBy: "buyer-1", Status: strPtr(model.StatusCompleted)},
			wantErr: domain.ErrForbiddenField,
		},
		{
			name:    "rating supplied",
			input:   CreateOrderInput{VendorCode: "REJ", Quantity: 1, CreatedBy: "buyer-1", QualityRating: ratingPtr(5)},
			wantErr: domain.ErrForbiddenField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := env.orders.CreateOrder(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, order)
		})
	}

	_, total, err := env.orders.ListOrders(ctx, "", 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total, "Rejected creates must not store anything")
}

func TestUpdateOrder_NotAcknowledgedLeavesOrderUnchanged(t *testing.T) {
	env := setupEnv(t, nil)
	ctx := context.Background()
	vendor := env.createVendor(t, "NACK")
	order := env.createOrder(t, "NACK")
	before := env.historyCount(t, vendor.ID)

	_, err := env.orders.UpdateOrder(ctx, order.PONumber, OrderPatch{QualityRating: ratingPtr(7)}, "buyer-1")
	assert.ErrorIs(t, err, domain.ErrNotAcknowledged)

	_, err = env.orders.UpdateOrder(ctx, order.PONumber, OrderPatch{
		Status:   strPtr(model.StatusCompleted),
		Quantity: func() *int { q := 99; return &q }(),
	}, "buyer-1")
	assert.ErrorIs(t, err, domain.ErrNotAcknowledged)

	stored, err := env.orders.GetOrder(ctx, order.PONumber)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.Status)
	assert.Equal(t, 4, stored.Quantity, "A rejected patch must not apply any field")
	assertMetric(t, "0", stored.QualityRating, "quality rating")
	assert.Equal(t, before, env.historyCount(t, vendor.ID), "A rejected patch must not archive metrics")
}

func TestUpdateOrder_Validation(t *testing.T) {
	env := setupEnv(t, nil)
	ctx := context.Background()
	env.createVendor(t, "VAL")
	env.createVendor(t, "VAL2")
	order := env.createOrder(t, "VAL")
	_, err := env.orders.AcknowledgeOrder(ctx, order.PONumber)
	require.NoError(t, err)

	tests := []struct {
		name    string
		patch   OrderPatch
		wantErr error
	}{
		{name: "owner change", patch: OrderPatch{CreatedBy: strPtr("someone")}, wantErr: domain.ErrForbiddenField},
		{name: "vendor change", patch: OrderPatch{VendorCode: strPtr("VAL2")}, wantErr: domain.ErrForbiddenField},
		{name: "rating above range", patch: OrderPatch{QualityRating: ratingPtr(11)}, wantErr: domain.ErrInvalidRating},
		{name: "rating below range", patch: OrderPatch{QualityRating: ratingPtr(-1)}, wantErr: domain.ErrInvalidRating},
		{name: "unknown status", patch: OrderPatch{Status: strPtr("Shipped")}, wantErr: domain.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.orders.UpdateOrder(ctx, order.PONumber, tt.patch, "buyer-1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	updated, err := env.orders.UpdateOrder(ctx, order.PONumber, OrderPatch{VendorCode: strPtr("VAL"), Quantity: func() *int { q := 6; return &q }()}, "buyer-1")
	require.NoError(t, err, "Repeating the current vendor code is allowed")
	assert.Equal(t, 6, updated.Quantity)

	_, err = env.orders.UpdateOrder(ctx, "VAL-20240305-9999", OrderPatch{}, "buyer-1")
	assert.ErrorIs(t, err, domain.ErrPurchaseOrderNotFound)
}

func TestUpdateOrder_ClosedOrdersAreImmutable(t *testing.T) {
	env := setupEnv(t, nil)
	ctx := context.Background()
	env.createVendor(t, "IMM")
	order := env.createOrder(t, "IMM")

	_, err := env.orders.UpdateOrder(ctx, order.PONumber, OrderPatch{Status: strPtr(model.StatusCancelled)}, "buyer-1")
	require.NoError(t, err)

	_, err = env.orders.UpdateOrder(ctx, order.PONumber, OrderPatch{Status: strPtr(model.StatusPending)}, "buyer-1")
	assert.ErrorIs(t, err, domain.ErrImmutable)
}

func TestUpdateOrder_LateDeliveryIsNotOnTime(t *testing.T) {
	env := setupEnv(t, nil)
	ctx := context.Background()
	env.createVendor(t, "LATE")
	order := env.createOrder(t, "LATE")

	past := env.clock.Now().Add(-time.Hour)
	_, err := env.orders.UpdateOrder(ctx, order.PONumber, OrderPatch{DeliveryDate: &past}, "buyer-1")
	require.NoError(t, err)
	_, err = env.orders.AcknowledgeOrder(ctx, order.PONumber)
	require.NoError(t, err)

	completed, err := env.orders.UpdateOrder(ctx, order.PONumber, OrderPatch{Status: strPtr(model.StatusCompleted), QualityRating: ratingPtr(5)}, "buyer-1")
	require.NoError(t, err)
	assert.False(t, completed.OnTimeDelivery)

	metrics, err := env.performance.GetVendorPerformance(ctx, "LATE")
	require.NoError(t, err)
	assertMetric(t, "0", metrics.OnTimeDeliveryRate, "on-time rate")
	assertMetric(t, "5", metrics.QualityRatingAvg, "quality rating")
}

func TestAcknowledgeOrder_Twice(t *testing.T) {
	env := setupEnv(t, nil)
	ctx := context.Background()
	env.createVendor(t, "ACK")
	order := env.createOrder(t, "ACK")

	env.clock.Advance(30 * time.Minute)
	first, err := env.orders.AcknowledgeOrder(ctx, order.PONumber)
	require.NoError(t, err)
	assertMetric(t, "0.5", first.ResponseTime, "response time")

	env.clock.Advance(time.Hour)
	_, err = env.orders.AcknowledgeOrder(ctx, order.PONumber)
	assert.ErrorIs(t, err, domain.ErrAlreadyAcknowledged)

	stored, err := env.orders.GetOrder(ctx, order.PONumber)
	require.NoError(t, err)
	require.NotNil(t, stored.AcknowledgmentDate)
	assert.True(t, first.AcknowledgmentDate.Equal(*stored.AcknowledgmentDate), "The acknowledgment date is set once")

	_, err = env.orders.AcknowledgeOrder(ctx, "ACK-20240305-0042")
	assert.ErrorIs(t, err, domain.ErrPurchaseOrderNotFound)
}

func TestDeleteOrder_Recomputes(t *testing.T) {
	env := setupEnv(t, nil)
	ctx := context.Background()
	env.createVendor(t, "DEL")
	first := env.createOrder(t, "DEL")
	second := env.createOrder(t, "DEL")

	_, err := env.orders.UpdateOrder(ctx, second.PONumber, OrderPatch{Status: strPtr(model.StatusCancelled)}, "buyer-1")
	require.NoError(t, err)

	require.NoError(t, env.orders.DeleteOrder(ctx, first.PONumber))

	metrics, err := env.performance.GetVendorPerformance(ctx, "DEL")
	require.NoError(t, err)
	assertMetric(t, "0", metrics.FulfillmentRate, "fulfillment rate")

	_, err = env.orders.GetOrder(ctx, first.PONumber)
	assert.ErrorIs(t, err, domain.ErrPurchaseOrderNotFound)
	assert.ErrorIs(t, env.orders.DeleteOrder(ctx, first.PONumber), domain.ErrPurchaseOrderNotFound)
	assert.Equal(t, 1, env.recorder.recomputes[TriggerDeleteOrder])
}

func TestListOrders(t *testing.T) {
	env := setupEnv(t, nil)
	ctx := context.Background()
	env.createVendor(t, "LA")
	env.createVendor(t, "LB")
	env.createOrder(t, "LA")
	env.createOrder(t, "LA")
	env.createOrder(t, "LB")

	orders, total, err := env.orders.ListOrders(ctx, "LA", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, orders, 2)

	_, total, err = env.orders.ListOrders(ctx, "", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	_, _, err = env.orders.ListOrders(ctx, "NONE", 0, 10)
	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
}

func TestPublish_EventsFollowCommittedWrites(t *testing.T) {
	publisher := new(mockPublisher)
	env := setupEnv(t, publisher)
	ctx := context.Background()
	env.createVendor(t, "PUB")

	publisher.On("PublishPerformanceUpdated", mock.Anything, mock.MatchedBy(func(evt event.PerformanceUpdated) bool {
		return evt.Trigger == TriggerCreateOrder && evt.VendorCode == "PUB" && !evt.SnapshotTaken
	})).Return(nil).Once()
	publisher.On("PublishPerformanceUpdated", mock.Anything, mock.MatchedBy(func(evt event.PerformanceUpdated) bool {
		return evt.Trigger == TriggerAcknowledgeOrder && evt.SnapshotTaken
	})).Return(errors.New("broker unavailable")).Once()

	order := env.createOrder(t, "PUB")
	_, err := env.orders.AcknowledgeOrder(ctx, order.PONumber)
	assert.NoError(t, err, "Publish failures must not fail the request")

	// rejected writes publish nothing
	_, err = env.orders.AcknowledgeOrder(ctx, order.PONumber)
	assert.ErrorIs(t, err, domain.ErrAlreadyAcknowledged)

	publisher.AssertExpectations(t)
	assert.Equal(t, 2, env.recorder.events)
	assert.Equal(t, 1, env.recorder.failures)
}

func TestVendorUseCase_CreateAndGet(t *testing.T) {
	env := setupEnv(t, nil)
	ctx := context.Background()
	vendor := env.createVendor(t, "V1")
	assert.NotEmpty(t, vendor.ID)

	got, err := env.vendors.GetVendor(ctx, "V1")
	require.NoError(t, err)
	assert.Equal(t, vendor.ID, got.ID)
	assert.False(t, got.FulfillmentRate.Valid, "New vendors carry no metrics")

	_, err = env.vendors.GetVendor(ctx, "V404")
	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
}

func TestVendorUseCase_CreateRejections(t *testing.T) {
	env := setupEnv(t, nil)
	ctx := context.Background()
	env.createVendor(t, "DUP")

	tests := []struct {
		name    string
		vendor  *model.Vendor
		wantErr error
	}{
		{
			name:    "missing code",
			vendor:  &model.Vendor{Name: "Nameless", CreatedBy: "buyer-1"},
			wantErr: domain.ErrVendorCodeRequired,
		},
		{
			name:    "missing name",
			vendor:  &model.Vendor{VendorCode: "X1", Name: "  ", CreatedBy: "buyer-1"},
			wantErr: domain.ErrVendorNameRequired,
		},
		{
			name:    "duplicate code",
			vendor:  &model.Vendor{VendorCode: "DUP", Name: "Another", CreatedBy: "buyer-1"},
			wantErr: domain.ErrVendorCodeAlreadyExists,
		},
		{
			name:    "duplicate name",
			vendor:  &model.Vendor{VendorCode: "NEW", Name: "Vendor DUP", CreatedBy: "buyer-1"},
			wantErr: domain.ErrVendorNameAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, env.vendors.CreateVendor(ctx, tt.vendor), tt.wantErr)
		})
	}
}

func TestVendorUseCase_CreateDropsSuppliedMetrics(t *testing.T) {
	env := setupEnv(t, nil)
	vendor := &model.Vendor{
		Name:            "Metric Vendor",
		VendorCode:      "MV",
		CreatedBy:       "buyer-1",
		FulfillmentRate: decimal.NewNullDecimal(decimal.NewFromInt(99)),
	}
	require.NoError(t, env.vendors.CreateVendor(context.Background(), vendor))

	got, err := env.vendors.GetVendor(context.Background(), "MV")
	require.NoError(t, err)
	assert.False(t, got.FulfillmentRate.Valid)
}

func TestVendorUseCase_Update(t *testing.T) {
	env := setupEnv(t, nil)
	ctx := context.Background()
	env.createVendor(t, "UP")
	env.createVendor(t, "TAKEN")

	updated, err := env.vendors.UpdateVendor(ctx, "UP", VendorPatch{Address: strPtr("99 New Road"), VendorCode: strPtr("UP2")})
	require.NoError(t, err)
	assert.Equal(t, "99 New Road", updated.Address)
	assert.Equal(t, "UP2", updated.VendorCode)

	_, err = env.vendors.GetVendor(ctx, "UP")
	assert.ErrorIs(t, err, domain.ErrVendorNotFound, "The old code no longer resolves")

	_, err = env.vendors.UpdateVendor(ctx, "UP2", VendorPatch{CreatedBy: strPtr("intruder")})
	assert.ErrorIs(t, err, domain.ErrForbiddenField)

	_, err = env.vendors.UpdateVendor(ctx, "UP2", VendorPatch{VendorCode: strPtr("TAKEN")})
	assert.ErrorIs(t, err, domain.ErrVendorCodeAlreadyExists)

	_, err = env.vendors.UpdateVendor(ctx, "UP2", VendorPatch{Name: strPtr("Vendor TAKEN")})
	assert.ErrorIs(t, err, domain.ErrVendorNameAlreadyExists)

	_, err = env.vendors.UpdateVendor(ctx, "GONE", VendorPatch{Address: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
}

func TestVendorUseCase_DeleteCascades(t *testing.T) {
	env := setupEnv(t, nil)
	ctx := context.Background()
	vendor := env.createVendor(t, "GONE")
	order := env.createOrder(t, "GONE")
	_, err := env.orders.AcknowledgeOrder(ctx, order.PONumber)
	require.NoError(t, err)
	require.Equal(t, 1, env.historyCount(t, vendor.ID))

	require.NoError(t, env.vendors.DeleteVendor(ctx, "GONE"))

	_, err = env.vendors.GetVendor(ctx, "GONE")
	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
	_, err = env.orders.GetOrder(ctx, order.PONumber)
	assert.ErrorIs(t, err, domain.ErrPurchaseOrderNotFound)
	assert.Zero(t, env.historyCount(t, vendor.ID))

	assert.ErrorIs(t, env.vendors.DeleteVendor(ctx, "GONE"), domain.ErrVendorNotFound)
}

func TestVendorUseCase_List(t *testing.T) {
	env := setupEnv(t, nil)
	env.createVendor(t, "A1")
	env.createVendor(t, "B2")
	env.createVendor(t, "C3")

	vendors, total, err := env.vendors.ListVendors(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, vendors, 1)
	assert.Equal(t, "B2", vendors[0].VendorCode)
}
