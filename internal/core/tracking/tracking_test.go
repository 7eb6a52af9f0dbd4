package tracking_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/sokopay/sokotrack/internal/core/domain"
	"github.com/sokopay/sokotrack/internal/core/port/mock"
	"github.com/sokopay/sokotrack/internal/core/tracking"
	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const testOrderID = domain.OrderID("SP1234ABCD5678")

// quietInterval keeps background ticks out of the way; tests drive fetches
// through Resync or the immediate fetch on Start.
const quietInterval = time.Hour

func record(status domain.OrderStatus) *domain.OrderRecord {
	now := time.Now()
	r := &domain.OrderRecord{
		ID:          testOrderID,
		ProductName: "Nike Air Max",
		Price:       decimal.MustNew(4500, 0),
		SellerName:  "Brian Kipchoge",
		SellerPhone: "254712345678",
		Status:      status,
		CreatedAt:   now,
	}
	switch status {
	case domain.OrderStatusCompleted, domain.OrderStatusDelivered:
		r.DeliveredAt = &now
		fallthrough
	case domain.OrderStatusShipped:
		r.ShippedAt = &now
		fallthrough
	case domain.OrderStatusPaid:
		r.PaidAt = &now
	}
	return r
}

type testView struct {
	view    *tracking.OrderView
	gateway *mock.MockOrderGateway
	confirm *mock.MockConfirmationService
	effects *atomic.Int32
}

func newTestView(ctrl *gomock.Controller) *testView {
	gateway := mock.NewMockOrderGateway(ctrl)
	confirm := mock.NewMockConfirmationService(ctrl)
	effects := atomic.NewInt32(0)

	view := tracking.NewOrderView(testOrderID, gateway, confirm,
		quietInterval, quietInterval,
		func(*domain.OrderRecord) { effects.Inc() },
		zap.NewNop())

	return &testView{view: view, gateway: gateway, confirm: confirm, effects: effects}
}

// seed installs a first snapshot without starting the poll loop.
func (tv *testView) seed(t *testing.T, status domain.OrderStatus) {
	tv.gateway.EXPECT().FetchOrder(gomock.Any(), testOrderID).Return(record(status), nil)
	tv.view.Resync(context.Background())

	snap := tv.view.Snapshot()
	assert.NotNil(t, snap.Order)
	assert.Equal(t, status, snap.Order.Status)
}

func TestSynchronizer_EdgeDetection(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []domain.OrderStatus
		expEffects int32
	}{
		{
			name:       "repeated level fires nothing",
			statuses:   []domain.OrderStatus{domain.OrderStatusPaid, domain.OrderStatusPaid, domain.OrderStatusPaid},
			expEffects: 0,
		},
		{
			name:       "single transition into completed fires once",
			statuses:   []domain.OrderStatus{domain.OrderStatusPaid, domain.OrderStatusShipped, domain.OrderStatusCompleted},
			expEffects: 1,
		},
		{
			name:       "completed level after the edge stays quiet",
			statuses:   []domain.OrderStatus{domain.OrderStatusShipped, domain.OrderStatusCompleted, domain.OrderStatusCompleted},
			expEffects: 1,
		},
		{
			name:       "view opened on an already-completed order",
			statuses:   []domain.OrderStatus{domain.OrderStatusCompleted},
			expEffects: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			tv := newTestView(mockCtrl)
			for _, status := range test.statuses {
				tv.gateway.EXPECT().FetchOrder(gomock.Any(), testOrderID).Return(record(status), nil)
				tv.view.Resync(context.Background())
			}

			assert.Equal(t, test.expEffects, tv.effects.Load())
		})
	}
}

func TestSynchronizer_PollFailureKeepsState(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tv := newTestView(mockCtrl)
	tv.seed(t, domain.OrderStatusPaid)

	tv.gateway.EXPECT().FetchOrder(gomock.Any(), testOrderID).Return(nil, domain.ErrTransport)
	tv.view.Resync(context.Background())

	snap := tv.view.Snapshot()
	assert.NotNil(t, snap.Order)
	assert.Equal(t, domain.OrderStatusPaid, snap.Order.Status)
	assert.NoError(t, snap.LoadError)
}

func TestSynchronizer_InitialLoadFailureSurfaced(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tv := newTestView(mockCtrl)

	tv.gateway.EXPECT().FetchOrder(gomock.Any(), testOrderID).Return(nil, domain.ErrOrderNotFound)
	tv.view.Resync(context.Background())

	snap := tv.view.Snapshot()
	assert.Nil(t, snap.Order)
	assert.ErrorIs(t, snap.LoadError, domain.ErrOrderNotFound)
}

func TestSynchronizer_MissingOrderStopsPolling(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tv := newTestView(mockCtrl)
	defer tv.view.Stop()

	// One fetch, then the loop gives up: there is no record to poll for.
	tv.gateway.EXPECT().FetchOrder(gomock.Any(), testOrderID).
		Return(nil, domain.ErrOrderNotFound).Times(1)

	tv.view.Start(20 * time.Millisecond)
	time.Sleep(200 * time.Millisecond)

	snap := tv.view.Snapshot()
	assert.Nil(t, snap.Order)
	assert.ErrorIs(t, snap.LoadError, domain.ErrOrderNotFound)
}

func TestSynchronizer_StopDiscardsInFlightFetch(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tv := newTestView(mockCtrl)

	started := make(chan struct{})
	release := make(chan struct{})
	tv.gateway.EXPECT().FetchOrder(gomock.Any(), testOrderID).
		DoAndReturn(func(context.Context, domain.OrderID) (*domain.OrderRecord, error) {
			close(started)
			<-release
			return record(domain.OrderStatusPaid), nil
		})

	tv.view.Start(quietInterval)
	<-started

	tv.view.Stop()
	close(release)

	// The fetch resolves after Stop and must not be applied.
	assert.Never(t, func() bool {
		return tv.view.Snapshot().Order != nil
	}, 200*time.Millisecond, 20*time.Millisecond)
}

func TestSynchronizer_RestartDiscardsPreviousLoopResult(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tv := newTestView(mockCtrl)
	defer tv.view.Stop()

	started := make(chan struct{})
	release := make(chan struct{})
	tv.gateway.EXPECT().FetchOrder(gomock.Any(), testOrderID).
		DoAndReturn(func(context.Context, domain.OrderID) (*domain.OrderRecord, error) {
			close(started)
			<-release
			return record(domain.OrderStatusPaid), nil
		})

	tv.view.Start(quietInterval)
	<-started

	// Replaces the loop; the pending fetch now belongs to a dead epoch.
	tv.view.Start(quietInterval)
	close(release)

	assert.Never(t, func() bool {
		snap := tv.view.Snapshot()
		return snap.Order != nil && snap.Order.Status == domain.OrderStatusPaid
	}, 200*time.Millisecond, 20*time.Millisecond)

	// The view is still live: a fresh fetch applies normally.
	tv.gateway.EXPECT().FetchOrder(gomock.Any(), testOrderID).Return(record(domain.OrderStatusShipped), nil)
	tv.view.Resync(context.Background())
	assert.Equal(t, domain.OrderStatusShipped, tv.view.Snapshot().Order.Status)
}

func TestDispatcher_StateConflictIssuesNoNetworkCall(t *testing.T) {
	tests := []struct {
		name   string
		status domain.OrderStatus
		act    func(tv *testView) error
	}{
		{
			name:   "pay when already shipped",
			status: domain.OrderStatusShipped,
			act: func(tv *testView) error {
				return tv.view.Pay(context.Background(),
					&domain.PaymentDetails{BuyerPhone: "254700000000", BuyerName: "Jane"})
			},
		},
		{
			name:   "ship before payment",
			status: domain.OrderStatusPending,
			act: func(tv *testView) error {
				tv.confirm.EXPECT().VerifyConfirmation("tok", testOrderID, domain.ActionMarkShipped).Return(nil)
				return tv.view.MarkShipped(context.Background(), "tok")
			},
		},
		{
			name:   "dispute before payment",
			status: domain.OrderStatusPending,
			act: func(tv *testView) error {
				return tv.view.RaiseDispute(context.Background(),
					&domain.DisputeClaim{Reason: "item not as described"})
			},
		},
		{
			name:   "confirm delivery on completed order",
			status: domain.OrderStatusCompleted,
			act: func(tv *testView) error {
				tv.confirm.EXPECT().VerifyConfirmation("tok", testOrderID, domain.ActionConfirmDelivery).Return(nil)
				return tv.view.ConfirmDelivery(context.Background(), "tok")
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			tv := newTestView(mockCtrl)
			tv.seed(t, test.status)

			// No mutate expectation is registered: any remote call fails
			// the test through the mock controller.
			err := test.act(tv)
			assert.ErrorIs(t, err, domain.ErrStateConflict)
			assert.ErrorIs(t, tv.view.Snapshot().LastError, domain.ErrStateConflict)
		})
	}
}

func TestDispatcher_SecondPayIsBusy(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tv := newTestView(mockCtrl)
	defer tv.view.Stop()
	tv.seed(t, domain.OrderStatusPending)

	details := &domain.PaymentDetails{BuyerPhone: "254700000000", BuyerName: "Jane"}

	inCall := make(chan struct{})
	release := make(chan struct{})
	tv.gateway.EXPECT().SubmitPayment(gomock.Any(), testOrderID, gomock.Any()).
		DoAndReturn(func(context.Context, domain.OrderID, *domain.PaymentDetails) error {
			close(inCall)
			<-release
			return nil
		}).Times(1)
	tv.gateway.EXPECT().FetchOrder(gomock.Any(), testOrderID).
		Return(record(domain.OrderStatusPaid), nil).AnyTimes()

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- tv.view.Pay(context.Background(), details)
	}()

	<-inCall
	assert.ErrorIs(t, tv.view.Pay(context.Background(), details), domain.ErrBusy)
	assert.True(t, tv.view.Snapshot().MutationInFlight)

	close(release)
	assert.NoError(t, <-firstDone)
	assert.False(t, tv.view.Snapshot().MutationInFlight)
}

func TestDispatcher_ConfirmationGate(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tv := newTestView(mockCtrl)
	tv.seed(t, domain.OrderStatusPaid)

	// No token: the acknowledgement step never happened.
	err := tv.view.MarkShipped(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)

	// Bad token.
	tv.confirm.EXPECT().VerifyConfirmation("forged", testOrderID, domain.ActionMarkShipped).
		Return(domain.ErrConfirmationInvalid)
	err = tv.view.MarkShipped(context.Background(), "forged")
	assert.ErrorIs(t, err, domain.ErrConfirmationInvalid)

	// Confirmed action goes through and re-syncs.
	tv.confirm.EXPECT().VerifyConfirmation("tok", testOrderID, domain.ActionMarkShipped).Return(nil)
	tv.gateway.EXPECT().MarkShipped(gomock.Any(), testOrderID).Return(nil)
	tv.gateway.EXPECT().FetchOrder(gomock.Any(), testOrderID).Return(record(domain.OrderStatusShipped), nil)

	assert.NoError(t, tv.view.MarkShipped(context.Background(), "tok"))

	snap := tv.view.Snapshot()
	assert.Equal(t, domain.OrderStatusShipped, snap.Order.Status)
	assert.NoError(t, snap.LastError)
}

func TestDispatcher_RemoteRejectionRecordedAndResynced(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tv := newTestView(mockCtrl)
	tv.seed(t, domain.OrderStatusPending)

	// Local and remote views diverged: the server already holds the order
	// paid and rejects the second payment.
	tv.gateway.EXPECT().SubmitPayment(gomock.Any(), testOrderID, gomock.Any()).
		Return(domain.ErrStateConflict)
	tv.gateway.EXPECT().FetchOrder(gomock.Any(), testOrderID).
		Return(record(domain.OrderStatusPaid), nil)

	err := tv.view.Pay(context.Background(),
		&domain.PaymentDetails{BuyerPhone: "254700000000", BuyerName: "Jane"})
	assert.ErrorIs(t, err, domain.ErrStateConflict)

	snap := tv.view.Snapshot()
	assert.ErrorIs(t, snap.LastError, domain.ErrStateConflict)
	// The forced re-sync converged the view on the server's answer.
	assert.Equal(t, domain.OrderStatusPaid, snap.Order.Status)
	// A rejected submission never enters awaiting mode.
	assert.False(t, snap.AwaitingPayment)
}

func TestPayment_ValidationShortCircuits(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tv := newTestView(mockCtrl)
	tv.seed(t, domain.OrderStatusPending)

	err := tv.view.Pay(context.Background(),
		&domain.PaymentDetails{BuyerPhone: "0712345678", BuyerName: "Jane"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = tv.view.Pay(context.Background(),
		&domain.PaymentDetails{BuyerPhone: "254712345678", BuyerName: "J"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPayment_AwaitingModeLifecycle(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tv := newTestView(mockCtrl)
	defer tv.view.Stop()

	var mu sync.Mutex
	current := record(domain.OrderStatusPending)
	setState := func(status domain.OrderStatus) {
		mu.Lock()
		current = record(status)
		mu.Unlock()
	}

	tv.gateway.EXPECT().FetchOrder(gomock.Any(), testOrderID).
		DoAndReturn(func(context.Context, domain.OrderID) (*domain.OrderRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			r := *current
			return &r, nil
		}).AnyTimes()
	tv.gateway.EXPECT().SubmitPayment(gomock.Any(), testOrderID, gomock.Any()).Return(nil)

	tv.view.Resync(context.Background())

	details := &domain.PaymentDetails{BuyerPhone: "254700000000", BuyerName: "Jane"}
	assert.NoError(t, tv.view.Pay(context.Background(), details))
	// The flow fills in a client reference when the caller has none.
	assert.NotEmpty(t, details.ClientRef)

	// STK push accepted but not yet confirmed by the gateway.
	assert.Eventually(t, func() bool {
		return tv.view.Snapshot().AwaitingPayment
	}, time.Second, 10*time.Millisecond)

	setState(domain.OrderStatusPaid)
	tv.view.Resync(context.Background())

	snap := tv.view.Snapshot()
	assert.Equal(t, domain.OrderStatusPaid, snap.Order.Status)
	assert.False(t, snap.AwaitingPayment)
}

func TestTracking_EndToEnd(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tv := newTestView(mockCtrl)
	defer tv.view.Stop()

	var mu sync.Mutex
	created := time.Now()
	current := &domain.OrderRecord{
		ID:          testOrderID,
		ProductName: "Nike Air Max",
		Price:       decimal.MustNew(4500, 0),
		SellerName:  "Brian Kipchoge",
		SellerPhone: "254712345678",
		Status:      domain.OrderStatusPending,
		CreatedAt:   created,
	}
	advance := func(status domain.OrderStatus) {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now()
		next := *current
		next.Status = status
		switch status {
		case domain.OrderStatusPaid:
			next.PaidAt = &now
			next.BuyerName = "Jane"
			next.BuyerPhone = "254700000000"
		case domain.OrderStatusShipped:
			next.ShippedAt = &now
		case domain.OrderStatusCompleted:
			next.DeliveredAt = &now
		}
		current = &next
	}

	tv.gateway.EXPECT().FetchOrder(gomock.Any(), testOrderID).
		DoAndReturn(func(context.Context, domain.OrderID) (*domain.OrderRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			r := *current
			return &r, nil
		}).AnyTimes()
	tv.gateway.EXPECT().SubmitPayment(gomock.Any(), testOrderID, gomock.Any()).
		DoAndReturn(func(context.Context, domain.OrderID, *domain.PaymentDetails) error {
			advance(domain.OrderStatusPaid)
			return nil
		})
	tv.gateway.EXPECT().MarkShipped(gomock.Any(), testOrderID).
		DoAndReturn(func(context.Context, domain.OrderID) error {
			advance(domain.OrderStatusShipped)
			return nil
		})
	tv.gateway.EXPECT().ConfirmDelivery(gomock.Any(), testOrderID).
		DoAndReturn(func(context.Context, domain.OrderID) error {
			advance(domain.OrderStatusCompleted)
			return nil
		})
	tv.confirm.EXPECT().VerifyConfirmation("tok", testOrderID, gomock.Any()).Return(nil).Times(2)

	ctx := context.Background()

	tv.view.Resync(ctx)
	assert.Equal(t, domain.OrderStatusPending, tv.view.Snapshot().Order.Status)

	assert.NoError(t, tv.view.Pay(ctx,
		&domain.PaymentDetails{BuyerPhone: "254700000000", BuyerName: "Jane"}))
	assert.Eventually(t, func() bool {
		snap := tv.view.Snapshot()
		return snap.Order.Status == domain.OrderStatusPaid && !snap.AwaitingPayment
	}, time.Second, 10*time.Millisecond)

	// Quiesce the timer; the remaining steps drive re-syncs through the
	// dispatcher and must not race a periodic fetch.
	tv.view.Stop()

	assert.NoError(t, tv.view.MarkShipped(ctx, "tok"))
	assert.Equal(t, domain.OrderStatusShipped, tv.view.Snapshot().Order.Status)

	assert.NoError(t, tv.view.ConfirmDelivery(ctx, "tok"))

	snap := tv.view.Snapshot()
	assert.Equal(t, domain.OrderStatusCompleted, snap.Order.Status)
	assert.Equal(t, int32(1), tv.effects.Load())

	// All phase timestamps populated, in creation order.
	assert.NotNil(t, snap.Order.PaidAt)
	assert.NotNil(t, snap.Order.ShippedAt)
	assert.NotNil(t, snap.Order.DeliveredAt)
	assert.False(t, snap.Order.PaidAt.Before(snap.Order.CreatedAt))
	assert.False(t, snap.Order.ShippedAt.Before(*snap.Order.PaidAt))
	assert.False(t, snap.Order.DeliveredAt.Before(*snap.Order.ShippedAt))
	assert.NoError(t, snap.LastError)
}
