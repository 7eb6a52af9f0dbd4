package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/sokopay/sokotrack/internal/core/domain"
	"github.com/sokopay/sokotrack/internal/core/port"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// CompletionEffect fires exactly once per observed transition into
// completed. The record passed is the snapshot that produced the edge.
type CompletionEffect func(order *domain.OrderRecord)

// OrderView owns the local state of one open order-tracking screen: the last
// synchronized snapshot, the poll loop that refreshes it, and the action
// dispatch gates. One instance per viewed order, never shared across views.
type OrderView struct {
	orderID domain.OrderID
	gateway port.OrderGateway
	confirm port.ConfirmationService
	logger  *zap.Logger

	defaultInterval time.Duration
	tightInterval   time.Duration
	onCompletion    CompletionEffect

	mu       sync.Mutex
	order    *domain.OrderRecord
	lastErr  error
	loadErr  error
	awaiting bool
	// epoch identifies the current poll loop generation. A fetch started
	// under an older epoch resolves against a stopped or replaced loop and
	// its result is discarded.
	epoch  uint64
	cancel context.CancelFunc

	busy    atomic.Bool
	polling atomic.Bool
}

func NewOrderView(orderID domain.OrderID, gateway port.OrderGateway, confirm port.ConfirmationService,
	defaultInterval, tightInterval time.Duration, effect CompletionEffect, logger *zap.Logger) *OrderView {
	return &OrderView{
		orderID:         orderID,
		gateway:         gateway,
		confirm:         confirm,
		defaultInterval: defaultInterval,
		tightInterval:   tightInterval,
		onCompletion:    effect,
		logger:          logger,
	}
}

func (v *OrderView) OrderID() domain.OrderID {
	return v.orderID
}

// Snapshot returns a read-only copy of the view state for the presentation
// layer.
func (v *OrderView) Snapshot() *domain.ViewSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	snap := &domain.ViewSnapshot{
		MutationInFlight: v.busy.Load(),
		AwaitingPayment:  v.awaiting,
		LastError:        v.lastErr,
		LoadError:        v.loadErr,
	}
	if v.order != nil {
		rec := *v.order
		snap.Order = &rec
	}
	return snap
}

func (v *OrderView) recordActionErr(err error) {
	v.mu.Lock()
	v.lastErr = err
	v.mu.Unlock()
}

func (v *OrderView) clearActionErr() {
	v.mu.Lock()
	v.lastErr = nil
	v.mu.Unlock()
}
