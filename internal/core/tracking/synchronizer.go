package tracking

import (
	"context"
	"errors"
	"time"

	"github.com/sokopay/sokotrack/internal/core/domain"
	"go.uber.org/zap"
)

// Start begins polling: one fetch immediately, then one per interval, until
// Stop. Calling Start on a running view replaces the previous loop; there is
// never more than one timer per view.
func (v *OrderView) Start(interval time.Duration) {
	v.mu.Lock()
	v.epoch++
	epoch := v.epoch
	if v.cancel != nil {
		v.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.mu.Unlock()

	v.logger.Debug("start polling",
		zap.String("order", string(v.orderID)),
		zap.Duration("interval", interval))

	go v.loop(ctx, epoch, interval)
}

// Stop cancels the poll loop. A fetch already in flight resolves against a
// stale epoch and is discarded. The view may be started again afterwards.
func (v *OrderView) Stop() {
	v.mu.Lock()
	v.epoch++
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.mu.Unlock()

	v.logger.Debug("stop polling", zap.String("order", string(v.orderID)))
}

func (v *OrderView) loop(ctx context.Context, epoch uint64, interval time.Duration) {
	v.pollOnce(ctx, epoch)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.pollOnce(ctx, epoch)
		}
	}
}

// pollOnce issues one fetch on its own goroutine so a hung fetch delays only
// that tick's freshness, never the ticker itself. A tick that fires while
// the previous fetch is still pending is skipped, not queued.
func (v *OrderView) pollOnce(ctx context.Context, epoch uint64) {
	if !v.polling.CompareAndSwap(false, true) {
		v.logger.Debug("fetch still in flight, tick skipped", zap.String("order", string(v.orderID)))
		return
	}

	go func() {
		defer v.polling.Store(false)

		order, err := v.gateway.FetchOrder(ctx, v.orderID)
		if err != nil {
			v.recordPollFailure(epoch, err)
			return
		}
		v.applySnapshot(epoch, order)
	}()
}

// Resync fetches out of band, bypassing the timer, so the view reflects the
// server's state right after an action instead of waiting for the next tick.
// It shares the epoch discipline with the poll loop but not its in-flight
// slot: an action re-fetch may race a periodic poll, and whichever completes
// last wins.
func (v *OrderView) Resync(ctx context.Context) {
	v.mu.Lock()
	epoch := v.epoch
	v.mu.Unlock()

	order, err := v.gateway.FetchOrder(ctx, v.orderID)
	if err != nil {
		v.recordPollFailure(epoch, err)
		return
	}
	v.applySnapshot(epoch, order)
}

// applySnapshot installs a fetched record, diffing its status against the
// immediately prior observation to drive one-shot effects. Results from a
// stale epoch are dropped without touching view state.
func (v *OrderView) applySnapshot(epoch uint64, order *domain.OrderRecord) {
	v.mu.Lock()

	if epoch != v.epoch {
		v.mu.Unlock()
		v.logger.Debug("stale fetch discarded", zap.String("order", string(order.ID)))
		return
	}

	var previous *domain.OrderRecord
	previous, v.order = v.order, order
	v.loadErr = nil

	fireCompletion := previous != nil && domain.CompletionEdge(previous.Status, order.Status)

	retune := false
	if v.awaiting {
		switch order.Status {
		case domain.OrderStatusPaid, domain.OrderStatusShipped, domain.OrderStatusCompleted:
			v.awaiting = false
			retune = true
		}
	}
	v.mu.Unlock()

	if previous == nil || previous.Status != order.Status {
		v.logger.Info("order status observed",
			zap.String("order", string(order.ID)),
			zap.String("status", string(order.Status)))
	}

	if fireCompletion && v.onCompletion != nil {
		v.onCompletion(order)
	}
	if retune {
		// Payment confirmed; fall back to the relaxed tracking cadence.
		v.Start(v.defaultInterval)
	}
}

// recordPollFailure keeps the previous view state on any fetch error.
// Only the initial load's failure is user-visible; once a snapshot has been
// applied, polling is best effort and failures stay silent.
func (v *OrderView) recordPollFailure(epoch uint64, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if epoch != v.epoch {
		return
	}
	if v.order == nil {
		v.loadErr = err
	}

	v.logger.Debug("poll fetch failed",
		zap.String("order", string(v.orderID)),
		zap.Error(err))

	if v.order == nil && errors.Is(err, domain.ErrOrderNotFound) {
		// No remote record for this id; nothing to poll for.
		v.epoch++
		if v.cancel != nil {
			v.cancel()
			v.cancel = nil
		}
	}
}
