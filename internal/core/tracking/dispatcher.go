package tracking

import (
	"context"

	"github.com/sokopay/sokotrack/internal/core/domain"
	"go.uber.org/zap"
)

// dispatch runs one user-initiated mutation through the gates: local
// legality against the last-synchronized status (zero network calls on
// conflict), the single-mutation busy flag (released on every exit path),
// the remote call, then a forced re-sync so the view converges on whatever
// the server decided.
func (v *OrderView) dispatch(ctx context.Context, action domain.Action, remote func(context.Context) error) error {
	v.mu.Lock()
	if v.order == nil {
		loadErr := v.loadErr
		v.mu.Unlock()
		if loadErr != nil {
			return loadErr
		}
		return domain.ErrStateConflict
	}
	status := v.order.Status
	v.mu.Unlock()

	if err := domain.EnsureActionAllowed(status, action); err != nil {
		v.recordActionErr(err)
		return err
	}

	if !v.busy.CompareAndSwap(false, true) {
		// Another mutation is in flight; do not clobber its pending
		// outcome with a Busy marker.
		return domain.ErrBusy
	}
	defer v.busy.Store(false)

	v.logger.Info("dispatching action",
		zap.String("order", string(v.orderID)),
		zap.String("action", string(action)),
		zap.String("status", string(status)))

	err := remote(ctx)
	v.Resync(ctx)

	if err != nil {
		v.logger.Warn("action rejected",
			zap.String("order", string(v.orderID)),
			zap.String("action", string(action)),
			zap.Error(err))
		v.recordActionErr(err)
		return err
	}

	v.clearActionErr()
	return nil
}

// verifyConfirmation enforces the user-acknowledgement gate on destructive
// actions. A missing token means the confirmation step never happened.
func (v *OrderView) verifyConfirmation(token string, action domain.Action) error {
	if token == "" {
		return domain.ErrConfirmationRequired
	}
	return v.confirm.VerifyConfirmation(token, v.orderID, action)
}

// MarkShipped records the seller's shipment. Requires a confirmation token.
func (v *OrderView) MarkShipped(ctx context.Context, confirmToken string) error {
	if err := v.verifyConfirmation(confirmToken, domain.ActionMarkShipped); err != nil {
		v.recordActionErr(err)
		return err
	}
	return v.dispatch(ctx, domain.ActionMarkShipped, func(ctx context.Context) error {
		return v.gateway.MarkShipped(ctx, v.orderID)
	})
}

// ConfirmDelivery releases escrowed funds to the seller. Requires a
// confirmation token.
func (v *OrderView) ConfirmDelivery(ctx context.Context, confirmToken string) error {
	if err := v.verifyConfirmation(confirmToken, domain.ActionConfirmDelivery); err != nil {
		v.recordActionErr(err)
		return err
	}
	return v.dispatch(ctx, domain.ActionConfirmDelivery, func(ctx context.Context) error {
		return v.gateway.ConfirmDelivery(ctx, v.orderID)
	})
}

// RaiseDispute freezes the escrow pending support review.
func (v *OrderView) RaiseDispute(ctx context.Context, claim *domain.DisputeClaim) error {
	if err := claim.Validate(); err != nil {
		v.recordActionErr(err)
		return err
	}
	return v.dispatch(ctx, domain.ActionRaiseDispute, func(ctx context.Context) error {
		return v.gateway.RaiseDispute(ctx, v.orderID, claim)
	})
}
