package tracking

import (
	"context"

	"github.com/google/uuid"
	"github.com/sokopay/sokotrack/internal/core/domain"
	"go.uber.org/zap"
)

// Pay is the buyer-side happy path: validate, submit through the dispatcher,
// then tighten the poll cadence while the mobile-money confirmation is
// pending. A rejected submission surfaces immediately and never enters the
// awaiting mode; the user may resubmit.
func (v *OrderView) Pay(ctx context.Context, details *domain.PaymentDetails) error {
	if err := details.Validate(); err != nil {
		v.recordActionErr(err)
		return err
	}
	if details.ClientRef == "" {
		details.ClientRef = uuid.NewString()
	}

	err := v.dispatch(ctx, domain.ActionPay, func(ctx context.Context) error {
		return v.gateway.SubmitPayment(ctx, v.orderID, details)
	})
	if err != nil {
		return err
	}

	v.logger.Info("payment submitted, awaiting confirmation",
		zap.String("order", string(v.orderID)),
		zap.String("client_ref", details.ClientRef))

	v.mu.Lock()
	v.awaiting = true
	v.mu.Unlock()

	// Tighter cadence until a poll observes paid or later. Tracking itself
	// continues for the life of the view; shipped and completed remain
	// interesting after that.
	v.Start(v.tightInterval)
	return nil
}
