package port

import (
	"context"

	"github.com/sokopay/sokotrack/internal/core/domain"
)

// TrackingService is the surface the presentation layer drives: view
// lifecycle, the read-only view model and the four action triggers.
//
//go:generate mockgen -source=tracking.go -destination=mock/tracking.go -package=mock
type TrackingService interface {
	CreateOrder(ctx context.Context, listing *domain.ProductListing) (*domain.OrderReceipt, error)

	OpenView(ctx context.Context, id domain.OrderID) error
	CloseView(id domain.OrderID) error
	Snapshot(id domain.OrderID) (*domain.ViewSnapshot, error)

	RequestConfirmation(id domain.OrderID, action domain.Action) (string, error)

	Pay(ctx context.Context, id domain.OrderID, details *domain.PaymentDetails) error
	MarkShipped(ctx context.Context, id domain.OrderID, confirmToken string) error
	ConfirmDelivery(ctx context.Context, id domain.OrderID, confirmToken string) error
	RaiseDispute(ctx context.Context, id domain.OrderID, claim *domain.DisputeClaim) error
}
