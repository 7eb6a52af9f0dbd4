package port

import (
	"context"

	"github.com/sokopay/sokotrack/internal/core/domain"
)

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type OrderGateway interface {
	FetchOrder(ctx context.Context, id domain.OrderID) (*domain.OrderRecord, error)
	CreateOrder(ctx context.Context, listing *domain.ProductListing) (*domain.OrderReceipt, error)
	SubmitPayment(ctx context.Context, id domain.OrderID, details *domain.PaymentDetails) error
	MarkShipped(ctx context.Context, id domain.OrderID) error
	ConfirmDelivery(ctx context.Context, id domain.OrderID) error
	RaiseDispute(ctx context.Context, id domain.OrderID, claim *domain.DisputeClaim) error
}
