package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/sokopay/sokotrack/internal/core/domain"
	"github.com/sokopay/sokotrack/internal/core/port"
	"go.uber.org/zap"
)

// Manager holds the open order views, one per tracked order, and adapts them
// to the TrackingService surface the presentation layer consumes. View
// lifecycle maps one to one onto screen lifecycle: open on navigation in,
// close on navigation away.
type Manager struct {
	gateway port.OrderGateway
	confirm port.ConfirmationService
	logger  *zap.Logger

	defaultInterval time.Duration
	tightInterval   time.Duration
	effect          CompletionEffect

	mu    sync.Mutex
	views map[domain.OrderID]*OrderView
}

func NewManager(gateway port.OrderGateway, confirm port.ConfirmationService,
	defaultInterval, tightInterval time.Duration, effect CompletionEffect, logger *zap.Logger) (*Manager, error) {
	return &Manager{
		gateway:         gateway,
		confirm:         confirm,
		defaultInterval: defaultInterval,
		tightInterval:   tightInterval,
		effect:          effect,
		logger:          logger,
		views:           make(map[domain.OrderID]*OrderView),
	}, nil
}

// CreateOrder validates a seller listing and registers it with the
// marketplace, which assigns the order id and payment link.
func (m *Manager) CreateOrder(ctx context.Context, listing *domain.ProductListing) (*domain.OrderReceipt, error) {
	if err := listing.Validate(); err != nil {
		return nil, err
	}

	receipt, err := m.gateway.CreateOrder(ctx, listing)
	if err != nil {
		m.logger.Error("create order", zap.Error(err))
		return nil, err
	}

	m.logger.Info("order created",
		zap.String("order", string(receipt.OrderID)),
		zap.String("payment_link", receipt.PaymentLink))
	return receipt, nil
}

// OpenView starts tracking an order. Opening an already-open view is a
// no-op; the existing loop keeps running.
func (m *Manager) OpenView(ctx context.Context, id domain.OrderID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.views[id]; ok {
		return nil
	}

	view := NewOrderView(id, m.gateway, m.confirm,
		m.defaultInterval, m.tightInterval, m.effect,
		m.logger.Named("View").With(zap.String("order", string(id))))
	m.views[id] = view
	view.Start(m.defaultInterval)
	return nil
}

func (m *Manager) CloseView(id domain.OrderID) error {
	m.mu.Lock()
	view, ok := m.views[id]
	delete(m.views, id)
	m.mu.Unlock()

	if !ok {
		return domain.ErrViewNotOpen
	}
	view.Stop()
	return nil
}

// CloseAll tears down every open view; used on shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	views := make([]*OrderView, 0, len(m.views))
	for _, v := range m.views {
		views = append(views, v)
	}
	m.views = make(map[domain.OrderID]*OrderView)
	m.mu.Unlock()

	for _, v := range views {
		v.Stop()
	}
}

func (m *Manager) view(id domain.OrderID) (*OrderView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	view, ok := m.views[id]
	if !ok {
		return nil, domain.ErrViewNotOpen
	}
	return view, nil
}

func (m *Manager) Snapshot(id domain.OrderID) (*domain.ViewSnapshot, error) {
	view, err := m.view(id)
	if err != nil {
		return nil, err
	}
	return view.Snapshot(), nil
}

func (m *Manager) RequestConfirmation(id domain.OrderID, action domain.Action) (string, error) {
	if !domain.DestructiveActions[action] {
		return "", domain.ErrValidation
	}
	if _, err := m.view(id); err != nil {
		return "", err
	}
	return m.confirm.RequestConfirmation(id, action)
}

func (m *Manager) Pay(ctx context.Context, id domain.OrderID, details *domain.PaymentDetails) error {
	view, err := m.view(id)
	if err != nil {
		return err
	}
	return view.Pay(ctx, details)
}

func (m *Manager) MarkShipped(ctx context.Context, id domain.OrderID, confirmToken string) error {
	view, err := m.view(id)
	if err != nil {
		return err
	}
	return view.MarkShipped(ctx, confirmToken)
}

func (m *Manager) ConfirmDelivery(ctx context.Context, id domain.OrderID, confirmToken string) error {
	view, err := m.view(id)
	if err != nil {
		return err
	}
	return view.ConfirmDelivery(ctx, confirmToken)
}

func (m *Manager) RaiseDispute(ctx context.Context, id domain.OrderID, claim *domain.DisputeClaim) error {
	view, err := m.view(id)
	if err != nil {
		return err
	}
	return view.RaiseDispute(ctx, claim)
}
