package domain

// Action is a client-initiated order mutation.
type Action string

const (
	ActionPay             Action = "pay"
	ActionMarkShipped     Action = "ship"
	ActionConfirmDelivery Action = "confirm_delivery"
	ActionRaiseDispute    Action = "dispute"
)

// clientTransitions lists every legal client-initiated edge and the status
// the marketplace is expected to report after accepting it. Everything else
// is rejected locally before any network call; the server still enforces the
// same rules on its side.
var clientTransitions = map[Action]map[OrderStatus]OrderStatus{
	ActionPay: {
		OrderStatusPending: OrderStatusPaid,
	},
	ActionMarkShipped: {
		OrderStatusPaid: OrderStatusShipped,
	},
	ActionConfirmDelivery: {
		OrderStatusShipped: OrderStatusCompleted,
	},
	ActionRaiseDispute: {
		OrderStatusPaid:    OrderStatusDisputed,
		OrderStatusShipped: OrderStatusDisputed,
	},
}

// DestructiveActions mutate escrow state irreversibly from the user's point
// of view and require an explicit confirmation step before dispatch.
var DestructiveActions = map[Action]bool{
	ActionMarkShipped:     true,
	ActionConfirmDelivery: true,
}

// EnsureActionAllowed reports whether action is legal from current.
// Returns ErrStateConflict otherwise.
func EnsureActionAllowed(current OrderStatus, action Action) error {
	if _, ok := clientTransitions[action][current]; !ok {
		return ErrStateConflict
	}
	return nil
}

// ExpectedStatus returns the status the remote system should report after
// accepting action from current.
func ExpectedStatus(current OrderStatus, action Action) (OrderStatus, error) {
	next, ok := clientTransitions[action][current]
	if !ok {
		return "", ErrStateConflict
	}
	return next, nil
}

// IsTerminal reports whether no further client-initiated transition is
// modeled from status.
func IsTerminal(status OrderStatus) bool {
	return status == OrderStatusCompleted || status == OrderStatusRefunded
}

func IsKnownStatus(status OrderStatus) bool {
	switch status {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered,
		OrderStatusCompleted, OrderStatusDisputed, OrderStatusRefunded, OrderStatusFlagged:
		return true
	}
	return false
}

// CompletionEdge reports whether two consecutive observations form a
// transition into completed. Repeated reads of completed are a level, not an
// edge, and fire nothing.
func CompletionEdge(previous, next OrderStatus) bool {
	return previous != next && next == OrderStatusCompleted
}
