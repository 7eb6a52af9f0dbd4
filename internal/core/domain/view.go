package domain

// ViewSnapshot is a read-only copy of one view's local state, handed across
// the presentation boundary. The view itself owns the mutable original.
type ViewSnapshot struct {
	// Order is the last-synchronized record, nil before the first
	// successful fetch.
	Order *OrderRecord
	// MutationInFlight is true while an action is being dispatched.
	MutationInFlight bool
	// AwaitingPayment is true between an accepted payment submission and
	// the first poll that observes paid or later.
	AwaitingPayment bool
	// LastError is the outcome of the most recent user-initiated action.
	LastError error
	// LoadError is set when the initial fetch failed; background polling
	// failures after a successful load are never surfaced here.
	LoadError error
}
