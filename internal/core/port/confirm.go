package port

import "github.com/sokopay/sokotrack/internal/core/domain"

// ConfirmationService is the user-acknowledgement gate in front of
// destructive actions. A token is minted when the user explicitly confirms
// and must accompany the dispatch; accidental taps carry no token and never
// reach the network.
//
//go:generate mockgen -source=confirm.go -destination=mock/confirm.go -package=mock
type ConfirmationService interface {
	RequestConfirmation(id domain.OrderID, action domain.Action) (string, error)
	VerifyConfirmation(token string, id domain.OrderID, action domain.Action) error
}
