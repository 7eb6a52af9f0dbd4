package auth

import (
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/sokopay/sokotrack/internal/core/domain"
	"github.com/sokopay/sokotrack/internal/core/port"
)

// PasetoConfirmation issues the short-lived tokens that gate destructive
// actions. The user's explicit acknowledgement mints a token; the dispatcher
// will not touch escrow state without a token that matches the order and the
// action and has not expired.
type PasetoConfirmation struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
	ttl    time.Duration
}

func New(ttl time.Duration) (port.ConfirmationService, error) {
	parser := paseto.NewParser()
	key := paseto.NewV4SymmetricKey()

	s := PasetoConfirmation{
		parser: &parser,
		key:    &key,
		ttl:    ttl,
	}

	return &s, nil
}

func (p *PasetoConfirmation) RequestConfirmation(id domain.OrderID, action domain.Action) (string, error) {
	token := paseto.NewToken()
	token.SetIssuedAt(time.Now())
	token.SetExpiration(time.Now().Add(p.ttl))
	token.SetString("order", string(id))
	token.SetString("action", string(action))

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoConfirmation) VerifyConfirmation(tokenStr string, id domain.OrderID, action domain.Action) error {
	token, err := p.parser.ParseV4Local(*p.key, tokenStr, nil)
	if err != nil {
		return domain.ErrConfirmationInvalid
	}

	order, err := token.GetString("order")
	if err != nil || order != string(id) {
		return domain.ErrConfirmationInvalid
	}
	act, err := token.GetString("action")
	if err != nil || act != string(action) {
		return domain.ErrConfirmationInvalid
	}

	return nil
}
