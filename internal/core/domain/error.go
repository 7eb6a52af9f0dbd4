package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrOrderNotFound = errors.New("order not found")
	ErrViewNotOpen   = errors.New("no open view for order")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")
	ErrTransport  = errors.New("remote call failed")

	// * Business errors.
	ErrValidation    = errors.New("invalid input")
	ErrStateConflict = errors.New("action not allowed in current order status")
	ErrBusy          = errors.New("another action is already in flight")

	// * Confirmation gate errors.
	ErrConfirmationRequired = errors.New("action requires prior confirmation")
	ErrConfirmationInvalid  = errors.New("confirmation token is invalid or expired")
)
