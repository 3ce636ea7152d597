package clickatell

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMessage is returned when the message body is empty.
	ErrEmptyMessage = errors.New("message content is required")
	// ErrNoRecipients is returned when no recipient is provided.
	ErrNoRecipients = errors.New("at least one recipient is required")
	// ErrEmptyResponse is returned when a send produced no parsable
	// response lines at all.
	ErrEmptyResponse = errors.New("empty response from gateway")
	// ErrConnect is returned (wrapped) when the gateway could not be
	// reached or sent back an empty body.
	ErrConnect = errors.New("failed to connect to gateway")
	// ErrBadResponse is returned when the gateway sent back text that
	// matches neither the ID nor the ERR wire format.
	ErrBadResponse = errors.New("malformed gateway response")
)

// AuthError is returned by Connect when the gateway rejects the
// credentials. Code is the 3-digit gateway error code.
type AuthError struct {
	Code        string
	Description string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s: %s", e.Code, e.Description)
}

// GatewayError is a gateway-reported error, carrying the 3-digit code
// and its table description.
type GatewayError struct {
	Code        string
	Description string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error %s: %s", e.Code, e.Description)
}
