package gateway

import "errors"

// Sentinel errors for gateway operations.
var (
	// ErrMissingURL indicates no gateway endpoint was configured.
	ErrMissingURL = errors.New("gateway: url is required")

	// ErrReconnectExhausted indicates the reconnect attempt limit was
	// reached without establishing a session.
	ErrReconnectExhausted = errors.New("gateway: reconnect attempts exhausted")
)
