package session

import "errors"

// Sentinel errors for session state operations.
var (
	// ErrNotFound indicates no resume state is stored for the shard.
	ErrNotFound = errors.New("session: no stored state")
)
