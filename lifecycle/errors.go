package lifecycle

import "errors"

// Domain errors for the lifecycle package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, lifecycle.ErrShutdown) {
//	    // the client is permanently unusable; do not retry
//	}
var (
	// ErrShutdown is returned by waits issued after, or resolved by, the
	// terminal Shutdown transition. It is definitive: the client cannot
	// be reused.
	ErrShutdown = errors.New("lifecycle: client is shut down")

	// ErrNotStartupStatus is returned when a wait targets a status that is
	// not part of the startup sequence.
	ErrNotStartupStatus = errors.New("lifecycle: wait target must be a startup-phase status")
)
