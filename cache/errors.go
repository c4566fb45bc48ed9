package cache

import "errors"

// Domain errors for the cache package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, cache.ErrMalformedID) {
//	    // handle unparseable identifier
//	}
var (
	// ErrMissingID is returned when a textual identifier is empty.
	ErrMissingID = errors.New("cache: identifier is required")

	// ErrMalformedID is returned when a textual identifier is not a
	// base-10 unsigned 64-bit integer.
	ErrMalformedID = errors.New("cache: malformed identifier")

	// ErrMissingName is returned when a name filter is empty.
	ErrMissingName = errors.New("cache: name is required")
)
