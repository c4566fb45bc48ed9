package rest

import "errors"

// Domain errors for the rest package.
var (
	// ErrRequestFailed is returned when the service answers with a 4xx or
	// 5xx status. The wrapped message carries the status code.
	ErrRequestFailed = errors.New("rest: request failed")

	// ErrMissingBaseURL is returned when the client is constructed
	// without a base URL.
	ErrMissingBaseURL = errors.New("rest: base URL is required")
)
