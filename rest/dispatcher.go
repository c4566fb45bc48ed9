package rest

import "context"

// Request describes a single REST call.
type Request struct {
	// Method is the HTTP method.
	Method string

	// Path is the request path relative to the dispatcher's base URL.
	Path string

	// Body is the request payload, nil for none.
	Body []byte

	// PreSend, when set, is invoked immediately before the request is
	// written to the wire - after rate limiting has admitted it and any
	// internal deferral is over. Latency measurements capture their start
	// timestamp here so queueing never inflates the result.
	PreSend func()
}

// Response is the result of a dispatched request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Body is the full response payload.
	Body []byte
}

// Dispatcher executes REST requests. Implementations must honour the
// PreSend contract and propagate failures unchanged.
type Dispatcher interface {
	Do(ctx context.Context, req Request) (*Response, error)
}
