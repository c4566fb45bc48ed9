// Package rest provides the request dispatcher the Slipstream core uses
// for its REST round trips.
//
// The core itself only depends on the Dispatcher interface; the concrete
// Client adds token authentication, per-request IDs, and client-side rate
// limiting over net/http. Rate limiting happens before the PreSend hook
// fires, so callers measuring latency (the ping probe) never include queue
// time in their measurement.
//
// Retries and error translation are deliberately absent: dispatch failures
// propagate to the caller unchanged.
package rest
