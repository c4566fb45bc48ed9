// Package gateway maintains the websocket connection to the chat
// service and drives the client's lifecycle through it.
//
// A Session owns the full connection lifecycle: dial, identify or
// resume, initial state load, heartbeating, dispatch application and
// reconnection with capped exponential backoff. Lifecycle status
// transitions are reported to the client's gate as they happen, so
// callers blocked in AwaitStatus observe the startup sequence in order.
//
// Wire format is JSON frames:
//
//	{"op": "...", "seq": N, "type": "...", "data": {...}}
//
// Thread Safety:
// A Session is driven by a single Run call; Run must not be invoked
// concurrently on the same Session.
package gateway
