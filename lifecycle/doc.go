// Package lifecycle tracks the connection status of a Slipstream client
// and lets callers block until a usable state is reached.
//
// The gateway session is the single writer: it walks the Gate through the
// startup sequence (Initializing → … → Connected) and reports steady-state
// transitions (Disconnected, Reconnecting, Shutdown, …). Any number of
// readers observe the current status or wait on a startup-phase status.
//
// # Usage
//
//	gate := lifecycle.NewGate()
//
//	// Connection management path
//	gate.Transition(lifecycle.StatusConnectingToGateway)
//
//	// Application code
//	ctx, cancel := context.WithTimeout(ctx, time.Minute)
//	defer cancel()
//	if err := gate.AwaitReady(ctx); err != nil {
//	    // ErrShutdown: client is permanently unusable
//	    // context error: the caller's own timeout/cancellation
//	}
//
// # Thread Safety
//
// All methods are safe for concurrent use. The current status and the
// waiter wakeup are one synchronised unit: a waiter registering
// concurrently with a transition to its target still observes success.
package lifecycle
