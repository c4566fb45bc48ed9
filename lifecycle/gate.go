package lifecycle

import (
	"context"
	"fmt"
	"sync"
)

// Gate is the connection-status state machine. It holds the single current
// Status, a terminal closed flag, and wakes blocked waiters on every
// transition.
//
// One writer (the connection-management path) calls Transition; any number
// of readers call Status, AwaitStatus and AwaitReady concurrently.
//
// Wakeups use a broadcast channel that is closed and replaced under the
// same lock that guards the status, so a waiter can never miss the
// transition it is waiting for.
type Gate struct {
	mu      sync.Mutex
	status  Status
	closed  bool
	changed chan struct{}
}

// NewGate creates a gate in StatusInitializing.
func NewGate() *Gate {
	return &Gate{
		status:  StatusInitializing,
		changed: make(chan struct{}),
	}
}

// Status returns the current status without blocking.
func (g *Gate) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Transition sets the current status and wakes every blocked waiter so it
// can re-check its target. Once StatusShutdown has been set the gate is
// closed and all further transitions are no-ops.
func (g *Gate) Transition(status Status) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}
	g.status = status
	if status == StatusShutdown {
		g.closed = true
	}

	close(g.changed)
	g.changed = make(chan struct{})
}

// AwaitStatus blocks until the gate reaches the target status.
//
// It returns immediately when the gate is already at the target. It fails
// with ErrShutdown as soon as the terminal StatusShutdown is reached, even
// when that was not the awaited target, and with the context's error when
// the caller cancels the wait. Cancellation deregisters the waiter cleanly
// and does not affect other waiters; callers compose timeouts through the
// context.
//
// The target must be a startup-phase status (see Status.IsStartup);
// anything else fails immediately with ErrNotStartupStatus.
func (g *Gate) AwaitStatus(ctx context.Context, target Status) error {
	if !target.IsStartup() {
		return fmt.Errorf("%w: %s", ErrNotStartupStatus, target)
	}

	for {
		g.mu.Lock()
		switch {
		case g.closed:
			g.mu.Unlock()
			return ErrShutdown
		case g.status == target:
			g.mu.Unlock()
			return nil
		}
		changed := g.changed
		g.mu.Unlock()

		select {
		case <-changed:
		case <-ctx.Done():
			return fmt.Errorf("lifecycle: wait for %s cancelled: %w", target, ctx.Err())
		}
	}
}

// AwaitReady blocks until the gate reaches StatusConnected. Shorthand for
// AwaitStatus(ctx, StatusConnected).
func (g *Gate) AwaitReady(ctx context.Context) error {
	return g.AwaitStatus(ctx, StatusConnected)
}
