package lifecycle

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestGate_InitialStatus(t *testing.T) {
	g := NewGate()
	if g.Status() != StatusInitializing {
		t.Errorf("Status() = %s, want initializing", g.Status())
	}
}

func TestGate_Transition(t *testing.T) {
	g := NewGate()
	g.Transition(StatusLoggingIn)
	if g.Status() != StatusLoggingIn {
		t.Errorf("Status() = %s, want logging_in", g.Status())
	}
}

func TestGate_AwaitStatus_AlreadyReached(t *testing.T) {
	g := NewGate()
	g.Transition(StatusConnected)

	// Must return without suspension even with an already-expired deadline:
	// the status check wins before the wait would block.
	ctx := context.Background()
	done := make(chan error, 1)
	go func() { done <- g.AwaitStatus(ctx, StatusConnected) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("AwaitStatus() error = %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("AwaitStatus() did not return for an already-reached target")
	}
}

func TestGate_AwaitStatus_NonStartupTarget(t *testing.T) {
	g := NewGate()
	for _, target := range []Status{StatusDisconnected, StatusShuttingDown, StatusShutdown, StatusFailedLogin} {
		err := g.AwaitStatus(context.Background(), target)
		if !errors.Is(err, ErrNotStartupStatus) {
			t.Errorf("AwaitStatus(%s) error = %v, want ErrNotStartupStatus", target, err)
		}
	}
}

// TestGate_AwaitStatus_FullStartupSequence walks the gate through the whole
// startup order from another goroutine and verifies the waiter resolves
// only once Connected is reached.
func TestGate_AwaitStatus_FullStartupSequence(t *testing.T) {
	g := NewGate()

	resolved := make(chan error, 1)
	started := make(chan struct{})
	go func() {
		close(started)
		resolved <- g.AwaitReady(context.Background())
	}()
	<-started

	sequence := []Status{
		StatusInitialized,
		StatusLoggingIn,
		StatusConnectingToGateway,
		StatusIdentifyingSession,
		StatusAwaitingConfirmation,
		StatusLoadingState,
	}
	for _, s := range sequence {
		g.Transition(s)
		select {
		case err := <-resolved:
			t.Fatalf("AwaitReady() resolved at %s (err=%v), want only at connected", s, err)
		case <-time.After(10 * time.Millisecond):
		}
	}

	g.Transition(StatusConnected)
	select {
	case err := <-resolved:
		if err != nil {
			t.Errorf("AwaitReady() error = %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("AwaitReady() did not resolve after connected")
	}
}

func TestGate_AwaitStatus_ResolvesOncePerWaiter(t *testing.T) {
	g := NewGate()
	const waiters = 8

	var wg sync.WaitGroup
	errs := make(chan error, waiters)
	for w := 0; w < waiters; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- g.AwaitStatus(context.Background(), StatusLoggingIn)
		}()
	}

	g.Transition(StatusLoggingIn)
	wg.Wait()
	close(errs)

	count := 0
	for err := range errs {
		if err != nil {
			t.Errorf("AwaitStatus() error = %v, want nil", err)
		}
		count++
	}
	if count != waiters {
		t.Errorf("resolved %d waiters, want %d", count, waiters)
	}
}

func TestGate_Shutdown(t *testing.T) {
	t.Run("wakes pending waiters with ErrShutdown", func(t *testing.T) {
		g := NewGate()

		resolved := make(chan error, 1)
		go func() { resolved <- g.AwaitReady(context.Background()) }()

		// Give the waiter time to block, then shut down.
		time.Sleep(10 * time.Millisecond)
		g.Transition(StatusShutdown)

		select {
		case err := <-resolved:
			if !errors.Is(err, ErrShutdown) {
				t.Errorf("AwaitReady() error = %v, want ErrShutdown", err)
			}
		case <-time.After(time.Second):
			t.Fatal("AwaitReady() did not resolve on shutdown")
		}
	})

	t.Run("new waits fail immediately", func(t *testing.T) {
		g := NewGate()
		g.Transition(StatusConnected)
		g.Transition(StatusShutdown)

		err := g.AwaitReady(context.Background())
		if !errors.Is(err, ErrShutdown) {
			t.Errorf("AwaitReady() error = %v, want ErrShutdown", err)
		}
	})

	t.Run("later transitions are no-ops", func(t *testing.T) {
		g := NewGate()
		g.Transition(StatusShutdown)
		g.Transition(StatusConnected)

		if g.Status() != StatusShutdown {
			t.Errorf("Status() = %s after post-shutdown transition, want shutdown", g.Status())
		}
		if err := g.AwaitReady(context.Background()); !errors.Is(err, ErrShutdown) {
			t.Errorf("AwaitReady() error = %v, want ErrShutdown", err)
		}
	})
}

func TestGate_AwaitStatus_Cancellation(t *testing.T) {
	g := NewGate()

	ctx, cancel := context.WithCancel(context.Background())
	resolved := make(chan error, 1)
	go func() { resolved <- g.AwaitReady(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-resolved:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("AwaitReady() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("AwaitReady() did not resolve on cancellation")
	}

	// A cancelled waiter must not affect others: a fresh wait still works.
	done := make(chan error, 1)
	go func() { done <- g.AwaitReady(context.Background()) }()
	g.Transition(StatusConnected)
	if err := <-done; err != nil {
		t.Errorf("AwaitReady() after unrelated cancellation error = %v", err)
	}
}

func TestGate_AwaitStatus_Timeout(t *testing.T) {
	g := NewGate()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := g.AwaitReady(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("AwaitReady() error = %v, want context.DeadlineExceeded", err)
	}
}

// TestGate_ConcurrentWaitersAndTransitions hammers the gate from both
// sides; run with -race.
func TestGate_ConcurrentWaitersAndTransitions(t *testing.T) {
	g := NewGate()

	var wg sync.WaitGroup
	for n := 0; n < 16; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := g.AwaitReady(context.Background())
			if err != nil && !errors.Is(err, ErrShutdown) {
				t.Errorf("AwaitReady() error = %v", err)
			}
		}()
	}

	sequence := []Status{
		StatusInitialized, StatusLoggingIn, StatusConnectingToGateway,
		StatusIdentifyingSession, StatusAwaitingConfirmation,
		StatusLoadingState, StatusConnected,
	}
	for _, s := range sequence {
		g.Transition(s)
	}
	wg.Wait()
}
