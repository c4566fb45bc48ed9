package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nerrad567/slipstream-core/cache"
	"github.com/nerrad567/slipstream-core/client"
	"github.com/nerrad567/slipstream-core/lifecycle"
	"github.com/nerrad567/slipstream-core/session"
)

// Default connection parameters.
const (
	defaultHandshakeTimeout = 10 * time.Second
	defaultInitialDelay     = 1 * time.Second
	defaultMaxDelay         = 60 * time.Second
	writeTimeout            = 10 * time.Second
)

// errAuthFailed marks a close during identify that cannot be retried.
var errAuthFailed = errors.New("gateway: authentication rejected")

// StateStore persists resume state between connections. A nil store
// disables resuming; every connection identifies fresh.
type StateStore interface {
	Save(ctx context.Context, state session.State) error
	Load(ctx context.Context, shardIndex int) (session.State, error)
	Clear(ctx context.Context, shardIndex int) error
}

// Backoff controls the delay between reconnect attempts.
type Backoff struct {
	// InitialDelay is the first delay. Zero uses the default.
	InitialDelay time.Duration

	// MaxDelay caps the exponential growth. Zero uses the default.
	MaxDelay time.Duration

	// MaxAttempts limits consecutive failed attempts. Zero means
	// unlimited.
	MaxAttempts int
}

// Config holds gateway connection settings.
type Config struct {
	// URL is the websocket endpoint (ws:// or wss://).
	URL string

	// Token authenticates the identify payload.
	Token string

	// HandshakeTimeout bounds the websocket dial. Zero uses the default.
	HandshakeTimeout time.Duration

	// ShardIndex and ShardCount are the assignment requested at
	// identify time.
	ShardIndex int
	ShardCount int

	// Reconnect controls backoff between attempts.
	Reconnect Backoff
}

// Session owns one shard's gateway connection and reports its lifecycle
// to the client.
type Session struct {
	cfg    Config
	client *client.Client
	store  StateStore
	logger client.Logger
	dialer *websocket.Dialer

	seq           atomic.Int64
	lastHeartbeat atomic.Int64 // UnixNano of the last heartbeat sent

	// sessionID is written and read by the connection goroutine only.
	sessionID string
}

// noopLogger discards everything.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// NewSession creates a session for the given client. The store may be
// nil to disable session resuming.
func NewSession(cfg Config, c *client.Client, store StateStore, logger client.Logger) (*Session, error) {
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}
	if cfg.ShardCount < 1 {
		cfg.ShardCount = 1
	}
	handshake := cfg.HandshakeTimeout
	if handshake <= 0 {
		handshake = defaultHandshakeTimeout
	}
	if logger == nil {
		logger = noopLogger{}
	}

	return &Session{
		cfg:    cfg,
		client: c,
		store:  store,
		logger: logger,
		dialer: &websocket.Dialer{HandshakeTimeout: handshake},
	}, nil
}

// Run connects and services the gateway until ctx is cancelled or the
// reconnect budget is exhausted. On cancellation the client is driven
// through shutting_down to shutdown and Run returns nil.
func (s *Session) Run(ctx context.Context) error {
	s.client.SetStatus(lifecycle.StatusInitialized)
	s.client.SetStatus(lifecycle.StatusLoggingIn)

	attempt := 0
	for {
		established, err := s.connectOnce(ctx)
		if ctx.Err() != nil {
			s.shutdown()
			return nil
		}
		if errors.Is(err, errAuthFailed) {
			s.client.SetStatus(lifecycle.StatusFailedLogin)
			s.shutdown()
			return err
		}
		if established {
			attempt = 0
		}
		attempt++
		s.logger.Warn("gateway connection lost", "error", err, "attempt", attempt)

		s.client.SetStatus(lifecycle.StatusDisconnected)
		if s.cfg.Reconnect.MaxAttempts > 0 && attempt > s.cfg.Reconnect.MaxAttempts {
			s.shutdown()
			return fmt.Errorf("%w: %d attempts", ErrReconnectExhausted, attempt-1)
		}

		s.client.SetStatus(lifecycle.StatusReconnectQueued)
		delay := s.backoffDelay(attempt)
		s.client.SetStatus(lifecycle.StatusWaitingToReconnect)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			s.shutdown()
			return nil
		}
		s.client.SetStatus(lifecycle.StatusReconnecting)
	}
}

// backoffDelay returns the capped exponential delay for the given
// attempt number (1-based).
func (s *Session) backoffDelay(attempt int) time.Duration {
	initial := s.cfg.Reconnect.InitialDelay
	if initial <= 0 {
		initial = defaultInitialDelay
	}
	maxDelay := s.cfg.Reconnect.MaxDelay
	if maxDelay <= 0 {
		maxDelay = defaultMaxDelay
	}

	delay := initial
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= maxDelay {
			return maxDelay
		}
	}
	if delay > maxDelay {
		return maxDelay
	}
	return delay
}

// connectOnce runs a single connection from dial to disconnect. The
// returned bool reports whether the session reached connected state.
func (s *Session) connectOnce(ctx context.Context) (bool, error) {
	s.client.SetStatus(lifecycle.StatusConnectingToGateway)

	conn, _, err := s.dialer.DialContext(ctx, s.cfg.URL, nil)
	if err != nil {
		return false, fmt.Errorf("gateway: dialling %s: %w", s.cfg.URL, err)
	}
	defer conn.Close() //nolint:errcheck // disconnect path

	// Unblock the read loop when ctx is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close() //nolint:errcheck // forced disconnect
		case <-done:
		}
	}()

	hello, err := s.readHello(conn)
	if err != nil {
		return false, err
	}

	s.client.SetStatus(lifecycle.StatusIdentifyingSession)
	resuming, err := s.sendIdentifyOrResume(ctx, conn)
	if err != nil {
		return false, err
	}
	s.client.SetStatus(lifecycle.StatusAwaitingConfirmation)

	interval := time.Duration(hello.HeartbeatInterval) * time.Millisecond
	stopHeartbeat := make(chan struct{})
	defer close(stopHeartbeat)
	go s.heartbeatLoop(conn, interval, stopHeartbeat)

	return s.readLoop(ctx, conn, resuming)
}

// readHello consumes the hello frame that opens every connection.
func (s *Session) readHello(conn *websocket.Conn) (helloPayload, error) {
	var f frame
	if err := conn.ReadJSON(&f); err != nil {
		return helloPayload{}, fmt.Errorf("gateway: reading hello: %w", err)
	}
	if f.Op != opHello {
		return helloPayload{}, fmt.Errorf("gateway: expected hello, got %q", f.Op)
	}
	var hello helloPayload
	if err := json.Unmarshal(f.Data, &hello); err != nil {
		return helloPayload{}, fmt.Errorf("gateway: decoding hello: %w", err)
	}
	if hello.HeartbeatInterval <= 0 {
		return helloPayload{}, fmt.Errorf("gateway: hello carried no heartbeat interval")
	}
	return hello, nil
}

// sendIdentifyOrResume opens the session, resuming when stored state
// for this shard exists.
func (s *Session) sendIdentifyOrResume(ctx context.Context, conn *websocket.Conn) (bool, error) {
	if s.store != nil {
		state, err := s.store.Load(ctx, s.cfg.ShardIndex)
		switch {
		case err == nil && state.SessionID != "" && state.ShardCount == s.cfg.ShardCount:
			s.logger.Info("resuming gateway session",
				"session_id", state.SessionID, "seq", state.Sequence)
			s.seq.Store(state.Sequence)
			s.sessionID = state.SessionID
			return true, s.writeFrame(conn, frame{Op: opResume}, resumePayload{
				Token:     s.cfg.Token,
				SessionID: state.SessionID,
				Sequence:  state.Sequence,
			})
		case err != nil && !errors.Is(err, session.ErrNotFound):
			s.logger.Warn("loading resume state failed", "error", err)
		}
	}

	s.seq.Store(0)
	s.sessionID = ""
	return false, s.writeFrame(conn, frame{Op: opIdentify}, identifyPayload{
		Token: s.cfg.Token,
		Shard: [2]int{s.cfg.ShardIndex, s.cfg.ShardCount},
	})
}

// writeFrame marshals the payload into the frame and writes it with a
// deadline.
func (s *Session) writeFrame(conn *websocket.Conn, f frame, payload any) error {
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("gateway: encoding %s payload: %w", f.Op, err)
		}
		f.Data = data
	}
	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("gateway: setting write deadline: %w", err)
	}
	if err := conn.WriteJSON(f); err != nil {
		return fmt.Errorf("gateway: writing %s: %w", f.Op, err)
	}
	return nil
}

// heartbeatLoop sends a heartbeat every interval until stopped. The
// send timestamp feeds the gateway ping measurement when the ack
// arrives.
func (s *Session) heartbeatLoop(conn *websocket.Conn, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.lastHeartbeat.Store(time.Now().UnixNano())
			if err := s.writeFrame(conn, frame{Op: opHeartbeat}, heartbeatPayload{
				Sequence: s.seq.Load(),
			}); err != nil {
				// The read loop observes the broken connection.
				return
			}
		case <-stop:
			return
		}
	}
}

// readLoop services frames until the connection drops. It reports
// whether connected state was reached during this connection.
func (s *Session) readLoop(ctx context.Context, conn *websocket.Conn, resuming bool) (bool, error) {
	established := false
	for {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			if !established && !resuming && websocket.IsCloseError(err, websocket.ClosePolicyViolation) {
				return false, fmt.Errorf("%w: %v", errAuthFailed, err)
			}
			return established, fmt.Errorf("gateway: reading frame: %w", err)
		}
		if f.Seq > 0 {
			s.seq.Store(f.Seq)
		}

		switch f.Op {
		case opDispatch:
			if err := s.handleDispatch(ctx, f); err != nil {
				s.logger.Warn("dispatch failed", "type", f.Type, "error", err)
				continue
			}
			if f.Type == eventReady {
				established = true
			}
		case opHeartbeatAck:
			if sent := s.lastHeartbeat.Load(); sent > 0 {
				s.client.SetGatewayPing(time.Since(time.Unix(0, sent)))
			}
		case opInvalidSession:
			s.clearStoredState(ctx)
			return established, fmt.Errorf("gateway: session invalidated by service")
		default:
			s.logger.Debug("ignoring unknown op", "op", f.Op)
		}
	}
}

// handleDispatch applies one dispatch event to the client state.
func (s *Session) handleDispatch(ctx context.Context, f frame) error {
	switch f.Type {
	case eventReady:
		return s.handleReady(ctx, f.Data)
	case eventUpsert:
		var payload statePayload
		if err := json.Unmarshal(f.Data, &payload); err != nil {
			return fmt.Errorf("gateway: decoding upsert: %w", err)
		}
		if err := s.applyUpsert(payload); err != nil {
			return err
		}
		s.persistSequence(ctx)
		return nil
	case eventRemove:
		var payload removePayload
		if err := json.Unmarshal(f.Data, &payload); err != nil {
			return fmt.Errorf("gateway: decoding remove: %w", err)
		}
		id, err := cache.ParseSnowflake(payload.ID)
		if err != nil {
			return fmt.Errorf("gateway: remove carried bad id %q: %w", payload.ID, err)
		}
		if err := s.client.ApplyRemove(payload.Kind, id); err != nil {
			return err
		}
		s.persistSequence(ctx)
		return nil
	default:
		s.logger.Debug("ignoring unknown dispatch", "type", f.Type)
		return nil
	}
}

// handleReady confirms the session, loads the initial state and marks
// the client connected.
func (s *Session) handleReady(ctx context.Context, data json.RawMessage) error {
	var ready readyPayload
	if err := json.Unmarshal(data, &ready); err != nil {
		return fmt.Errorf("gateway: decoding ready: %w", err)
	}

	s.client.SetShardInfo(ready.Shard[0], ready.Shard[1])
	s.sessionID = ready.SessionID
	s.client.SetStatus(lifecycle.StatusLoadingState)

	for _, item := range ready.State {
		if err := s.applyUpsert(item); err != nil {
			s.logger.Warn("initial state entity rejected", "kind", item.Kind, "error", err)
		}
	}

	if s.store != nil {
		if err := s.store.Save(ctx, session.State{
			SessionID:  ready.SessionID,
			Sequence:   s.seq.Load(),
			ShardIndex: s.cfg.ShardIndex,
			ShardCount: s.cfg.ShardCount,
		}); err != nil {
			s.logger.Warn("saving resume state failed", "error", err)
		}
	}

	s.client.SetStatus(lifecycle.StatusConnected)
	s.logger.Info("gateway session established",
		"session_id", ready.SessionID, "shard", fmt.Sprintf("[%d / %d]", ready.Shard[0], ready.Shard[1]))
	return nil
}

// applyUpsert decodes and stores one entity.
func (s *Session) applyUpsert(payload statePayload) error {
	e, err := decodeEntity(payload.Kind, payload.Entity)
	if err != nil {
		return err
	}
	return s.client.ApplyUpsert(payload.Kind, e)
}

// persistSequence updates the stored sequence so a resume replays as
// little as possible.
func (s *Session) persistSequence(ctx context.Context) {
	if s.store == nil || s.sessionID == "" {
		return
	}
	if err := s.store.Save(ctx, session.State{
		SessionID:  s.sessionID,
		Sequence:   s.seq.Load(),
		ShardIndex: s.cfg.ShardIndex,
		ShardCount: s.cfg.ShardCount,
	}); err != nil {
		s.logger.Warn("saving resume state failed", "error", err)
	}
}

// clearStoredState drops resume state so the next attempt identifies
// fresh.
func (s *Session) clearStoredState(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Clear(ctx, s.cfg.ShardIndex); err != nil {
		s.logger.Warn("clearing resume state failed", "error", err)
	}
}

// shutdown drives the client through its terminal transitions.
func (s *Session) shutdown() {
	s.client.SetStatus(lifecycle.StatusShuttingDown)
	s.client.TeardownCaches()
	s.client.SetStatus(lifecycle.StatusShutdown)
	s.logger.Info("gateway session shut down")
}
