package client

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nerrad567/slipstream-core/cache"
	"github.com/nerrad567/slipstream-core/entity"
	"github.com/nerrad567/slipstream-core/lifecycle"
	"github.com/nerrad567/slipstream-core/rest"
)

// Logger defines the logging interface used by the Client.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Client holds the in-memory state of one gateway connection: the entity
// caches, the lifecycle gate, and the shard assignment.
//
// Thread Safety: all public methods are safe for concurrent use. The
// ingestion methods are intended for a single writer (the gateway
// session); readers are unrestricted.
type Client struct {
	users      *cache.Registry[*entity.User]
	groups     *cache.Registry[*entity.Group]
	roles      *cache.Registry[*entity.Role]
	categories *cache.Registry[*entity.Category]
	text       *cache.Registry[*entity.TextChannel]
	voice      *cache.Registry[*entity.VoiceChannel]
	direct     *cache.Registry[*entity.DirectChannel]
	emotes     *cache.Registry[*entity.Emote]

	gate       *lifecycle.Gate
	dispatcher rest.Dispatcher

	shardMu sync.Mutex
	shard   *ShardInfo

	gatewayPing atomic.Int64 // last heartbeat round trip, nanoseconds

	logger Logger
}

// New creates a client with empty caches and the gate in Initializing.
// The dispatcher may be nil when no REST surface is needed; RestPing then
// fails with ErrNoDispatcher.
func New(dispatcher rest.Dispatcher) *Client {
	return &Client{
		users:      cache.NewRegistry[*entity.User](),
		groups:     cache.NewRegistry[*entity.Group](),
		roles:      cache.NewRegistry[*entity.Role](),
		categories: cache.NewRegistry[*entity.Category](),
		text:       cache.NewRegistry[*entity.TextChannel](),
		voice:      cache.NewRegistry[*entity.VoiceChannel](),
		direct:     cache.NewRegistry[*entity.DirectChannel](),
		emotes:     cache.NewRegistry[*entity.Emote](),
		gate:       lifecycle.NewGate(),
		dispatcher: dispatcher,
		logger:     noopLogger{},
	}
}

// SetLogger sets the logger for the client.
func (c *Client) SetLogger(logger Logger) {
	c.logger = logger
}

// Status returns the current lifecycle status without blocking.
func (c *Client) Status() lifecycle.Status {
	return c.gate.Status()
}

// AwaitStatus blocks until the lifecycle gate reaches the target
// startup-phase status. See lifecycle.Gate.AwaitStatus for the full
// contract.
func (c *Client) AwaitStatus(ctx context.Context, target lifecycle.Status) error {
	return c.gate.AwaitStatus(ctx, target)
}

// AwaitReady blocks until the client is connected and its caches are
// populated.
func (c *Client) AwaitReady(ctx context.Context) error {
	return c.gate.AwaitReady(ctx)
}

// Gate exposes the lifecycle gate to the connection-management path.
func (c *Client) Gate() *lifecycle.Gate {
	return c.gate
}

// SetStatus records a lifecycle transition reported by the gateway
// session.
func (c *Client) SetStatus(status lifecycle.Status) {
	c.logger.Debug("status transition", "status", status.String())
	c.gate.Transition(status)
}

// ApplyUpsert routes an entity add/update notification into the registry
// for its kind. The entity must be the pointer type matching the kind.
func (c *Client) ApplyUpsert(kind entity.Kind, e any) error {
	switch kind {
	case entity.KindUser:
		v, ok := e.(*entity.User)
		if !ok {
			return fmt.Errorf("%w: %s got %T", ErrKindMismatch, kind, e)
		}
		c.users.Upsert(v)
	case entity.KindGroup:
		v, ok := e.(*entity.Group)
		if !ok {
			return fmt.Errorf("%w: %s got %T", ErrKindMismatch, kind, e)
		}
		c.groups.Upsert(v)
	case entity.KindRole:
		v, ok := e.(*entity.Role)
		if !ok {
			return fmt.Errorf("%w: %s got %T", ErrKindMismatch, kind, e)
		}
		c.roles.Upsert(v)
	case entity.KindCategory:
		v, ok := e.(*entity.Category)
		if !ok {
			return fmt.Errorf("%w: %s got %T", ErrKindMismatch, kind, e)
		}
		c.categories.Upsert(v)
	case entity.KindTextChannel:
		v, ok := e.(*entity.TextChannel)
		if !ok {
			return fmt.Errorf("%w: %s got %T", ErrKindMismatch, kind, e)
		}
		c.text.Upsert(v)
	case entity.KindVoiceChannel:
		v, ok := e.(*entity.VoiceChannel)
		if !ok {
			return fmt.Errorf("%w: %s got %T", ErrKindMismatch, kind, e)
		}
		c.voice.Upsert(v)
	case entity.KindDirectChannel:
		v, ok := e.(*entity.DirectChannel)
		if !ok {
			return fmt.Errorf("%w: %s got %T", ErrKindMismatch, kind, e)
		}
		c.direct.Upsert(v)
	case entity.KindEmote:
		v, ok := e.(*entity.Emote)
		if !ok {
			return fmt.Errorf("%w: %s got %T", ErrKindMismatch, kind, e)
		}
		c.emotes.Upsert(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return nil
}

// ApplyRemove routes an entity removal notification into the registry for
// its kind. Removing an absent identifier is a no-op.
func (c *Client) ApplyRemove(kind entity.Kind, id cache.Snowflake) error {
	switch kind {
	case entity.KindUser:
		c.users.Remove(id)
	case entity.KindGroup:
		c.groups.Remove(id)
	case entity.KindRole:
		c.roles.Remove(id)
	case entity.KindCategory:
		c.categories.Remove(id)
	case entity.KindTextChannel:
		c.text.Remove(id)
	case entity.KindVoiceChannel:
		c.voice.Remove(id)
	case entity.KindDirectChannel:
		c.direct.Remove(id)
	case entity.KindEmote:
		c.emotes.Remove(id)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return nil
}

// TeardownCaches erases every registry. Called by the gateway session
// during shutdown so no reader keeps observing stale entities.
func (c *Client) TeardownCaches() {
	c.users.Clear()
	c.groups.Clear()
	c.roles.Clear()
	c.categories.Clear()
	c.text.Clear()
	c.voice.Clear()
	c.direct.Clear()
	c.emotes.Clear()
	c.logger.Info("entity caches torn down")
}

// SetGatewayPing records the latest transport heartbeat round trip.
func (c *Client) SetGatewayPing(d time.Duration) {
	c.gatewayPing.Store(int64(d))
}

// GatewayPing returns the last transport heartbeat round trip, zero when
// no heartbeat has been acknowledged yet. For a REST-level measurement
// use RestPing.
func (c *Client) GatewayPing() time.Duration {
	return time.Duration(c.gatewayPing.Load())
}

// CacheSizes returns the live entry count per entity kind, keyed by kind
// name. Used by telemetry.
func (c *Client) CacheSizes() map[entity.Kind]int {
	return map[entity.Kind]int{
		entity.KindUser:          c.users.Len(),
		entity.KindGroup:         c.groups.Len(),
		entity.KindRole:          c.roles.Len(),
		entity.KindCategory:      c.categories.Len(),
		entity.KindTextChannel:   c.text.Len(),
		entity.KindVoiceChannel:  c.voice.Len(),
		entity.KindDirectChannel: c.direct.Len(),
		entity.KindEmote:         c.emotes.Len(),
	}
}
