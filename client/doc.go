// Package client is the composition root of Slipstream Core.
//
// A Client owns one cache registry per entity kind, the lifecycle gate,
// the immutable shard assignment, and the REST dispatcher used by the
// ping probe. Nothing here is process-global: every cache is reached
// through the Client that owns it.
//
// # Roles
//
// The gateway session is the single writer. It feeds entity notifications
// through ApplyUpsert/ApplyRemove, reports connection transitions through
// SetStatus, and records heartbeat latency through SetGatewayPing.
// Application code reads through the per-kind accessors and blocks on
// AwaitStatus/AwaitReady; both roles may run concurrently.
//
// # Usage
//
//	c := client.New(dispatcher)
//
//	if err := c.AwaitReady(ctx); err != nil {
//	    return err
//	}
//	u, ok := c.UserByID(81384788765712384)
//	matches, err := c.UsersByName("alpha", true)
//	latency, err := c.RestPing(ctx)
//
// For multi-shard deployments, ShardedClient aggregates one Client per
// shard and exposes unified cross-shard cache views.
package client
