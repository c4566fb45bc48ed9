// Package cache provides the concurrent entity caches for Slipstream Core.
//
// Every entity kind the gateway delivers (users, groups, roles, channels,
// emotes) is held in a Registry: a thread-safe map from snowflake identifier
// to the latest known version of the entity. The gateway session is the
// single writer; application code reads concurrently through point lookups,
// name lookups, and snapshots.
//
// # Key Types
//
//   - Snowflake: the 64-bit unsigned entity identifier
//   - Registry: the concurrent id→entity store, one instance per entity kind
//   - View: the read contract shared by Registry and Composite
//   - Composite: a read-only aggregation of several Views (e.g. one per shard)
//
// # Usage
//
//	users := cache.NewRegistry[*entity.User]()
//
//	// Ingestion path (single writer)
//	users.Upsert(u)
//	users.Remove(id)
//
//	// Application code (any number of readers)
//	u, ok := users.Get(id)
//	matches, err := users.ByName("alpha", true)
//	all := users.Snapshot()
//
// # Thread Safety
//
// All Registry and Composite methods are safe for concurrent use. Writes on
// a given identifier are linearizable with respect to later point lookups.
// Snapshot and ByName materialise a point-in-time copy: a snapshot reflects
// some consistent state between call and return, but an overlapping Upsert
// is not guaranteed to appear in it. Snapshots cost O(n); prefer Get in hot
// paths.
package cache
