// Package session persists gateway resume state in SQLite.
//
// A gateway session that survives a process restart can resume instead
// of re-identifying, which avoids replaying the full state load. The
// store keeps one row per shard: the session identifier handed out at
// READY and the last dispatch sequence acknowledged.
//
// Thread Safety:
// Store methods are safe for concurrent use; serialisation is delegated
// to the underlying database connection.
package session
