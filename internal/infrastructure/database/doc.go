// Package database provides SQLite connectivity for the session-resume
// store.
//
// This package manages:
//   - Database connection with WAL mode for concurrent access
//   - Busy timeout to prevent lock contention errors
//   - File permissions restricted to the owner (0600)
//
// Schema lives with the store that owns it (see the session package);
// a single table does not warrant a migration framework.
package database
