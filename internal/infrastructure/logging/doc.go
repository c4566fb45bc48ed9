// Package logging provides structured logging for Slipstream clients.
//
// This package wraps Go's standard log/slog package so every component
// logs with the same format, level filtering and default fields.
//
// # Features
//
//   - JSON output for production (machine-parsable)
//   - Text output for development (human-readable)
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// Library packages (cache, client, gateway, ...) accept their own narrow
// Logger interfaces; *logging.Logger satisfies all of them.
package logging
