// Package entity defines the server-provided record types held in the
// Slipstream caches: users, groups, roles, channel categories, text, voice
// and direct channels, and custom emotes.
//
// Every type carries a snowflake identifier and a display name and so
// satisfies cache.Named. The remaining fields are the subset of the wire
// payloads the core keeps; the caches never inspect them.
//
// Entities are replaced wholesale when the gateway delivers an update.
// Treat values handed out by a cache as read-only: they are shared between
// every reader until the next replacement.
package entity
