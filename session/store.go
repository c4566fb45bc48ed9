package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// State is the resume state for one shard's gateway session.
type State struct {
	SessionID  string
	Sequence   int64
	ShardIndex int
	ShardCount int
	UpdatedAt  time.Time
}

// Store persists resume state in a SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore creates a store over an open database connection and ensures
// the backing table exists.
func NewStore(ctx context.Context, db *sql.DB) (*Store, error) {
	const schema = `
		CREATE TABLE IF NOT EXISTS gateway_sessions (
			shard_index INTEGER PRIMARY KEY,
			shard_count INTEGER NOT NULL,
			session_id  TEXT    NOT NULL,
			sequence    INTEGER NOT NULL,
			updated_at  TEXT    NOT NULL
		)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("creating session table: %w", err)
	}
	return &Store{db: db}, nil
}

// Save upserts the resume state for the shard identified by
// state.ShardIndex.
func (s *Store) Save(ctx context.Context, state State) error {
	const query = `
		INSERT INTO gateway_sessions (shard_index, shard_count, session_id, sequence, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(shard_index) DO UPDATE SET
			shard_count = excluded.shard_count,
			session_id  = excluded.session_id,
			sequence    = excluded.sequence,
			updated_at  = excluded.updated_at`

	updatedAt := state.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, query,
		state.ShardIndex,
		state.ShardCount,
		state.SessionID,
		state.Sequence,
		updatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving session state: %w", err)
	}
	return nil
}

// Load returns the stored resume state for a shard. ErrNotFound is
// returned when no state has been saved.
func (s *Store) Load(ctx context.Context, shardIndex int) (State, error) {
	const query = `
		SELECT shard_index, shard_count, session_id, sequence, updated_at
		FROM gateway_sessions
		WHERE shard_index = ?`

	var (
		state     State
		updatedAt string
	)
	err := s.db.QueryRowContext(ctx, query, shardIndex).Scan(
		&state.ShardIndex,
		&state.ShardCount,
		&state.SessionID,
		&state.Sequence,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return State{}, ErrNotFound
	}
	if err != nil {
		return State{}, fmt.Errorf("loading session state: %w", err)
	}

	state.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return State{}, fmt.Errorf("parsing session timestamp: %w", err)
	}
	return state, nil
}

// Clear removes the stored state for a shard. Clearing an absent shard
// is a no-op.
func (s *Store) Clear(ctx context.Context, shardIndex int) error {
	const query = `DELETE FROM gateway_sessions WHERE shard_index = ?`
	if _, err := s.db.ExecContext(ctx, query, shardIndex); err != nil {
		return fmt.Errorf("clearing session state: %w", err)
	}
	return nil
}
