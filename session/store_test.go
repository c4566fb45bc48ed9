package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nerrad567/slipstream-core/internal/infrastructure/database"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(database.Config{
		Path:        filepath.Join(t.TempDir(), "session.db"),
		WALMode:     true,
		BusyTimeout: 5,
	})
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() }) //nolint:errcheck // test cleanup

	store, err := NewStore(context.Background(), db.DB)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return store
}

func TestStore_SaveLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved := State{
		SessionID:  "abc123",
		Sequence:   42,
		ShardIndex: 0,
		ShardCount: 2,
	}
	if err := store.Save(ctx, saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx, 0)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.SessionID != "abc123" || got.Sequence != 42 || got.ShardCount != 2 {
		t.Errorf("Load() = %+v, want saved state", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("Load() UpdatedAt is zero, want a stored timestamp")
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := State{SessionID: "old", Sequence: 1, ShardIndex: 0, ShardCount: 1}
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	second := State{
		SessionID:  "new",
		Sequence:   99,
		ShardIndex: 0,
		ShardCount: 1,
		UpdatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx, 0)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.SessionID != "new" || got.Sequence != 99 {
		t.Errorf("Load() = %+v, want overwritten state", got)
	}
	if !got.UpdatedAt.Equal(second.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, second.UpdatedAt)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load(context.Background(), 7)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, State{SessionID: "s", ShardIndex: 1, ShardCount: 2}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Clear(ctx, 1); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := store.Load(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v after Clear, want ErrNotFound", err)
	}

	// Clearing again is a no-op.
	if err := store.Clear(ctx, 1); err != nil {
		t.Errorf("Clear() second call error = %v", err)
	}
}

func TestStore_PerShardIsolation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		state := State{SessionID: "s", Sequence: int64(i), ShardIndex: i, ShardCount: 3}
		if err := store.Save(ctx, state); err != nil {
			t.Fatalf("Save(shard %d) error = %v", i, err)
		}
	}

	for i := 0; i < 3; i++ {
		got, err := store.Load(ctx, i)
		if err != nil {
			t.Fatalf("Load(shard %d) error = %v", i, err)
		}
		if got.Sequence != int64(i) {
			t.Errorf("Load(shard %d).Sequence = %d, want %d", i, got.Sequence, i)
		}
	}
}
