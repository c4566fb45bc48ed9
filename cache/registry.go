package cache

import "sync"

// Registry is a concurrent store mapping snowflake identifiers to entities
// of a single kind. It holds at most one entry per identifier, always the
// latest version delivered by the gateway.
//
// The gateway ingestion path is the only writer; application code reads
// through Get, ByName and Snapshot at any time. Entities handed out by a
// Registry are shared references and must be treated as read-only.
//
// Thread Safety:
//   - All methods are safe for concurrent use from multiple goroutines.
//   - Entity replacement is atomic per identifier; readers never observe a
//     half-written entity.
type Registry[T Named] struct {
	mu      sync.RWMutex
	entries map[Snowflake]T
	order   []Snowflake // insertion order, maintained under mu
}

// NewRegistry creates an empty registry.
func NewRegistry[T Named]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[Snowflake]T),
	}
}

// Upsert inserts the entity or replaces the entry with the same identifier.
// Later Get calls observe the new value immediately; a snapshot already in
// flight is not required to.
func (r *Registry[T]) Upsert(v T) {
	id := v.SnowflakeID()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; !exists {
		r.order = append(r.order, id)
	}
	r.entries[id] = v
}

// Remove erases the entry for the identifier. Removing an absent
// identifier is a no-op.
func (r *Registry[T]) Remove(id Snowflake) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; !exists {
		return
	}
	delete(r.entries, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns the entity for the identifier, or the zero value and false
// when no entry exists. Absence is routine, not an error.
func (r *Registry[T]) Get(id Snowflake) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[id]
	return v, ok
}

// GetString parses the base-10 string form of an identifier and looks it
// up. A parse failure is reported before any lookup is attempted; an
// absent identifier after a successful parse is (zero, false, nil).
func (r *Registry[T]) GetString(id string) (T, bool, error) {
	var zero T
	sf, err := ParseSnowflake(id)
	if err != nil {
		return zero, false, err
	}
	v, ok := r.Get(sf)
	return v, ok, nil
}

// ByName returns every entity whose display name matches exactly, in
// insertion order. With ignoreCase the match uses simple case folding.
// An empty result is a nil slice, not an error; only an empty name is.
//
// Each call materialises a name index from a fresh snapshot, so the cost
// is O(n) in registry size. Prefer Get for hot paths.
func (r *Registry[T]) ByName(name string, ignoreCase bool) ([]T, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	idx := newNameIndex(r.Snapshot(), ignoreCase)
	return idx.lookup(name), nil
}

// Snapshot returns a point-in-time copy of all entities in insertion
// order. The copy is independent: later writes do not mutate it. Cost is
// O(n); do not call in a hot loop, prefer point lookups.
func (r *Registry[T]) Snapshot() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// Len returns the number of live entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Clear erases every entry. Called on client teardown so readers holding
// the registry observe an empty cache rather than stale state.
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[Snowflake]T)
	r.order = nil
}
