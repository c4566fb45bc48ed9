package cache

// View is the read contract shared by Registry and Composite. Code that
// only reads entities should accept a View so it works unchanged against a
// single registry or a cross-shard aggregation.
type View[T Named] interface {
	// Get returns the entity for the identifier, or zero and false.
	Get(id Snowflake) (T, bool)

	// ByName returns entities whose display name matches exactly.
	ByName(name string, ignoreCase bool) ([]T, error)

	// Snapshot returns a point-in-time copy of all entities.
	Snapshot() []T

	// Len returns the number of live entries.
	Len() int
}

// Composite presents several Views as one logical registry. It does not
// own its members; it iterates them in registration order on every call.
//
// Members normally partition the identifier space (one registry per
// shard). Should an identifier exist in two members regardless, Get
// returns the first match in member order, while ByName and Snapshot
// report every member's matches, duplicates included.
//
// Thread Safety: the member list is fixed at construction, so Composite
// is safe for concurrent use whenever its members are.
type Composite[T Named] struct {
	members []View[T]
}

// NewComposite creates a read-only aggregation over the given views in
// order. Members may themselves be Composites.
func NewComposite[T Named](members ...View[T]) *Composite[T] {
	return &Composite[T]{members: members}
}

// Get scans members in registration order and returns the first match.
func (c *Composite[T]) Get(id Snowflake) (T, bool) {
	for _, m := range c.members {
		if v, ok := m.Get(id); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// GetString parses the base-10 string form of an identifier and looks it
// up across all members.
func (c *Composite[T]) GetString(id string) (T, bool, error) {
	var zero T
	sf, err := ParseSnowflake(id)
	if err != nil {
		return zero, false, err
	}
	v, ok := c.Get(sf)
	return v, ok, nil
}

// ByName concatenates each member's matches, preserving member order and
// each member's own ordering within it.
func (c *Composite[T]) ByName(name string, ignoreCase bool) ([]T, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	var out []T
	for _, m := range c.members {
		matches, err := m.ByName(name, ignoreCase)
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	return out, nil
}

// Snapshot concatenates member snapshots in member order. Cost is the sum
// of the member costs, so this is more expensive than any single member's
// snapshot.
func (c *Composite[T]) Snapshot() []T {
	var out []T
	for _, m := range c.members {
		out = append(out, m.Snapshot()...)
	}
	return out
}

// Len returns the total entry count across members.
func (c *Composite[T]) Len() int {
	total := 0
	for _, m := range c.members {
		total += m.Len()
	}
	return total
}
