package cache

import "strings"

// nameIndex is a point-in-time secondary lookup over a registry snapshot,
// keyed by display name. It is derived state with no lifecycle of its own:
// built on demand, consistent with the snapshot it was computed from, and
// discarded after use. It is never diffed incrementally.
type nameIndex[T Named] struct {
	ignoreCase bool
	byName     map[string][]T
}

// newNameIndex materialises the (name, entity) pairs of a snapshot.
// Entities keep the snapshot's ordering within each name bucket.
func newNameIndex[T Named](snapshot []T, ignoreCase bool) *nameIndex[T] {
	idx := &nameIndex[T]{
		ignoreCase: ignoreCase,
		byName:     make(map[string][]T, len(snapshot)),
	}
	for _, v := range snapshot {
		key := v.DisplayName()
		if ignoreCase {
			key = strings.ToLower(key)
		}
		idx.byName[key] = append(idx.byName[key], v)
	}
	return idx
}

// lookup returns the entities matching the name exactly under the index's
// case folding. The returned slice is a copy; nil when nothing matches.
func (idx *nameIndex[T]) lookup(name string) []T {
	if idx.ignoreCase {
		name = strings.ToLower(name)
	}
	matches := idx.byName[name]
	if len(matches) == 0 {
		return nil
	}
	out := make([]T, len(matches))
	copy(out, matches)
	return out
}
