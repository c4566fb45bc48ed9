package cache

import (
	"errors"
	"testing"
)

func TestComposite_Get(t *testing.T) {
	shard0 := NewRegistry[*testEntity]()
	shard1 := NewRegistry[*testEntity]()
	shard0.Upsert(ent(1, "first"))
	shard1.Upsert(ent(2, "second"))

	view := NewComposite[*testEntity](shard0, shard1)

	t.Run("finds entity in any member", func(t *testing.T) {
		for _, id := range []Snowflake{1, 2} {
			if _, ok := view.Get(id); !ok {
				t.Errorf("Get(%d) ok = false, want true", id)
			}
		}
	})

	t.Run("absent everywhere", func(t *testing.T) {
		if _, ok := view.Get(99); ok {
			t.Error("Get(99) ok = true, want false")
		}
	})

	t.Run("first member wins on duplicate id", func(t *testing.T) {
		shard0.Upsert(ent(7, "from-shard0"))
		shard1.Upsert(ent(7, "from-shard1"))

		got, ok := view.Get(7)
		if !ok {
			t.Fatal("Get(7) ok = false")
		}
		if got.name != "from-shard0" {
			t.Errorf("Get(7).name = %q, want %q", got.name, "from-shard0")
		}
	})
}

func TestComposite_GetString(t *testing.T) {
	shard := NewRegistry[*testEntity]()
	shard.Upsert(ent(10, "alpha"))
	view := NewComposite[*testEntity](shard)

	got, ok, err := view.GetString("10")
	if err != nil || !ok || got.id != 10 {
		t.Errorf("GetString(10) = (%v, %v, %v), want id 10", got, ok, err)
	}

	if _, _, err := view.GetString("not-a-number"); !errors.Is(err, ErrMalformedID) {
		t.Errorf("GetString error = %v, want ErrMalformedID", err)
	}
}

func TestComposite_ByName(t *testing.T) {
	shard0 := NewRegistry[*testEntity]()
	shard1 := NewRegistry[*testEntity]()
	shard0.Upsert(ent(1, "echo"))
	shard0.Upsert(ent(2, "other"))
	shard1.Upsert(ent(3, "echo"))

	view := NewComposite[*testEntity](shard0, shard1)

	got, err := view.ByName("echo", false)
	if err != nil {
		t.Fatalf("ByName() error = %v", err)
	}
	if len(got) != 2 || got[0].id != 1 || got[1].id != 3 {
		t.Errorf("ByName(echo) ids = %v, want [1 3] in member order", got)
	}

	if _, err := view.ByName("", false); !errors.Is(err, ErrMissingName) {
		t.Errorf("ByName() error = %v, want ErrMissingName", err)
	}
}

func TestComposite_SnapshotAndLen(t *testing.T) {
	shard0 := NewRegistry[*testEntity]()
	shard1 := NewRegistry[*testEntity]()
	shard0.Upsert(ent(1, "a"))
	shard0.Upsert(ent(2, "b"))
	shard1.Upsert(ent(3, "c"))

	view := NewComposite[*testEntity](shard0, shard1)

	if view.Len() != 3 {
		t.Errorf("Len() = %d, want 3", view.Len())
	}

	snap := view.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("Snapshot() length = %d, want 3", len(snap))
	}
	// Member order, then each member's insertion order.
	wantOrder := []Snowflake{1, 2, 3}
	for i, e := range snap {
		if e.id != wantOrder[i] {
			t.Errorf("Snapshot()[%d].id = %d, want %d", i, e.id, wantOrder[i])
		}
	}
}

func TestComposite_Nested(t *testing.T) {
	inner0 := NewRegistry[*testEntity]()
	inner1 := NewRegistry[*testEntity]()
	inner0.Upsert(ent(1, "a"))
	inner1.Upsert(ent(2, "b"))

	nested := NewComposite[*testEntity](NewComposite[*testEntity](inner0, inner1))

	if nested.Len() != 2 {
		t.Errorf("Len() = %d, want 2", nested.Len())
	}
	if _, ok := nested.Get(2); !ok {
		t.Error("Get(2) through nested composite ok = false")
	}
}
