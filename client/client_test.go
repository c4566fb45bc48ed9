package client

import (
	"context"
	"errors"
	"testing"

	"github.com/nerrad567/slipstream-core/cache"
	"github.com/nerrad567/slipstream-core/entity"
	"github.com/nerrad567/slipstream-core/lifecycle"
)

func TestClient_ApplyUpsert(t *testing.T) {
	c := New(nil)

	if err := c.ApplyUpsert(entity.KindUser, &entity.User{ID: 10, Username: "alpha"}); err != nil {
		t.Fatalf("ApplyUpsert() error = %v", err)
	}

	got, ok := c.UserByID(10)
	if !ok || got.Username != "alpha" {
		t.Errorf("UserByID(10) = (%v, %v), want alpha", got, ok)
	}

	t.Run("routes every kind to its own registry", func(t *testing.T) {
		upserts := []struct {
			kind entity.Kind
			e    any
		}{
			{entity.KindGroup, &entity.Group{ID: 1, Name: "g"}},
			{entity.KindRole, &entity.Role{ID: 2, Name: "r"}},
			{entity.KindCategory, &entity.Category{ID: 3, Name: "c"}},
			{entity.KindTextChannel, &entity.TextChannel{ID: 4, Name: "t"}},
			{entity.KindVoiceChannel, &entity.VoiceChannel{ID: 5, Name: "v"}},
			{entity.KindDirectChannel, &entity.DirectChannel{ID: 6, RecipientName: "d"}},
			{entity.KindEmote, &entity.Emote{ID: 7, Name: "e"}},
		}
		for _, u := range upserts {
			if err := c.ApplyUpsert(u.kind, u.e); err != nil {
				t.Fatalf("ApplyUpsert(%s) error = %v", u.kind, err)
			}
		}

		sizes := c.CacheSizes()
		for _, u := range upserts {
			if sizes[u.kind] != 1 {
				t.Errorf("CacheSizes()[%s] = %d, want 1", u.kind, sizes[u.kind])
			}
		}
	})

	t.Run("kind mismatch", func(t *testing.T) {
		err := c.ApplyUpsert(entity.KindUser, &entity.Group{ID: 99})
		if !errors.Is(err, ErrKindMismatch) {
			t.Errorf("ApplyUpsert() error = %v, want ErrKindMismatch", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		err := c.ApplyUpsert(entity.Kind("webhook"), &entity.User{ID: 1})
		if !errors.Is(err, ErrUnknownKind) {
			t.Errorf("ApplyUpsert() error = %v, want ErrUnknownKind", err)
		}
	})
}

func TestClient_ApplyRemove(t *testing.T) {
	c := New(nil)
	if err := c.ApplyUpsert(entity.KindUser, &entity.User{ID: 10, Username: "alpha"}); err != nil {
		t.Fatalf("ApplyUpsert() error = %v", err)
	}

	if err := c.ApplyRemove(entity.KindUser, 10); err != nil {
		t.Fatalf("ApplyRemove() error = %v", err)
	}
	if _, ok := c.UserByID(10); ok {
		t.Error("UserByID(10) ok = true after removal")
	}

	t.Run("unknown kind", func(t *testing.T) {
		err := c.ApplyRemove(entity.Kind("webhook"), 10)
		if !errors.Is(err, ErrUnknownKind) {
			t.Errorf("ApplyRemove() error = %v, want ErrUnknownKind", err)
		}
	})
}

func TestClient_StringAccessors(t *testing.T) {
	c := New(nil)
	if err := c.ApplyUpsert(entity.KindUser, &entity.User{ID: 10, Username: "alpha"}); err != nil {
		t.Fatalf("ApplyUpsert() error = %v", err)
	}

	t.Run("string form resolves the same entity", func(t *testing.T) {
		byID, _ := c.UserByID(10)
		byString, err := c.UserByString("10")
		if err != nil {
			t.Fatalf("UserByString(10) error = %v", err)
		}
		if byID != byString {
			t.Error("UserByString(10) returned a different entity than UserByID(10)")
		}
	})

	t.Run("malformed identifier", func(t *testing.T) {
		_, err := c.UserByString("x")
		if !errors.Is(err, cache.ErrMalformedID) {
			t.Errorf("UserByString(x) error = %v, want cache.ErrMalformedID", err)
		}
	})

	t.Run("absent id is nil, not an error", func(t *testing.T) {
		got, err := c.UserByString("42")
		if err != nil {
			t.Fatalf("UserByString(42) error = %v", err)
		}
		if got != nil {
			t.Errorf("UserByString(42) = %v, want nil", got)
		}
	})
}

func TestClient_NameLookup(t *testing.T) {
	c := New(nil)
	c.ApplyUpsert(entity.KindUser, &entity.User{ID: 1, Username: "Bot"})  //nolint:errcheck // test setup
	c.ApplyUpsert(entity.KindUser, &entity.User{ID: 2, Username: "bot"})  //nolint:errcheck // test setup

	exact, err := c.UsersByName("bot", false)
	if err != nil {
		t.Fatalf("UsersByName() error = %v", err)
	}
	if len(exact) != 1 || exact[0].ID != 2 {
		t.Errorf("UsersByName(bot, false) = %v, want exactly id 2", exact)
	}

	folded, err := c.UsersByName("bot", true)
	if err != nil {
		t.Fatalf("UsersByName() error = %v", err)
	}
	if len(folded) != 2 || folded[0].ID != 1 || folded[1].ID != 2 {
		t.Errorf("UsersByName(bot, true) = %v, want ids [1 2]", folded)
	}
}

func TestClient_TeardownCaches(t *testing.T) {
	c := New(nil)
	c.ApplyUpsert(entity.KindUser, &entity.User{ID: 1, Username: "a"})   //nolint:errcheck // test setup
	c.ApplyUpsert(entity.KindGroup, &entity.Group{ID: 2, Name: "b"})     //nolint:errcheck // test setup
	c.ApplyUpsert(entity.KindEmote, &entity.Emote{ID: 3, Name: "c"})     //nolint:errcheck // test setup

	c.TeardownCaches()

	for kind, n := range c.CacheSizes() {
		if n != 0 {
			t.Errorf("CacheSizes()[%s] = %d after teardown, want 0", kind, n)
		}
	}
}

func TestClient_LifecycleSurface(t *testing.T) {
	c := New(nil)

	if c.Status() != lifecycle.StatusInitializing {
		t.Errorf("Status() = %s, want initializing", c.Status())
	}

	c.SetStatus(lifecycle.StatusConnected)
	if err := c.AwaitReady(context.Background()); err != nil {
		t.Errorf("AwaitReady() error = %v, want nil once connected", err)
	}

	c.SetStatus(lifecycle.StatusShutdown)
	if err := c.AwaitReady(context.Background()); !errors.Is(err, lifecycle.ErrShutdown) {
		t.Errorf("AwaitReady() error = %v, want ErrShutdown", err)
	}
}

func TestClient_ShardInfo(t *testing.T) {
	c := New(nil)

	if _, ok := c.ShardInfo(); ok {
		t.Error("ShardInfo() ok = true before assignment")
	}

	c.SetShardInfo(2, 8)
	info, ok := c.ShardInfo()
	if !ok {
		t.Fatal("ShardInfo() ok = false after assignment")
	}
	if info.ShardIndex() != 2 || info.ShardCount() != 8 {
		t.Errorf("ShardInfo() = %s, want [2 / 8]", info)
	}
	if info.String() != "[2 / 8]" {
		t.Errorf("String() = %q, want %q", info.String(), "[2 / 8]")
	}

	t.Run("first assignment wins", func(t *testing.T) {
		c.SetShardInfo(5, 16)
		info, _ := c.ShardInfo()
		if info.ShardIndex() != 2 || info.ShardCount() != 8 {
			t.Errorf("ShardInfo() = %s after repeat assignment, want [2 / 8]", info)
		}
	})
}
