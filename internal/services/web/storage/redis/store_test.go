package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	webstorage "github.com/louisbranch/renegocia/internal/services/web/storage"
)

func TestOpenRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Options{Addr: "  "}); err == nil {
		t.Fatal("expected address error")
	}
}

func TestOpenFailsWhenServerUnreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	// Port 1 on loopback refuses connections immediately.
	_, err := Open(ctx, Options{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond})
	if err == nil {
		t.Fatal("expected ping error")
	}
}

func TestRedisKeyAppliesPrefix(t *testing.T) {
	t.Parallel()

	store := &Store{prefix: DefaultKeyPrefix}
	got, err := store.redisKey(" submissions ")
	if err != nil {
		t.Fatalf("redisKey() error = %v", err)
	}
	if got != "renegocia:slot:submissions" {
		t.Fatalf("redisKey() = %q", got)
	}
	if _, err := store.redisKey(""); err == nil {
		t.Fatal("expected blank key error")
	}
}

func TestNilStoreIsNotConfigured(t *testing.T) {
	t.Parallel()

	var store *Store
	if _, _, err := store.GetSlot(context.Background(), "k"); !errors.Is(err, webstorage.ErrNotConfigured) {
		t.Fatalf("GetSlot() err = %v, want ErrNotConfigured", err)
	}
	if err := store.PutSlot(context.Background(), "k", nil); !errors.Is(err, webstorage.ErrNotConfigured) {
		t.Fatalf("PutSlot() err = %v, want ErrNotConfigured", err)
	}
	if err := store.DeleteSlot(context.Background(), "k"); !errors.Is(err, webstorage.ErrNotConfigured) {
		t.Fatalf("DeleteSlot() err = %v, want ErrNotConfigured", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() err = %v", err)
	}
}

func openTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	store, err := Open(context.Background(), Options{Addr: server.Addr()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store, server
}

func TestSlotRoundTripOverwriteAndDelete(t *testing.T) {
	t.Parallel()

	store, server := openTestStore(t)
	ctx := context.Background()

	if _, found, err := store.GetSlot(ctx, "submissions"); err != nil || found {
		t.Fatalf("GetSlot() on empty store = found %t err %v, want absent", found, err)
	}

	if err := store.PutSlot(ctx, "submissions", []byte(`[{"nome":"a"}]`)); err != nil {
		t.Fatalf("put slot: %v", err)
	}
	if err := store.PutSlot(ctx, "submissions", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite slot: %v", err)
	}
	if got, err := server.Get("renegocia:slot:submissions"); err != nil || got != "[]" {
		t.Fatalf("raw key = %q err %v, want prefixed payload", got, err)
	}

	slot, found, err := store.GetSlot(ctx, " submissions ")
	if err != nil {
		t.Fatalf("get slot: %v", err)
	}
	if !found {
		t.Fatal("expected slot")
	}
	if slot.Key != "submissions" || string(slot.Payload) != "[]" {
		t.Fatalf("slot = %+v, want key submissions payload []", slot)
	}

	if err := store.DeleteSlot(ctx, "submissions"); err != nil {
		t.Fatalf("delete slot: %v", err)
	}
	if err := store.DeleteSlot(ctx, "submissions"); err != nil {
		t.Fatalf("delete absent slot: %v", err)
	}
	if _, found, err := store.GetSlot(ctx, "submissions"); err != nil || found {
		t.Fatalf("GetSlot() after delete = found %t err %v, want absent", found, err)
	}
}

func TestSlotKeyRequired(t *testing.T) {
	t.Parallel()

	store, _ := openTestStore(t)
	ctx := context.Background()

	if _, _, err := store.GetSlot(ctx, " "); err == nil {
		t.Fatal("expected get error")
	}
	if err := store.PutSlot(ctx, "", []byte("x")); err == nil {
		t.Fatal("expected put error")
	}
	if err := store.DeleteSlot(ctx, ""); err == nil {
		t.Fatal("expected delete error")
	}
}

func TestGetSlotReportsServerFailure(t *testing.T) {
	t.Parallel()

	store, server := openTestStore(t)
	server.SetError("ERR store offline")
	if _, _, err := store.GetSlot(context.Background(), "submissions"); err == nil {
		t.Fatal("expected get error")
	}
}
