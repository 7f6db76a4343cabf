package token

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newStoreTest(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewRedisStore(rdb, 15*time.Minute, 24*time.Hour), mr
}

func TestRedisStore_PutGet(t *testing.T) {
	store, _ := newStoreTest(t)
	ctx := context.Background()

	if err := store.Put(ctx, KindAccess, "alice@x.com", "token-1"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get(ctx, KindAccess, "alice@x.com")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "token-1" {
		t.Errorf("Get() = %q, want %q", got, "token-1")
	}
}

func TestRedisStore_GetAbsent(t *testing.T) {
	store, _ := newStoreTest(t)

	got, err := store.Get(context.Background(), KindAccess, "nobody@x.com")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "" {
		t.Errorf("Get() = %q, want empty", got)
	}
}

func TestRedisStore_PutOverwrites(t *testing.T) {
	store, _ := newStoreTest(t)
	ctx := context.Background()

	if err := store.Put(ctx, KindAccess, "alice@x.com", "token-1"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Put(ctx, KindAccess, "alice@x.com", "token-2"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get(ctx, KindAccess, "alice@x.com")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "token-2" {
		t.Errorf("Get() = %q, want %q (last writer wins)", got, "token-2")
	}
}

func TestRedisStore_KindsAreIndependent(t *testing.T) {
	store, _ := newStoreTest(t)
	ctx := context.Background()

	if err := store.Put(ctx, KindAccess, "alice@x.com", "access-token"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Put(ctx, KindRefresh, "alice@x.com", "refresh-token"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	access, _ := store.Get(ctx, KindAccess, "alice@x.com")
	refresh, _ := store.Get(ctx, KindRefresh, "alice@x.com")
	if access != "access-token" || refresh != "refresh-token" {
		t.Errorf("slots interfere: access = %q, refresh = %q", access, refresh)
	}
}

func TestRedisStore_Evict(t *testing.T) {
	store, _ := newStoreTest(t)
	ctx := context.Background()

	if err := store.Put(ctx, KindAccess, "alice@x.com", "access-token"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Put(ctx, KindRefresh, "alice@x.com", "refresh-token"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if err := store.Evict(ctx, "alice@x.com"); err != nil {
		t.Fatalf("Evict() error = %v", err)
	}

	if got, _ := store.Get(ctx, KindAccess, "alice@x.com"); got != "" {
		t.Errorf("access entry survived eviction: %q", got)
	}
	if got, _ := store.Get(ctx, KindRefresh, "alice@x.com"); got != "" {
		t.Errorf("refresh entry survived eviction: %q", got)
	}
}

func TestRedisStore_EvictAbsentIsNoop(t *testing.T) {
	store, _ := newStoreTest(t)

	if err := store.Evict(context.Background(), "nobody@x.com"); err != nil {
		t.Errorf("Evict() of absent subject: error = %v, want nil", err)
	}
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	store, mr := newStoreTest(t)
	ctx := context.Background()

	if err := store.Put(ctx, KindAccess, "alice@x.com", "access-token"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Put(ctx, KindRefresh, "alice@x.com", "refresh-token"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	// Past the access TTL but inside the refresh TTL.
	mr.FastForward(16 * time.Minute)

	if got, _ := store.Get(ctx, KindAccess, "alice@x.com"); got != "" {
		t.Errorf("access entry survived its TTL: %q", got)
	}
	if got, _ := store.Get(ctx, KindRefresh, "alice@x.com"); got != "refresh-token" {
		t.Errorf("refresh entry expired early: %q", got)
	}

	// Past the refresh TTL as well.
	mr.FastForward(24 * time.Hour)

	if got, _ := store.Get(ctx, KindRefresh, "alice@x.com"); got != "" {
		t.Errorf("refresh entry survived its TTL: %q", got)
	}
}
