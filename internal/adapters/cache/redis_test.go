package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cognivus/cognivus/internal/ports"
)

func newRedisStore(t *testing.T) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSessionStore(client), srv
}

func TestRedisSessionStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newRedisStore(t)
	ctx := context.Background()

	data := ports.SessionData{
		AccountID: uuid.New(),
		Email:     "ada@example.com",
		FullName:  "Ada Lovelace",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		ExpiresAt: time.Now().UTC().Add(time.Hour).Truncate(time.Second),
	}
	if err := store.Put(ctx, "tok-1", data, time.Hour); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.Get(ctx, "tok-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil || got.AccountID != data.AccountID || got.FullName != data.FullName {
		t.Fatalf("unexpected session data: %+v", got)
	}

	if err := store.Delete(ctx, "tok-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got, err := store.Get(ctx, "tok-1"); err != nil || got != nil {
		t.Fatalf("expected nil after delete, got %+v err %v", got, err)
	}
}

func TestRedisSessionStoreUnknownToken(t *testing.T) {
	t.Parallel()

	store, _ := newRedisStore(t)
	got, err := store.Get(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown token, got %+v", got)
	}
}

func TestRedisSessionStoreHonorsTTL(t *testing.T) {
	t.Parallel()

	store, srv := newRedisStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "tok-ttl", ports.SessionData{Email: "a@b.com"}, time.Minute); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	srv.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "tok-ttl")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected expired entry to be gone, got %+v", got)
	}
}
