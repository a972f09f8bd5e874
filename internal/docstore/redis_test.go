package docstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func openTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewRedis(context.Background(), mr.Addr(), "", 0, "docs")
	if err != nil {
		t.Fatalf("open redis: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedisStore_Keys(t *testing.T) {
	s := &RedisStore{prefix: "docs"}
	if got := s.docKey("tips", "tipID1"); got != "docs:tips/tipID1" {
		t.Errorf("unexpected doc key %s", got)
	}
	if got := s.indexKey("users/userID2/stats"); got != "docs:users/userID2/stats" {
		t.Errorf("unexpected index key %s", got)
	}
	if got := s.collectionsKey(); got != "docs:__collections__" {
		t.Errorf("unexpected collections key %s", got)
	}
}

func TestNewRedis_RequiresAddr(t *testing.T) {
	if _, err := NewRedis(t.Context(), "", "", 0, ""); err == nil {
		t.Fatal("expected error for empty addr, got nil")
	}
}

func TestNewRedis_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	addr := mr.Addr()
	mr.Close()

	if _, err := NewRedis(context.Background(), addr, "", 0, ""); err == nil {
		t.Fatal("expected ping error for a closed server, got nil")
	}
}

func TestRedisStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store, mr := openTestRedis(t)

	if err := store.Set(ctx, "tips", "tipID1", tipDoc{Title: "Warm up"}); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := store.Set(ctx, "tips", "tipID1", tipDoc{Title: "Stay hydrated"}); err != nil {
		t.Fatalf("second set: %v", err)
	}

	n, err := store.Count(ctx, "tips")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 tip after overwrite, got %d", n)
	}

	var got tipDoc
	found, err := store.Get(ctx, "tips", "tipID1", &got)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if got.Title != "Stay hydrated" {
		t.Errorf("expected overwritten title, got %q", got.Title)
	}
	if !mr.Exists("docs:tips/tipID1") {
		t.Error("expected document key docs:tips/tipID1 to exist")
	}
}

func TestRedisStore_AddAppends(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestRedis(t)

	first, err := store.Add(ctx, "users/userID2/stats", map[string]any{"hr": 80})
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	second, err := store.Add(ctx, "users/userID2/stats", map[string]any{"hr": 80})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct generated ids, got %s twice", first)
	}

	n, err := store.Count(ctx, "users/userID2/stats")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 stats, got %d", n)
	}
}

func TestRedisStore_Collections(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestRedis(t)

	_ = store.Set(ctx, "tips", "tipID1", tipDoc{Title: "a"})
	_ = store.Set(ctx, "tips", "tipID2", tipDoc{Title: "b"})
	_, _ = store.Add(ctx, "performance_feedback", map[string]any{"feedback": "ok"})

	cols, err := store.Collections(ctx)
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	if len(cols) != 2 {
		t.Fatalf("expected 2 collections, got %d", len(cols))
	}
	if cols[0].Collection != "performance_feedback" || cols[0].Count != 1 {
		t.Errorf("unexpected first collection %+v", cols[0])
	}
	if cols[1].Collection != "tips" || cols[1].Count != 2 {
		t.Errorf("unexpected second collection %+v", cols[1])
	}
}

func TestRedisStore_GetMissing(t *testing.T) {
	store, _ := openTestRedis(t)

	var got tipDoc
	found, err := store.Get(context.Background(), "tips", "nope", &got)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found {
		t.Error("expected missing document to report not found")
	}
}
