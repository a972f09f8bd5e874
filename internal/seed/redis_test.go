package seed

import (
	"context"
	"reflect"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/hetulpatel/athletemon/internal/docstore"
	"github.com/hetulpatel/athletemon/internal/models"
)

func openTestRedis(t *testing.T) *docstore.RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := docstore.NewRedis(context.Background(), mr.Addr(), "", 0, "docs")
	if err != nil {
		t.Fatalf("open redis: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func redisCount(t *testing.T, store *docstore.RedisStore, collection string) int {
	t.Helper()
	n, err := store.Count(context.Background(), collection)
	if err != nil {
		t.Fatalf("count %s: %v", collection, err)
	}
	return n
}

func TestRun_Redis_TwiceDuplicatesAppends(t *testing.T) {
	ctx := context.Background()
	store := openTestRedis(t)
	runner := newTestRunner(store)

	want := map[string][2]int{
		"users":                {3, 3},
		"groups":               {1, 1},
		"tips":                 {2, 2},
		"users/userID1/stats":  {0, 0},
		"users/userID2/stats":  {2, 4},
		"users/userID3/stats":  {2, 4},
		"performance_feedback": {1, 2},
	}

	for run := 0; run < 2; run++ {
		if _, err := runner.Run(ctx); err != nil {
			t.Fatalf("run %d: %v", run+1, err)
		}
		for collection, counts := range want {
			if n := redisCount(t, store, collection); n != counts[run] {
				t.Errorf("after run %d: expected %d documents in %s, got %d", run+1, counts[run], collection, n)
			}
		}
	}
}

func TestRun_Redis_GroupDocument(t *testing.T) {
	ctx := context.Background()
	store := openTestRedis(t)

	if _, err := newTestRunner(store).Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}

	var group models.Group
	found, err := store.Get(ctx, "groups", "groupID1", &group)
	if err != nil || !found {
		t.Fatalf("get group: found=%v err=%v", found, err)
	}
	if group.CoachID != "userID1" {
		t.Errorf("expected coachId userID1, got %s", group.CoachID)
	}
	if want := []string{"userID2", "userID3"}; !reflect.DeepEqual(group.Athletes, want) {
		t.Errorf("expected athletes %v, got %v", want, group.Athletes)
	}
}
