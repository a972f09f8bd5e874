package seed

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/hetulpatel/athletemon/internal/credentials"
	"github.com/hetulpatel/athletemon/internal/docstore"
	"github.com/hetulpatel/athletemon/internal/models"
)

func openEmulatorStore(t *testing.T) *docstore.FirestoreStore {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	sa := &credentials.ServiceAccount{ProjectID: fmt.Sprintf("seed-test-%d", time.Now().UnixNano())}
	store, err := docstore.NewFirestore(context.Background(), "", sa)
	if err != nil {
		t.Fatalf("open firestore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRun_Firestore_TwiceDuplicatesAppends(t *testing.T) {
	ctx := context.Background()
	store := openEmulatorStore(t)
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
			n, err := store.Count(ctx, collection)
			if err != nil {
				t.Fatalf("count %s: %v", collection, err)
			}
			if n != counts[run] {
				t.Errorf("after run %d: expected %d documents in %s, got %d", run+1, counts[run], collection, n)
			}
		}
	}
}

func TestRun_Firestore_GroupDocument(t *testing.T) {
	ctx := context.Background()
	store := openEmulatorStore(t)

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

	var user models.User
	found, err = store.Get(ctx, "users", "userID1", &user)
	if err != nil || !found {
		t.Fatalf("get user: found=%v err=%v", found, err)
	}
	if user.Role != models.RoleCoach {
		t.Errorf("expected userID1 to be a coach, got %s", user.Role)
	}
}
