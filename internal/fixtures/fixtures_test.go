package fixtures

import (
	"reflect"
	"testing"
	"time"

	"github.com/hetulpatel/athletemon/internal/models"
)

func TestUsers_Roles(t *testing.T) {
	now := time.Now()
	users := Users(now)
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}

	athletes := 0
	for _, u := range users {
		if !u.Role.Valid() {
			t.Errorf("user %s has invalid role %q", u.ID, u.Role)
		}
		if u.GroupID != GroupID {
			t.Errorf("user %s in group %s, want %s", u.ID, u.GroupID, GroupID)
		}
		if !u.CreatedAt.Equal(now) {
			t.Errorf("user %s createdAt not stamped", u.ID)
		}
		if u.IsAthlete() {
			athletes++
		}
	}
	if athletes != 2 {
		t.Errorf("expected 2 athletes, got %d", athletes)
	}
}

func TestGroup_CoachResolves(t *testing.T) {
	now := time.Now()
	group := Group(now)
	if group.ID != "groupID1" {
		t.Errorf("expected groupID1, got %s", group.ID)
	}
	if group.CoachID != "userID1" {
		t.Errorf("expected coach userID1, got %s", group.CoachID)
	}
	if want := []string{"userID2", "userID3"}; !reflect.DeepEqual(group.Athletes, want) {
		t.Errorf("expected athletes %v, got %v", want, group.Athletes)
	}

	byID := map[string]models.User{}
	for _, u := range Users(now) {
		byID[u.ID] = u
	}
	if byID[group.CoachID].Role != models.RoleCoach {
		t.Errorf("group coach %s is not a coach", group.CoachID)
	}
	for _, id := range group.Athletes {
		if !byID[id].IsAthlete() {
			t.Errorf("group member %s is not an athlete", id)
		}
	}
}

func TestTips_IndexedIDs(t *testing.T) {
	tips := Tips()
	if len(tips) != 2 {
		t.Fatalf("expected 2 tips, got %d", len(tips))
	}
	if tips[0].ID != "tipID1" || tips[1].ID != "tipID2" {
		t.Errorf("unexpected tip ids %s, %s", tips[0].ID, tips[1].ID)
	}
	if tips[0].Title != "Stay hydrated" || tips[1].Title != "Warm up" {
		t.Errorf("unexpected tip titles %q, %q", tips[0].Title, tips[1].Title)
	}
}

func TestFeedback_ReferencesAthlete(t *testing.T) {
	fb := Feedback(time.Now())
	if fb.AthleteID != "userID2" {
		t.Errorf("expected feedback for userID2, got %s", fb.AthleteID)
	}
}

func TestStatsPath(t *testing.T) {
	if got := StatsPath("userID2"); got != "users/userID2/stats" {
		t.Errorf("unexpected stats path %s", got)
	}
}
