// Package fixtures holds the development data set written by the seeder.
package fixtures

import (
	"fmt"
	"time"

	"github.com/hetulpatel/athletemon/internal/models"
)

// Collection names.
const (
	CollectionUsers               = "users"
	CollectionStats               = "stats"
	CollectionGroups              = "groups"
	CollectionTips                = "tips"
	CollectionPerformanceFeedback = "performance_feedback"
)

const (
	CoachID  = "userID1"
	GroupID  = "groupID1"
	athlete1 = "userID2"
	athlete2 = "userID3"
)

// StatsPath returns the stats subcollection path for a user.
func StatsPath(userID string) string {
	return fmt.Sprintf("%s/%s/%s", CollectionUsers, userID, CollectionStats)
}

// Users returns the coach followed by the two athletes, all in GroupID.
func Users(now time.Time) []models.User {
	return []models.User{
		{ID: CoachID, Email: "user1@example.com", Role: models.RoleCoach, Name: "User One", CreatedAt: now, GroupID: GroupID},
		{ID: athlete1, Email: "user2@example.com", Role: models.RoleAthlete, Name: "User Two", CreatedAt: now, GroupID: GroupID},
		{ID: athlete2, Email: "user3@example.com", Role: models.RoleAthlete, Name: "User Three", CreatedAt: now, GroupID: GroupID},
	}
}

// Group returns the single training group.
func Group(now time.Time) models.Group {
	return models.Group{
		ID:        GroupID,
		CoachID:   CoachID,
		Athletes:  []string{athlete1, athlete2},
		CreatedAt: now,
	}
}

var tipContent = []struct{ title, description string }{
	{"Stay hydrated", "Drink at least 2L of water per day"},
	{"Warm up", "Always stretch before workouts"},
}

// Tips returns the static tips keyed tipID1, tipID2, ...
func Tips() []models.Tip {
	tips := make([]models.Tip, 0, len(tipContent))
	for i, c := range tipContent {
		tips = append(tips, models.Tip{
			ID:          TipID(i),
			Title:       c.title,
			Description: c.description,
		})
	}
	return tips
}

// TipID is the document key for the tip at zero-based index i.
func TipID(i int) string {
	return fmt.Sprintf("tipID%d", i+1)
}

// Feedback returns the single performance note for the first athlete.
func Feedback(now time.Time) models.PerformanceFeedback {
	return models.PerformanceFeedback{
		AthleteID: athlete1,
		Feedback:  "Great performance today!",
		Timestamp: now,
	}
}
