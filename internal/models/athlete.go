package models

import "time"

// Role separates coaches from the athletes they monitor.
type Role string

const (
	RoleCoach   Role = "coach"
	RoleAthlete Role = "athlete"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleCoach || r == RoleAthlete
}

// User is stored at users/{ID}.
type User struct {
	ID        string    `firestore:"id" json:"id"`
	Email     string    `firestore:"email" json:"email"`
	Role      Role      `firestore:"role" json:"role"`
	Name      string    `firestore:"name" json:"name"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	GroupID   string    `firestore:"groupId" json:"groupId"`
}

// IsAthlete reports whether the user carries vital-sign stats.
func (u User) IsAthlete() bool {
	return u.Role == RoleAthlete
}

// Stat is one vital-sign reading stored under users/{athlete}/stats.
type Stat struct {
	HR          int       `firestore:"hr" json:"hr"`
	Temperature float64   `firestore:"temperature" json:"temperature"`
	Time        time.Time `firestore:"time" json:"time"`
}

// Group ties a coach to the athletes they train. ID is the document key only.
type Group struct {
	ID        string    `firestore:"-" json:"-"`
	CoachID   string    `firestore:"coachId" json:"coachId"`
	Athletes  []string  `firestore:"athletes" json:"athletes"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

// Tip is static advice shown to athletes. ID is the document key only.
type Tip struct {
	ID          string `firestore:"-" json:"-"`
	Title       string `firestore:"title" json:"title"`
	Description string `firestore:"description" json:"description"`
}

// PerformanceFeedback is a coach's note on an athlete.
type PerformanceFeedback struct {
	AthleteID string    `firestore:"athleteId" json:"athleteId"`
	Feedback  string    `firestore:"feedback" json:"feedback"`
	Timestamp time.Time `firestore:"timestamp" json:"timestamp"`
}
