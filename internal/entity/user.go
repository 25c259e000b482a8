package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/mygreenhome/greenhome-tracker/constants"
)

// AchievementsTracker holds the running counters badge predicates read.
type AchievementsTracker struct {
	BillsAnalyzedCount      int     `json:"bills_analyzed_count"`
	TotalConsumptionReduced float64 `json:"total_consumption_reduced"`
}

// User represents a user for data transfer between layers. Points and badges
// only ever grow through analysis; Version backs the conditional update that
// keeps concurrent analyses from losing each other's deltas.
type User struct {
	ID        uuid.UUID            `json:"id"`
	Email     string               `json:"email"`
	FirstName string               `json:"first_name,omitempty"`
	LastName  string               `json:"last_name,omitempty"`
	Points    int                  `json:"points"`
	Badges    []constants.BadgeKey `json:"badges"`
	Tracker   AchievementsTracker  `json:"achievements_tracker"`
	Version   int                  `json:"-"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// HasBadge reports whether the user already holds the badge. Membership is
// checked before any predicate so a badge is never re-awarded.
func (u *User) HasBadge(key constants.BadgeKey) bool {
	for _, b := range u.Badges {
		if b == key {
			return true
		}
	}
	return false
}

// LeaderboardEntry is one ranked row of the points leaderboard.
type LeaderboardEntry struct {
	Rank       int       `json:"rank"`
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	Points     int       `json:"points"`
	BadgeCount int       `json:"badge_count"`
}
