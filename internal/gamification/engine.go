package gamification

import (
	"math"

	"github.com/mygreenhome/greenhome-tracker/constants"
	"github.com/mygreenhome/greenhome-tracker/internal/entity"
)

const (
	signupBonusPoints   = 50
	firstAnalysisPoints = 100
	analysisPoints      = 20
)

// Outcome is what one analysis earns. The caller persists these deltas
// together with the new BillResult in a single conditional update; partially
// applied outcomes are meaningless.
type Outcome struct {
	EarnedPoints       int
	NewBadges          []constants.BadgeKey
	ConsumptionReduced float64
}

// Evaluate computes the gamification outcome for a new analysis. user is the
// authoritative snapshot from before this analysis; current/previous are the
// new and prior consumption readings (previous nil when no history exists).
//
// All rules are evaluated independently and summed: base analysis points,
// one point per whole kWh reduced, then badge criteria in catalog order.
// Badges already held are never re-awarded, and signup-time badges are not
// re-evaluated here.
func Evaluate(user entity.User, current float64, previous *float64) Outcome {
	// Work on a local snapshot with this analysis counted, so criteria like
	// "first bill" and "3 bills" see the post-analysis state.
	snapshot := user
	snapshot.Tracker.BillsAnalyzedCount++

	var out Outcome

	if snapshot.Tracker.BillsAnalyzedCount == 1 {
		out.EarnedPoints += firstAnalysisPoints
	} else {
		out.EarnedPoints += analysisPoints
	}

	if previous != nil {
		if reduction := *previous - current; reduction > 0 {
			out.EarnedPoints += int(math.Floor(reduction))
			out.ConsumptionReduced = reduction
			snapshot.Tracker.TotalConsumptionReduced += reduction
		}
	}

	for _, badge := range Catalog {
		if badge.AtSignup {
			continue
		}
		if snapshot.HasBadge(badge.Key) {
			continue
		}
		if badge.Criteria(snapshot, current, previous) {
			out.NewBadges = append(out.NewBadges, badge.Key)
			out.EarnedPoints += badge.Points
		}
	}

	return out
}

// InitialState is the gamification state a brand-new account starts with:
// the signup bonus and the welcome badge. Applied once, at creation.
func InitialState() (points int, badges []constants.BadgeKey, tracker entity.AchievementsTracker) {
	return signupBonusPoints, []constants.BadgeKey{constants.BadgeWelcomeUser}, entity.AchievementsTracker{}
}
