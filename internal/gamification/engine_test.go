package gamification

import (
	"testing"

	"github.com/mygreenhome/greenhome-tracker/constants"
	"github.com/mygreenhome/greenhome-tracker/internal/entity"
)

func newUser() entity.User {
	points, badges, tracker := InitialState()
	return entity.User{
		Points:  points,
		Badges:  badges,
		Tracker: tracker,
	}
}

// apply folds an Outcome back onto the user the way the persistence layer
// does, so sequences of analyses can be simulated in-memory.
func apply(u entity.User, out Outcome) entity.User {
	u.Points += out.EarnedPoints
	u.Badges = append(u.Badges, out.NewBadges...)
	u.Tracker.BillsAnalyzedCount++
	u.Tracker.TotalConsumptionReduced += out.ConsumptionReduced
	return u
}

func TestInitialState(t *testing.T) {
	points, badges, tracker := InitialState()
	if points != 50 {
		t.Errorf("signup points = %d, want 50", points)
	}
	if len(badges) != 1 || badges[0] != constants.BadgeWelcomeUser {
		t.Errorf("signup badges = %v, want [%s]", badges, constants.BadgeWelcomeUser)
	}
	if tracker.BillsAnalyzedCount != 0 || tracker.TotalConsumptionReduced != 0 {
		t.Errorf("signup tracker = %+v, want zero", tracker)
	}
}

func TestEvaluateFirstAnalysis(t *testing.T) {
	out := Evaluate(newUser(), 250, nil)

	// 100 first-analysis points + 50 for the eco-newbie badge.
	if out.EarnedPoints != 150 {
		t.Errorf("EarnedPoints = %d, want 150", out.EarnedPoints)
	}
	if len(out.NewBadges) != 1 || out.NewBadges[0] != constants.BadgeEcoNewbie {
		t.Errorf("NewBadges = %v, want [%s]", out.NewBadges, constants.BadgeEcoNewbie)
	}
	if out.ConsumptionReduced != 0 {
		t.Errorf("ConsumptionReduced = %v, want 0", out.ConsumptionReduced)
	}
}

func TestEvaluateSubsequentAnalysisBase(t *testing.T) {
	u := apply(newUser(), Evaluate(newUser(), 250, nil))

	prev := 250.0
	out := Evaluate(u, 250, &prev) // no reduction, no new badges

	if out.EarnedPoints != 20 {
		t.Errorf("EarnedPoints = %d, want 20", out.EarnedPoints)
	}
	if len(out.NewBadges) != 0 {
		t.Errorf("NewBadges = %v, want none", out.NewBadges)
	}
}

func TestEvaluateReductionPoints(t *testing.T) {
	u := apply(newUser(), Evaluate(newUser(), 250, nil))

	prev := 250.0
	out := Evaluate(u, 244.3, &prev)

	// 20 base + floor(5.7) = 25; reduction below 10 kWh earns no bronze badge.
	if out.EarnedPoints != 25 {
		t.Errorf("EarnedPoints = %d, want 25", out.EarnedPoints)
	}
	if out.ConsumptionReduced != 5.7 {
		t.Errorf("ConsumptionReduced = %v, want 5.7", out.ConsumptionReduced)
	}
	if len(out.NewBadges) != 0 {
		t.Errorf("NewBadges = %v, want none", out.NewBadges)
	}
}

func TestEvaluateIncreaseNeverDeductsPoints(t *testing.T) {
	u := apply(newUser(), Evaluate(newUser(), 100, nil))

	prev := 100.0
	out := Evaluate(u, 400, &prev)

	if out.EarnedPoints != 20 {
		t.Errorf("EarnedPoints = %d, want 20", out.EarnedPoints)
	}
	if out.ConsumptionReduced != 0 {
		t.Errorf("ConsumptionReduced = %v, want 0", out.ConsumptionReduced)
	}
}

func TestEvaluateEnergySaverBronze(t *testing.T) {
	u := apply(newUser(), Evaluate(newUser(), 260, nil))

	prev := 260.0
	out := Evaluate(u, 250, &prev) // exactly 10 kWh reduction

	// 20 base + 10 reduction + 75 badge.
	if out.EarnedPoints != 105 {
		t.Errorf("EarnedPoints = %d, want 105", out.EarnedPoints)
	}
	if len(out.NewBadges) != 1 || out.NewBadges[0] != constants.BadgeEnergySaverBronze {
		t.Errorf("NewBadges = %v, want [%s]", out.NewBadges, constants.BadgeEnergySaverBronze)
	}
}

func TestEvaluateGreenGuruAtThreeBills(t *testing.T) {
	u := newUser()
	readings := []float64{300, 290, 280}

	var prev *float64
	var lastBadges []constants.BadgeKey
	for _, kwh := range readings {
		out := Evaluate(u, kwh, prev)
		u = apply(u, out)
		lastBadges = out.NewBadges
		v := kwh
		prev = &v
	}

	if u.Tracker.BillsAnalyzedCount != 3 {
		t.Fatalf("BillsAnalyzedCount = %d, want 3", u.Tracker.BillsAnalyzedCount)
	}
	if len(lastBadges) != 1 || lastBadges[0] != constants.BadgeGreenGuruLevel1 {
		t.Errorf("third analysis badges = %v, want [%s]", lastBadges, constants.BadgeGreenGuruLevel1)
	}
}

func TestEvaluateCarbonCrusader(t *testing.T) {
	u := apply(newUser(), Evaluate(newUser(), 500, nil))

	// One huge reduction crossing 50 kg CO2 (~60.97 kWh at 0.82 kg/kWh).
	prev := 500.0
	out := Evaluate(u, 430, &prev)

	if !hasKey(out.NewBadges, constants.BadgeCarbonCrusaderNovice) {
		t.Errorf("NewBadges = %v, want carbon crusader included", out.NewBadges)
	}
	if !hasKey(out.NewBadges, constants.BadgeEnergySaverBronze) {
		t.Errorf("NewBadges = %v, want energy saver bronze included", out.NewBadges)
	}
}

func hasKey(keys []constants.BadgeKey, want constants.BadgeKey) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}

func TestEvaluateNeverReAwardsBadges(t *testing.T) {
	u := newUser()
	readings := []float64{400, 380, 360, 340, 250, 200, 150}

	var prev *float64
	awarded := map[constants.BadgeKey]int{}
	for _, kwh := range readings {
		out := Evaluate(u, kwh, prev)
		for _, b := range out.NewBadges {
			awarded[b]++
		}
		u = apply(u, out)
		v := kwh
		prev = &v
	}

	for key, n := range awarded {
		if n > 1 {
			t.Errorf("badge %s awarded %d times", key, n)
		}
	}
}

func TestEvaluatePointsMonotonic(t *testing.T) {
	u := newUser()
	readings := []float64{10, 500, 0, 1000, 999}

	var prev *float64
	lastPoints := u.Points
	for _, kwh := range readings {
		out := Evaluate(u, kwh, prev)
		if out.EarnedPoints < 0 {
			t.Fatalf("EarnedPoints = %d for reading %v, want >= 0", out.EarnedPoints, kwh)
		}
		u = apply(u, out)
		if u.Points < lastPoints {
			t.Fatalf("points decreased from %d to %d", lastPoints, u.Points)
		}
		lastPoints = u.Points
		v := kwh
		prev = &v
	}
}
