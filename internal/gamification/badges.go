// Package gamification turns new bill analyses into points and badges. The
// rules are value tables evaluated against an immutable user snapshot; the
// engine performs no I/O and holds no state of its own.
package gamification

import (
	"github.com/mygreenhome/greenhome-tracker/constants"
	"github.com/mygreenhome/greenhome-tracker/internal/entity"
	"github.com/mygreenhome/greenhome-tracker/internal/metrics"
)

// Badge is one catalog entry. Criteria sees the user snapshot as it stands
// after the current analysis has been counted, plus the current and previous
// consumption readings (previous is nil on a first analysis).
type Badge struct {
	Key         constants.BadgeKey
	Name        string
	Description string
	Points      int
	AtSignup    bool
	Criteria    func(u entity.User, current float64, previous *float64) bool
}

// Catalog is the process-wide badge table, evaluated in this order. Read-only
// after startup; award state lives on the user, never here.
var Catalog = []Badge{
	{
		Key:         constants.BadgeWelcomeUser,
		Name:        "Welcome User",
		Description: "Joined the MyGreenHome initiative!",
		Points:      0,
		AtSignup:    true,
	},
	{
		Key:         constants.BadgeEcoNewbie,
		Name:        "Eco Newbie",
		Description: "Analyzed your very first electricity bill!",
		Points:      50,
		Criteria: func(u entity.User, _ float64, _ *float64) bool {
			return u.Tracker.BillsAnalyzedCount == 1
		},
	},
	{
		Key:         constants.BadgeEnergySaverBronze,
		Name:        "Energy Saver (Bronze)",
		Description: "Reduced consumption by at least 10 kWh in a single month.",
		Points:      75,
		Criteria: func(_ entity.User, current float64, previous *float64) bool {
			return previous != nil && *previous-current >= 10
		},
	},
	{
		Key:         constants.BadgeGreenGuruLevel1,
		Name:        "Green Guru (Level 1)",
		Description: "Analyzed 3 electricity bills.",
		Points:      100,
		Criteria: func(u entity.User, _ float64, _ *float64) bool {
			return u.Tracker.BillsAnalyzedCount >= 3
		},
	},
	{
		Key:         constants.BadgeCarbonCrusaderNovice,
		Name:        "Carbon Crusader (Novice)",
		Description: "Achieved a total reduction of 50 kg CO2 emissions.",
		Points:      120,
		Criteria: func(u entity.User, _ float64, _ *float64) bool {
			// 50 kg CO2 expressed in kWh at the grid emission factor.
			return u.Tracker.TotalConsumptionReduced >= 50/metrics.EmissionFactorKgPerKWh
		},
	},
}

// Lookup returns the catalog entry for a key.
func Lookup(key constants.BadgeKey) (Badge, bool) {
	for _, b := range Catalog {
		if b.Key == key {
			return b, true
		}
	}
	return Badge{}, false
}
