package trends

import (
	"fmt"
	"math"

	"github.com/mygreenhome/greenhome-tracker/internal/entity"
)

// Suggestion is one advisory record: a stable type key for clients, the
// user-facing message, and a concrete action.
type Suggestion struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// spikeFactor flags a reading more than 20% above the recent average.
const spikeFactor = 1.2

// SmartSuggestions derives threshold-driven advice for the latest analysis.
// previous is nil when this is the user's first bill; history is the result
// log newest-first (the current result at its head) and only feeds the
// trailing-average rule, which needs at least three entries.
func SmartSuggestions(current float64, previous *float64, billAmount float64, history []entity.BillResult) []Suggestion {
	var suggestions []Suggestion

	if previous != nil {
		change := current - *previous
		if change > 0 {
			suggestions = append(suggestions, Suggestion{
				Type:    "consumption-increase",
				Message: fmt.Sprintf("Your consumption increased by %.1f kWh compared to last month. Review recent changes in appliance use.", change),
				Action:  "Check appliance usage, look for leaks (AC/Water heater).",
			})
		} else if change < 0 {
			suggestions = append(suggestions, Suggestion{
				Type:    "consumption-decrease",
				Message: fmt.Sprintf("Great job! You reduced consumption by %.1f kWh. Keep it up!", math.Abs(change)),
				Action:  "Continue energy-saving habits.",
			})
		}
	}

	if current > 300 {
		suggestions = append(suggestions, Suggestion{
			Type:    "high-usage",
			Message: "Your energy consumption is quite high. Consider an energy audit or checking insulation.",
			Action:  "Professional audit, seal air leaks, upgrade insulation.",
		})
	} else if current > 150 {
		suggestions = append(suggestions, Suggestion{
			Type:    "moderate-usage",
			Message: "Moderate consumption. Focusing on efficiency can lead to significant savings.",
			Action:  "Switch to LED, unplug idle electronics, optimize AC/heating.",
		})
	}

	// High bill despite low usage points at the tariff, not the appliances.
	if billAmount > 5000 && current < 100 {
		suggestions = append(suggestions, Suggestion{
			Type:    "tariff-check",
			Message: "Your bill seems high for your usage. Check your electricity tariff or provider rates.",
			Action:  "Contact utility provider, compare tariff plans.",
		})
	}

	if len(history) >= 3 {
		var sum float64
		for _, r := range history[:3] {
			sum += r.TotalConsumption
		}
		avg := sum / 3
		if current > avg*spikeFactor {
			suggestions = append(suggestions, Suggestion{
				Type:    "unusual-spike",
				Message: "Your current consumption is higher than your recent average. Investigate unusual appliance use.",
				Action:  "Check for new appliances, extended usage, or faulty devices.",
			})
		}
	}

	return suggestions
}
