// Package trends compares a user's two most recent bill analyses and derives
// advisory suggestions from fixed thresholds. Pure functions over history
// snapshots; persistence and rendering live elsewhere.
package trends

import (
	"fmt"
	"math"

	"github.com/mygreenhome/greenhome-tracker/internal/entity"
)

// Comparison is the month-over-month view between the two most recent results.
// PercentNotComputable is set instead of a percentage when the previous
// reading was exactly zero; callers render it as "N/A", never as infinity.
type Comparison struct {
	CurrentKWh           float64
	PreviousKWh          float64
	DeltaKWh             float64
	PercentChange        float64
	PercentNotComputable bool
	Message              string
	Summary              string
	Advice               []string
}

// Compare builds the comparison between the newest result and the one before
// it. Both arguments are required; callers with fewer than two results have
// no comparison to make.
func Compare(current, previous entity.BillResult) Comparison {
	c := Comparison{
		CurrentKWh:  current.TotalConsumption,
		PreviousKWh: previous.TotalConsumption,
		DeltaKWh:    current.TotalConsumption - previous.TotalConsumption,
	}

	if previous.TotalConsumption > 0 {
		c.PercentChange = round1(c.DeltaKWh / previous.TotalConsumption * 100)
	} else {
		c.PercentNotComputable = true
	}

	switch {
	case c.PercentNotComputable:
		c.Message = "Not enough prior usage to compare this month against."
		c.Summary = "Compared to last month, your usage changed by N/A."
	case c.PercentChange > 15:
		c.Message = fmt.Sprintf("Your energy usage increased by %.1f%%. Consider checking if any new or inefficient appliance is being used more often this month.", c.PercentChange)
		c.Summary = fmt.Sprintf("Compared to last month, your usage changed by %.1f%%.", c.PercentChange)
	case c.PercentChange < -10:
		c.Message = fmt.Sprintf("Great job! You've reduced your consumption by %.1f%%. Keep up the energy-saving habits!", math.Abs(c.PercentChange))
		c.Summary = fmt.Sprintf("Compared to last month, your usage changed by %.1f%%.", c.PercentChange)
	default:
		c.Message = "Your energy usage stayed fairly consistent compared to last month."
		c.Summary = fmt.Sprintf("Compared to last month, your usage changed by %.1f%%.", c.PercentChange)
	}

	c.Advice = usageAdvice(current.TotalConsumption)
	return c
}

// usageAdvice adds the absolute-level notes that do not need a previous month.
func usageAdvice(currentKWh float64) []string {
	var advice []string
	if currentKWh > 300 {
		advice = append(advice, "Your consumption is quite high. Consider reviewing major power consumers like AC, geyser, and refrigerator for efficiency.")
	} else if currentKWh < 150 {
		advice = append(advice, "Your consumption is relatively low - keep maintaining good energy habits and monitoring regularly!")
	}
	return advice
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
