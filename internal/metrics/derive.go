// Package metrics derives carbon estimates and savings advice from a bill's
// energy consumption. Everything here is pure and total over valid input.
package metrics

import (
	"fmt"
	"math"
)

// EmissionFactorKgPerKWh is the grid emission factor used for the carbon
// estimate (kg CO2 per kWh).
const EmissionFactorKgPerKWh = 0.82

// Consumption is an energy reading in kWh. Values are non-negative by
// construction; build one with NewConsumption at the input boundary.
type Consumption float64

// NewConsumption validates a raw reading. A negative reading is a caller
// defect upstream (extraction only captures unsigned digit runs), so this is
// the single checked boundary.
func NewConsumption(v float64) (Consumption, error) {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid consumption reading: %v", v)
	}
	return Consumption(v), nil
}

func (c Consumption) KWh() float64 { return float64(c) }

// CarbonKg estimates emissions for the billing period, rounded to one decimal.
func CarbonKg(c Consumption) float64 {
	return math.Round(float64(c)*EmissionFactorKgPerKWh*10) / 10
}

// SavingsTip picks the single tip bucket for a reading. Exactly one bucket
// applies to any consumption value.
func SavingsTip(c Consumption) string {
	switch kwh := float64(c); {
	case kwh > 300:
		return "High usage! Consider reducing heavy-load appliances or going solar."
	case kwh > 200:
		return "Shift high-energy tasks to off-peak hours for cost savings."
	case kwh > 100:
		return "Your usage is moderate. Energy-efficient appliances can help."
	default:
		return "Great job! Your energy usage is efficient."
	}
}
