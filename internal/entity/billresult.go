package entity

import (
	"time"

	"github.com/google/uuid"
)

// EnergyUsage is one period reading inside a BillResult.
type EnergyUsage struct {
	Month       string  `json:"month,omitempty"`
	Consumption float64 `json:"consumption"`
}

// BillResult is one analyzed bill. Immutable once created; results are
// appended to a user's history and never rewritten. The newest result is the
// head of that log, not a separately maintained pointer.
type BillResult struct {
	ID               uuid.UUID     `json:"id"`
	UserID           uuid.UUID     `json:"user_id"`
	TotalConsumption float64       `json:"total_consumption"`
	CarbonKg         float64       `json:"carbon_kg"`
	TotalAmount      float64       `json:"total_amount"`
	EnergyUsage      []EnergyUsage `json:"energy_usage"`
	SavingsTip       string        `json:"savings_tip"`
	BillID           string        `json:"bill_id,omitempty"`
	BillDate         string        `json:"bill_date,omitempty"`
	AnalysisDate     time.Time     `json:"analysis_date"`
	CreatedAt        time.Time     `json:"created_at"`
}
