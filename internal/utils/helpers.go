package utils

import (
	"fmt"
	"time"

	"github.com/mygreenhome/greenhome-tracker/constants"
	"github.com/mygreenhome/greenhome-tracker/db/ent/schema"
	"github.com/mygreenhome/greenhome-tracker/gen/ent"
	greenhomepb "github.com/mygreenhome/greenhome-tracker/gen/proto/greenhome/v1"
	"github.com/mygreenhome/greenhome-tracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToUser(e *ent.User) *entity.User {
	badges := make([]constants.BadgeKey, len(e.Badges))
	for i, b := range e.Badges {
		badges[i] = constants.BadgeKey(b)
	}
	return &entity.User{
		ID:        e.ID,
		Email:     e.Email,
		FirstName: strOrEmpty(e.FirstName),
		LastName:  strOrEmpty(e.LastName),
		Points:    e.Points,
		Badges:    badges,
		Tracker: entity.AchievementsTracker{
			BillsAnalyzedCount:      e.BillsAnalyzedCount,
			TotalConsumptionReduced: e.TotalConsumptionReduced,
		},
		Version:   e.Version,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToBillResult(e *ent.BillResult) *entity.BillResult {
	usage := make([]entity.EnergyUsage, len(e.EnergyUsage))
	for i, u := range e.EnergyUsage {
		usage[i] = entity.EnergyUsage{Month: u.Month, Consumption: u.Consumption}
	}
	return &entity.BillResult{
		ID:               e.ID,
		UserID:           e.UserID,
		TotalConsumption: e.TotalConsumption,
		CarbonKg:         e.CarbonKg,
		TotalAmount:      e.TotalAmount,
		EnergyUsage:      usage,
		SavingsTip:       e.SavingsTip,
		BillID:           strOrEmpty(e.BillID),
		BillDate:         strOrEmpty(e.BillDate),
		AnalysisDate:     e.AnalysisDate,
		CreatedAt:        e.CreatedAt,
	}
}

func ToEnergyReadings(usage []entity.EnergyUsage) []schema.EnergyReading {
	out := make([]schema.EnergyReading, len(usage))
	for i, u := range usage {
		out[i] = schema.EnergyReading{Month: u.Month, Consumption: u.Consumption}
	}
	return out
}

func ToAnalysisJob(e *ent.AnalysisJob) *entity.AnalysisJob {
	return &entity.AnalysisJob{
		ID:            e.ID,
		UserID:        e.UserID,
		ResultID:      e.ResultID,
		Filename:      e.Filename,
		Status:        e.Status,
		OCRText:       e.OcrText,
		ExtractedJSON: e.ExtractedJSON,
		ErrorMessage:  e.ErrorMessage,
		StartedAt:     e.StartedAt,
		FinishedAt:    e.FinishedAt,
	}
}

func ToPBUser(u *entity.User) *greenhomepb.User {
	badges := make([]string, len(u.Badges))
	for i, b := range u.Badges {
		badges[i] = string(b)
	}
	return &greenhomepb.User{
		Id:                      u.ID.String(),
		Email:                   u.Email,
		FirstName:               u.FirstName,
		LastName:                u.LastName,
		Points:                  int32(u.Points),
		Badges:                  badges,
		BillsAnalyzedCount:      int32(u.Tracker.BillsAnalyzedCount),
		TotalConsumptionReduced: u.Tracker.TotalConsumptionReduced,
		CreatedAt:               u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:               u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBBillResult(r *entity.BillResult) *greenhomepb.BillResult {
	usage := make([]*greenhomepb.EnergyUsage, len(r.EnergyUsage))
	for i, u := range r.EnergyUsage {
		usage[i] = &greenhomepb.EnergyUsage{Month: u.Month, Consumption: u.Consumption}
	}
	return &greenhomepb.BillResult{
		Id:               r.ID.String(),
		UserId:           r.UserID.String(),
		TotalConsumption: r.TotalConsumption,
		CarbonKg:         r.CarbonKg,
		TotalAmount:      fmt.Sprintf("%.2f", r.TotalAmount),
		EnergyUsage:      usage,
		SavingsTip:       r.SavingsTip,
		BillId:           r.BillID,
		BillDate:         r.BillDate,
		AnalysisDate:     r.AnalysisDate.UTC().Format(time.RFC3339),
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
