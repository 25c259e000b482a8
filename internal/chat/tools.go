package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/mygreenhome/greenhome-tracker/internal/common"
	"github.com/mygreenhome/greenhome-tracker/internal/entity"
	"github.com/mygreenhome/greenhome-tracker/internal/metrics"
	"github.com/mygreenhome/greenhome-tracker/internal/repository"
	"github.com/mygreenhome/greenhome-tracker/internal/trends"
)

const (
	ToolUsageSummary = "get_usage_summary"
	ToolSavingTips   = "get_saving_tips"
	ToolTrendReport  = "get_trend_report"
)

// toolbox answers the model's data requests from the user's stored history.
// Every tool returns a compact JSON document the model can quote from.
type toolbox struct {
	users   repository.UserRepository
	results repository.BillResultRepository
	rng     *rand.Rand
}

func (t *toolbox) names() []string {
	return []string{ToolUsageSummary, ToolSavingTips, ToolTrendReport}
}

func (t *toolbox) run(ctx context.Context, name string, userID uuid.UUID) (string, error) {
	switch name {
	case ToolUsageSummary:
		return t.usageSummary(ctx, userID)
	case ToolSavingTips:
		return t.savingTips(ctx, userID)
	case ToolTrendReport:
		return t.trendReport(ctx, userID)
	default:
		return "", fmt.Errorf("unknown tool %q", name)
	}
}

func (t *toolbox) usageSummary(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := t.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	latest, err := t.results.Latest(ctx, userID)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return "", err
	}
	doc := map[string]any{
		"bills_analyzed":            user.Tracker.BillsAnalyzedCount,
		"points":                    user.Points,
		"badges":                    user.Badges,
		"total_consumption_reduced": user.Tracker.TotalConsumptionReduced,
		"has_analyses":              latest != nil,
	}
	if latest != nil {
		doc["latest_consumption_kwh"] = latest.TotalConsumption
		doc["latest_carbon_kg"] = latest.CarbonKg
		doc["latest_amount"] = fmt.Sprintf("%.2f", latest.TotalAmount)
		doc["latest_bill_date"] = latest.BillDate
	}
	return marshalDoc(doc)
}

func (t *toolbox) savingTips(ctx context.Context, userID uuid.UUID) (string, error) {
	latest, err := t.results.Latest(ctx, userID)
	if errors.Is(err, common.ErrNotFound) {
		return marshalDoc(map[string]any{"tips": []string{}, "note": "no bills analyzed yet"})
	}
	if err != nil {
		return "", err
	}
	c, err := metrics.NewConsumption(latest.TotalConsumption)
	if err != nil {
		return "", err
	}
	tips := metrics.GenerateTips(c, latest.TotalAmount, t.rng)
	return marshalDoc(map[string]any{"tips": tips})
}

func (t *toolbox) trendReport(ctx context.Context, userID uuid.UUID) (string, error) {
	history, err := t.results.ListByUser(ctx, userID, 12)
	if err != nil {
		return "", err
	}
	if len(history) == 0 {
		return marshalDoc(map[string]any{"comparable": false, "note": "no bills analyzed yet"})
	}
	if len(history) < 2 {
		return marshalDoc(map[string]any{
			"comparable":      false,
			"consumption_kwh": history[0].TotalConsumption,
			"note":            "only one bill on record",
		})
	}

	cmp := trends.Compare(*history[0], *history[1])
	percent := "N/A"
	if !cmp.PercentNotComputable {
		percent = fmt.Sprintf("%.1f", cmp.PercentChange)
	}

	deref := make([]entity.BillResult, 0, len(history))
	for _, r := range history {
		deref = append(deref, *r)
	}
	suggestions := trends.SmartSuggestions(
		history[0].TotalConsumption,
		&history[1].TotalConsumption,
		history[0].TotalAmount,
		deref,
	)
	lines := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		lines = append(lines, s.Message+" "+s.Action)
	}

	return marshalDoc(map[string]any{
		"comparable":     true,
		"delta_kwh":      cmp.DeltaKWh,
		"percent_change": percent,
		"message":        cmp.Message,
		"summary":        cmp.Summary,
		"advice":         cmp.Advice,
		"suggestions":    lines,
	})
}

func marshalDoc(doc map[string]any) (string, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
