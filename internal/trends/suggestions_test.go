package trends

import (
	"testing"

	"github.com/mygreenhome/greenhome-tracker/internal/entity"
)

func types(suggestions []Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.Type)
	}
	return out
}

func hasType(suggestions []Suggestion, want string) bool {
	for _, s := range suggestions {
		if s.Type == want {
			return true
		}
	}
	return false
}

func TestSmartSuggestionsFirstBill(t *testing.T) {
	got := SmartSuggestions(120, nil, 900, []entity.BillResult{result(120)})
	if len(got) != 0 {
		t.Fatalf("suggestions = %v, want none for a modest first bill", types(got))
	}
}

func TestSmartSuggestionsChangeDirection(t *testing.T) {
	prev := 200.0

	up := SmartSuggestions(260, &prev, 1800, nil)
	if !hasType(up, "consumption-increase") {
		t.Errorf("suggestions = %v, want consumption-increase", types(up))
	}
	if hasType(up, "consumption-decrease") {
		t.Errorf("suggestions = %v, decrease must not fire on an increase", types(up))
	}

	down := SmartSuggestions(140, &prev, 1000, nil)
	if !hasType(down, "consumption-decrease") {
		t.Errorf("suggestions = %v, want consumption-decrease", types(down))
	}

	flat := SmartSuggestions(200, &prev, 1400, nil)
	if hasType(flat, "consumption-increase") || hasType(flat, "consumption-decrease") {
		t.Errorf("suggestions = %v, no change rule should fire when usage is flat", types(flat))
	}
}

func TestSmartSuggestionsUsageLevels(t *testing.T) {
	if got := SmartSuggestions(301, nil, 2000, nil); !hasType(got, "high-usage") {
		t.Errorf("suggestions = %v, want high-usage above 300 kWh", types(got))
	}
	if got := SmartSuggestions(151, nil, 1200, nil); !hasType(got, "moderate-usage") {
		t.Errorf("suggestions = %v, want moderate-usage above 150 kWh", types(got))
	}
	if got := SmartSuggestions(150, nil, 1200, nil); hasType(got, "moderate-usage") || hasType(got, "high-usage") {
		t.Errorf("suggestions = %v, want neither usage rule at 150 kWh", types(got))
	}
}

func TestSmartSuggestionsTariffCheck(t *testing.T) {
	got := SmartSuggestions(80, nil, 5500, nil)
	if !hasType(got, "tariff-check") {
		t.Errorf("suggestions = %v, want tariff-check for a high bill on low usage", types(got))
	}

	// Either bound failing disables the rule.
	if got := SmartSuggestions(120, nil, 5500, nil); hasType(got, "tariff-check") {
		t.Errorf("suggestions = %v, usage at or above 100 kWh must not trigger tariff-check", types(got))
	}
	if got := SmartSuggestions(80, nil, 5000, nil); hasType(got, "tariff-check") {
		t.Errorf("suggestions = %v, bill at or below 5000 must not trigger tariff-check", types(got))
	}
}

func TestSmartSuggestionsUnusualSpike(t *testing.T) {
	// Trailing average over the three newest entries is (300+100+100)/3 = 166.67;
	// current 300 clears the 1.2x spike bar.
	history := []entity.BillResult{result(300), result(100), result(100), result(90)}
	prev := 100.0
	got := SmartSuggestions(300, &prev, 2200, history)
	if !hasType(got, "unusual-spike") {
		t.Errorf("suggestions = %v, want unusual-spike", types(got))
	}

	// Too little history: rule stays silent.
	short := SmartSuggestions(300, &prev, 2200, history[:2])
	if hasType(short, "unusual-spike") {
		t.Errorf("suggestions = %v, spike rule needs three entries", types(short))
	}
}
