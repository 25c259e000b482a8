package trends

import (
	"strings"
	"testing"

	"github.com/mygreenhome/greenhome-tracker/internal/entity"
)

func result(kwh float64) entity.BillResult {
	return entity.BillResult{TotalConsumption: kwh}
}

func TestCompareThresholds(t *testing.T) {
	cases := []struct {
		name        string
		current     float64
		previous    float64
		wantPercent float64
		wantPhrase  string
	}{
		{"increase above 15 percent", 240, 200, 20.0, "increased by 20.0%"},
		{"decrease below -10 percent", 170, 200, -15.0, "reduced your consumption by 15.0%"},
		{"steady within band", 210, 200, 5.0, "stayed fairly consistent"},
		{"exactly 15 percent is steady", 230, 200, 15.0, "stayed fairly consistent"},
		{"exactly -10 percent is steady", 180, 200, -10.0, "stayed fairly consistent"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Compare(result(tc.current), result(tc.previous))
			if c.PercentNotComputable {
				t.Fatal("PercentNotComputable = true, want computable")
			}
			if c.PercentChange != tc.wantPercent {
				t.Errorf("PercentChange = %v, want %v", c.PercentChange, tc.wantPercent)
			}
			if !strings.Contains(c.Message, tc.wantPhrase) {
				t.Errorf("Message = %q, want it to contain %q", c.Message, tc.wantPhrase)
			}
			if !strings.Contains(c.Summary, "Compared to last month") {
				t.Errorf("Summary = %q, want a month-over-month summary", c.Summary)
			}
		})
	}
}

func TestCompareZeroPreviousIsNotComputable(t *testing.T) {
	c := Compare(result(120), result(0))
	if !c.PercentNotComputable {
		t.Fatal("PercentNotComputable = false, want true when previous is zero")
	}
	if c.PercentChange != 0 {
		t.Errorf("PercentChange = %v, want 0 alongside the sentinel", c.PercentChange)
	}
	if !strings.Contains(c.Summary, "N/A") {
		t.Errorf("Summary = %q, want the N/A sentinel", c.Summary)
	}
	if c.DeltaKWh != 120 {
		t.Errorf("DeltaKWh = %v, want 120", c.DeltaKWh)
	}
}

func TestComparePercentRounding(t *testing.T) {
	// 10/300 = 3.333..% rounds to one decimal.
	c := Compare(result(310), result(300))
	if c.PercentChange != 3.3 {
		t.Errorf("PercentChange = %v, want 3.3", c.PercentChange)
	}
}

func TestCompareAdvice(t *testing.T) {
	high := Compare(result(350), result(340))
	if len(high.Advice) != 1 || !strings.Contains(high.Advice[0], "quite high") {
		t.Errorf("high advice = %v, want the high-usage note", high.Advice)
	}

	low := Compare(result(100), result(105))
	if len(low.Advice) != 1 || !strings.Contains(low.Advice[0], "relatively low") {
		t.Errorf("low advice = %v, want the low-usage note", low.Advice)
	}

	mid := Compare(result(200), result(210))
	if len(mid.Advice) != 0 {
		t.Errorf("mid advice = %v, want none", mid.Advice)
	}
}
