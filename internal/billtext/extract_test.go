package billtext

import (
	"reflect"
	"testing"
)

func TestExtractAPSPDCLBill(t *testing.T) {
	text := Normalize("SERVICE NUMBER 1234567890\n" +
		"BILL DATE: 01/07/2025\n" +
		"NET UNITS CONSUMED 250\n" +
		"CURRENT DEMAND PAYABLE ₹1500.00\n")

	f := Extract(text)
	if f.BillID != "1234567890" {
		t.Errorf("BillID = %q, want %q", f.BillID, "1234567890")
	}
	if f.TotalAmount == nil || *f.TotalAmount != 1500.00 {
		t.Errorf("TotalAmount = %v, want 1500.00", f.TotalAmount)
	}
	if f.Consumption == nil || *f.Consumption != 250 {
		t.Errorf("Consumption = %v, want 250", f.Consumption)
	}
	if f.BillDate != "01/07/2025" {
		t.Errorf("BillDate = %q, want %q", f.BillDate, "01/07/2025")
	}
	if missing := f.MissingRequired(); len(missing) != 0 {
		t.Errorf("MissingRequired() = %v, want none", missing)
	}
}

func TestExtractFieldCascades(t *testing.T) {
	cases := []struct {
		name       string
		text       string
		wantAmount *float64
		wantUnits  *float64
	}{
		{
			name:       "provider term wins over generic",
			text:       "Total Amount Due: ₹900.00 CURRENT DEMAND PAYABLE ₹1500.00",
			wantAmount: f64(1500.00),
		},
		{
			name:       "comma separated amount",
			text:       "Net Payable: ₹12,345.50",
			wantAmount: f64(12345.50),
		},
		{
			name:      "generic consumption label",
			text:      "Units Consumed: 120 kWh",
			wantUnits: f64(120),
		},
		{
			name:      "usage label",
			text:      "Usage: 87.5 kWh",
			wantUnits: f64(87.5),
		},
		{
			name: "no fields at all",
			text: "THANK YOU FOR YOUR PAYMENT",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := Extract(tc.text)
			if !floatPtrEq(f.TotalAmount, tc.wantAmount) {
				t.Errorf("TotalAmount = %v, want %v", fmtPtr(f.TotalAmount), fmtPtr(tc.wantAmount))
			}
			if !floatPtrEq(f.Consumption, tc.wantUnits) {
				t.Errorf("Consumption = %v, want %v", fmtPtr(f.Consumption), fmtPtr(tc.wantUnits))
			}
		})
	}
}

func TestExtractAbsenceIsNotZero(t *testing.T) {
	f := Extract("some scanned noise with no labels")
	if f.TotalAmount != nil || f.Consumption != nil {
		t.Fatalf("expected nil amount/consumption, got %v / %v", fmtPtr(f.TotalAmount), fmtPtr(f.Consumption))
	}
	want := []string{"total_amount", "consumption"}
	if got := f.MissingRequired(); !reflect.DeepEqual(got, want) {
		t.Fatalf("MissingRequired() = %v, want %v", got, want)
	}

	// Zero readings are present, not missing.
	z := Extract("Total Amount: ₹0 Units: 0")
	if z.TotalAmount == nil || *z.TotalAmount != 0 {
		t.Fatalf("zero amount should be captured, got %v", fmtPtr(z.TotalAmount))
	}
	if got := z.MissingRequired(); len(got) != 0 {
		t.Fatalf("MissingRequired() = %v, want none", got)
	}
}

func TestExtractIdempotent(t *testing.T) {
	text := "CONSUMER NUMBER 9876543210 Total Units: 310 Bill Amount: ₹2,450.75 Bill Date: 15-06-2025"
	first := Extract(text)
	second := Extract(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Extract not deterministic: %+v vs %+v", first, second)
	}
}

func TestNormalizeTextualDate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"01 Jul 2025", "01/07/2025"},
		{"5 January 2024", "5/01/2024"},
		{"15 SEP 25", "15/09/25"},
		{"01 Xyz 2025", "01 Xyz 2025"}, // unknown month passes through
	}
	for _, tc := range cases {
		if got := normalizeTextualDate(tc.in); got != tc.want {
			t.Errorf("normalizeTextualDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtractTextualDate(t *testing.T) {
	f := Extract("Issued on 01 Jul 2025 Units: 100 Total Amount: ₹800")
	if f.BillDate != "01/07/2025" {
		t.Fatalf("BillDate = %q, want %q", f.BillDate, "01/07/2025")
	}
}

func f64(v float64) *float64 { return &v }

func floatPtrEq(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtPtr(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
