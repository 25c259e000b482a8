package billtext

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"collapses line breaks", "TOTAL\nAMOUNT\r\n1500", "TOTAL AMOUNT 1500"},
		{"collapses runs of spaces", "NET   UNITS    CONSUMED  250", "NET UNITS CONSUMED 250"},
		{"strips control bytes", "BILL\x00 DATE\x1f 01/07/2025", "BILL DATE 01/07/2025"},
		{"strips non-ascii noise", "Tötal Amount: ₹1500", "Ttal Amount: ₹1500"},
		{"keeps rupee sign", "CURRENT DEMAND PAYABLE ₹1500.00", "CURRENT DEMAND PAYABLE ₹1500.00"},
		{"trims edges", "  Usage: 120 kWh  ", "Usage: 120 kWh"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := "SERVICE NUMBER 1234567890\nNET   UNITS CONSUMED: 250\r\nCURRENT DEMAND PAYABLE ₹1,500.00\x0b"
	once := Normalize(raw)
	twice := Normalize(once)
	if once != twice {
		t.Fatalf("Normalize not idempotent: %q vs %q", once, twice)
	}
}
