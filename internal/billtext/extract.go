package billtext

import (
	"regexp"
	"strconv"
	"strings"
)

// Fields holds the values recovered from one bill. Required numeric fields are
// pointers so that "pattern never matched" stays distinct from a genuine zero
// reading; callers treat absence as a validation failure, never as 0.
type Fields struct {
	BillID      string
	TotalAmount *float64
	Consumption *float64
	BillDate    string // DD/MM/YYYY when a textual month was normalized, else as matched
}

// MissingRequired lists the required fields no pattern matched. Empty means
// the bill is usable.
func (f Fields) MissingRequired() []string {
	var missing []string
	if f.TotalAmount == nil {
		missing = append(missing, "total_amount")
	}
	if f.Consumption == nil {
		missing = append(missing, "consumption")
	}
	return missing
}

// Extract recovers bill fields from normalized text. It never fails: fields
// whose patterns all miss are simply absent. Re-running on the same input
// yields the same output.
func Extract(text string) Fields {
	return Fields{
		BillID:      firstMatch(text, billIDPatterns),
		TotalAmount: matchFloat(text, totalAmountPatterns),
		Consumption: matchFloat(text, unitsPatterns),
		BillDate:    firstMatch(text, datePatterns),
	}
}

var reValueNoise = regexp.MustCompile(`[₹$,\s]`)

// firstMatch tries each candidate in priority order and returns the first
// captured value, cleaned of currency symbols, separators and inner spaces.
func firstMatch(text string, candidates []fieldPattern) string {
	for _, c := range candidates {
		m := c.re.FindStringSubmatch(text)
		if len(m) < 2 || m[1] == "" {
			continue
		}
		v := strings.TrimSpace(m[1])
		if c.transform != nil {
			return c.transform(v)
		}
		return reValueNoise.ReplaceAllString(v, "")
	}
	return ""
}

// matchFloat is firstMatch plus numeric parsing; an unparseable capture counts
// as absent, the cascade does not fall through to weaker patterns.
func matchFloat(text string, candidates []fieldPattern) *float64 {
	s := firstMatch(text, candidates)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// monthNumbers maps three-letter month abbreviations to two-digit months.
var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

var reDateParts = regexp.MustCompile(`^(\d{1,2})\s*([A-Za-z]{3,})\s*(\d{2,4})$`)

// normalizeTextualDate rewrites "01 Jul 2025" as "01/07/2025". Dates whose
// month token is not recognized pass through as matched; no cross-format
// validation is attempted.
func normalizeTextualDate(s string) string {
	m := reDateParts.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}
	month := strings.ToLower(m[2])
	if len(month) > 3 {
		month = month[:3]
	}
	num, ok := monthNumbers[month]
	if !ok {
		return s
	}
	return m[1] + "/" + num + "/" + m[3]
}
