package billtext

import (
	"regexp"
	"strings"
)

var (
	reLineBreaks = regexp.MustCompile(`[\r\n]+`)
	reControl    = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]")
	reMultiSpace = regexp.MustCompile(`\s{2,}`)
	// OCR misreads produce stray bytes outside printable ASCII. Keep the rupee
	// sign: the amount patterns downstream anchor on it.
	reNonASCII = regexp.MustCompile(`[^\x00-\x7F\s₹]`)
)

// Normalize collapses raw multi-line OCR output into a single spaced line and
// strips bytes the field patterns can never match. Deterministic and total:
// empty input yields empty output.
func Normalize(raw string) string {
	s := reLineBreaks.ReplaceAllString(raw, " ")
	s = reControl.ReplaceAllString(s, "")
	s = reNonASCII.ReplaceAllString(s, "")
	s = reMultiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
