package ocr

import "regexp"

var (
	reDateish     = regexp.MustCompile(`\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}`)
	reCurrencyish = regexp.MustCompile(`(?i)₹|rs\.?|rupee|payable|amount`)
	reUnitsish    = regexp.MustCompile(`(?i)kwh|units?\s`)
)

// heuristicConfidence scores decoded text by whether bill-like artifacts
// (date, currency, units) are present. A rough 0..1 signal only; values
// below ~0.5 usually mean the image was not a readable bill.
func heuristicConfidence(txt string) float32 {
	score := float32(0.2) // base
	if reDateish.MatchString(txt) {
		score += 0.2
	}
	if reCurrencyish.MatchString(txt) {
		score += 0.15
	}
	if reUnitsish.MatchString(txt) {
		score += 0.15
	}
	if len(txt) > 120 { // enough content
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
