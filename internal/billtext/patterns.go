package billtext

import "regexp"

// fieldPattern is one candidate for recovering a field: a regex with a single
// capturing group plus an optional transform applied to the captured value.
// Candidates are tried in order; the first hit wins. Keeping these as data
// means a new bill-provider format is a table entry, not a code path.
type fieldPattern struct {
	re        *regexp.Regexp
	transform func(string) string
}

// Bill identifier. Provider-specific terms (APSPDCL service/consumer numbers)
// first, generic account terms last.
var billIDPatterns = []fieldPattern{
	{re: regexp.MustCompile(`(?i)SERVICE\s*NUMBER\s*([0-9]{10,})`)},
	{re: regexp.MustCompile(`(?i)CONSUMER\s*NUMBER\s*([0-9]{10,})`)},
	{re: regexp.MustCompile(`(?i)CA\s*NO[:\s]*([0-9]{10,})`)},
	{re: regexp.MustCompile(`(?i)BILL\s*ID[:\s]*([A-Z0-9]{8,})`)},
	{re: regexp.MustCompile(`(?i)(?:Service\s*No|Account\s*ID)[:\s]*([A-Za-z0-9\s-]+)`)},
}

// Monetary total due.
var totalAmountPatterns = []fieldPattern{
	{re: regexp.MustCompile(`(?i)CURRENT\s*DEMAND\s*PAYABLE[:\s]*₹?\s*([\d,.]+)`)},
	{re: regexp.MustCompile(`(?i)Total\s*Amount\s*(?:Due)?[:\s]*₹?\s*([\d,.]+)`)},
	{re: regexp.MustCompile(`(?i)Net\s*Payable[:\s]*₹?\s*([\d,.]+)`)},
	{re: regexp.MustCompile(`(?i)Amount\s*Payable[:\s]*₹?\s*([\d,.]+)`)},
	{re: regexp.MustCompile(`(?i)Total\s*Payable\s*Rs\.?\s*([\d,.]+)`)},
	{re: regexp.MustCompile(`(?i)Grand\s*Total[:\s]*₹?\s*([\d,.]+)`)},
	{re: regexp.MustCompile(`(?i)Bill\s*Amount[:\s]*₹?\s*([\d,.]+)`)},
	{re: regexp.MustCompile(`(?i)Bill\s*TSB[:\s]*₹?\s*([\d,.]+)`)},
}

// Energy consumption in kWh ("units" on Indian bills).
var unitsPatterns = []fieldPattern{
	{re: regexp.MustCompile(`(?i)NET\s*UNITS\s*CONSUMED[:\s]*([\d,.]+)`)},
	{re: regexp.MustCompile(`(?i)(?:consumption|units\s*consumed|monthly\s*units|energy\s*used)[:\s]*([\d,.]+)\s*(?:kwh)?`)},
	{re: regexp.MustCompile(`(?i)Total\s*Units[:\s]*([\d,.]+)`)},
	{re: regexp.MustCompile(`(?i)Usage[:\s]*([\d,.]+)\s*kWh`)},
	{re: regexp.MustCompile(`(?i)units[:\s]*([\d,.]+)`)},
	{re: regexp.MustCompile(`(?i)Current\s*Reading\s*-\s*Previous\s*Reading\s*=\s*([\d,.]+)\s*Units`)},
}

// Billing date: labeled numeric dates first, then free-form "01 Jan 2025".
var datePatterns = []fieldPattern{
	{re: regexp.MustCompile(`(?i)(?:BILL\s*DATE|INVOICE\s*DATE|DATE)[:\s]*(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})`)},
	{re: regexp.MustCompile(`(?i)(\d{1,2}\s*[A-Za-z]{3,}\s*\d{2,4})`), transform: normalizeTextualDate},
}
