package extract

import (
	"regexp"
	"strings"
	"time"
)

// Generic fallback rules. Bank-profile overrides, when present, are tried
// first; these patterns cover the common template shapes across Indian bank
// and fintech alerts. Every pattern captures the bare value in group 1.
var (
	// Amount after a currency marker: "Rs.500.00", "Rs 1,234", "INR 99", "₹250".
	genericAmountPattern = regexp.MustCompile(`(?i)(?:rs\.?|inr|₹)\s*([0-9]+(?:,[0-9]+)*(?:\.[0-9]{1,2})?)`)

	// Resulting balance: "Avl Bal Rs.5000.00", "Available Balance: INR 1,200",
	// "Bal Rs 99.50".
	genericBalancePattern = regexp.MustCompile(`(?i)(?:avl\.?\s*bal(?:ance)?|available\s+bal(?:ance)?|\bbal(?:ance)?)[.:\s]*(?:rs\.?|inr|₹)?\s*(-?[0-9]+(?:,[0-9]+)*(?:\.[0-9]{1,2})?)`)

	// Reference number: "Ref 123456789", "Ref No. ABC123", "UTR 309812345678",
	// "Transaction ID: T2301031245".
	genericReferencePattern = regexp.MustCompile(`(?i)(?:\bref(?:erence)?(?:\s*no\.?)?|\butr|\btransaction\s*id|\btxn\s*id)[:\s.#]*([A-Za-z0-9]{4,22})`)

	// Merchant: capitalized token sequence after "at", "to", "for" or
	// "via UPI to". The capture ends at the first lowercase word, digit run
	// or sentence boundary; known trailing keywords are trimmed afterwards.
	genericMerchantPattern = regexp.MustCompile(`(?:\bat|\bto|\bfor|via\s+UPI\s+to)\s+([A-Z][A-Za-z0-9&'-]*(?:\s+[A-Z][A-Za-z0-9&'-]*)*)`)

	// Masked account reference: "A/c XX1234", "A/c no. *5678", "Account 004512".
	genericAccountPattern = regexp.MustCompile(`(?i)\b(?:a/c|acct|account)(?:\s*no\.?)?[:\s]*((?:[Xx*]+)?[0-9]{3,6})`)
)

// Direction verbs. Matching is positional: when both polarities appear the
// earlier verb wins.
var (
	debitVerbPattern  = regexp.MustCompile(`(?i)\b(?:debited|withdrawn|spent|paid|sent|deducted)\b`)
	creditVerbPattern = regexp.MustCompile(`(?i)\b(?:credited|received|deposited)\b`)
)

// Explicit dates in the body: "03-01-26", "03/01/2026", "3-Jan-26".
var (
	numericDatePattern = regexp.MustCompile(`\b([0-3]?[0-9])[-/]([01]?[0-9])[-/]((?:20)?[0-9]{2})\b`)
	monthNameDatePattern = regexp.MustCompile(`(?i)\b([0-3]?[0-9])[- ]?(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[- ]?((?:20)?[0-9]{2,4})\b`)
)

var monthNumbers = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// merchantStopWords end a merchant capture when the template carries
// capitalized keywords after the name ("at Amazon Ref 123456789").
var merchantStopWords = map[string]struct{}{
	"ref": {}, "refno": {}, "reference": {}, "utr": {}, "txn": {},
	"upi": {}, "avl": {}, "bal": {}, "on": {}, "info": {}, "a/c": {},
	"not": {}, "call": {}, "sms": {},
}

// trimMerchant cuts the raw capture at the first stop word and strips
// trailing punctuation. A single leftover character is template debris,
// not a merchant: "to A/c XX1234" captures just the A because the match
// stops at the slash.
func trimMerchant(raw string) string {
	fields := strings.Fields(raw)
	out := fields[:0]
	for _, f := range fields {
		if _, stop := merchantStopWords[strings.ToLower(strings.Trim(f, ".,:;"))]; stop {
			break
		}
		out = append(out, f)
	}
	merchant := strings.Trim(strings.Join(out, " "), " .,:;-")
	if len(merchant) < 2 {
		return ""
	}
	return merchant
}
