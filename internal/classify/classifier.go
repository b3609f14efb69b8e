// Package classify decides whether a raw message body describes a financial
// transaction at all. It is deterministic and stateless: a currency-amount
// token plus a transaction verb qualifies a message, unless a known
// false-positive template (OTP, promotional copy) also matches. The
// negative filter always wins.
package classify

import (
	"regexp"
)

var (
	// Currency amount: "Rs.500.00", "Rs 1,234", "INR 99", "₹250", or the
	// amount-first form "500.00 INR".
	currencyAmountPattern = regexp.MustCompile(`(?i)(?:rs\.?|inr|₹)\s*[0-9][0-9,]*(?:\.[0-9]{1,2})?|[0-9][0-9,]*(?:\.[0-9]{1,2})?\s*(?:rs|inr|₹)`)

	// Transaction verbs seen across bank and UPI alerts.
	transactionVerbPattern = regexp.MustCompile(`(?i)\b(?:debited|credited|spent|withdrawn|paid|received|sent|deducted|deposited|transferred)\b`)
)

// Negative templates. A hit on any of these disqualifies the message even
// when an amount and a verb are both present.
var falsePositivePatterns = []*regexp.Regexp{
	// One-time codes and their boilerplate.
	regexp.MustCompile(`(?i)\botp\b`),
	regexp.MustCompile(`(?i)one[\s-]?time\s+(?:password|pin|code)`),
	regexp.MustCompile(`(?i)verification\s+code`),
	regexp.MustCompile(`(?i)do\s+not\s+share`),
	// Promotional wording.
	regexp.MustCompile(`(?i)\b(?:offers?|sale|discount|voucher|coupon)\b`),
	regexp.MustCompile(`(?i)\d+\s*%\s*off`),
	regexp.MustCompile(`(?i)cashback\s+(?:offer|upto|up\s+to)`),
	regexp.MustCompile(`(?i)\b(?:apply|shop|order)\s+now\b`),
	regexp.MustCompile(`(?i)\bt\s*&\s*c\b`),
	regexp.MustCompile(`(?i)\bemi\s+starting\b`),
	regexp.MustCompile(`(?i)\b(?:win|hurry|congratulations)\b`),
	regexp.MustCompile(`(?i)loan\s+(?:approved|offer|pre-approved)`),
}

// amountVerbProximity is the maximum distance in bytes between the currency
// token and the nearest transaction verb for the two to count as one
// statement rather than coincidental mentions.
const amountVerbProximity = 120

// IsTransactionMessage reports whether the body looks like a transaction
// notification.
func IsTransactionMessage(body string) bool {
	if body == "" {
		return false
	}

	for _, p := range falsePositivePatterns {
		if p.MatchString(body) {
			return false
		}
	}

	amount := currencyAmountPattern.FindStringIndex(body)
	if amount == nil {
		return false
	}

	verbs := transactionVerbPattern.FindAllStringIndex(body, -1)
	if len(verbs) == 0 {
		return false
	}
	for _, v := range verbs {
		if distance(amount, v) <= amountVerbProximity {
			return true
		}
	}
	return false
}

// distance is the gap between two match spans, zero when they overlap.
func distance(a, b []int) int {
	if a[1] <= b[0] {
		return b[0] - a[1]
	}
	if b[1] <= a[0] {
		return a[0] - b[1]
	}
	return 0
}
