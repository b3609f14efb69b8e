package entity

import (
	"regexp"
)

// ExtractionRules are a bank profile's field-level overrides. A nil rule
// means "fall back to the generic pattern for that field". Each compiled
// rule captures the value substring in group 1.
type ExtractionRules struct {
	Amount    *regexp.Regexp
	Balance   *regexp.Regexp
	Merchant  *regexp.Regexp
	Reference *regexp.Regexp
}

// BankProfile names an institution and the sender headers it is known to
// use. Profiles are static configuration loaded once at startup.
type BankProfile struct {
	Name    string
	Senders []string
	Rules   *ExtractionRules
}

// HasSender reports whether the profile claims the given sender header.
// Matching is a case-sensitive exact membership test.
func (p *BankProfile) HasSender(sender string) bool {
	for _, s := range p.Senders {
		if s == sender {
			return true
		}
	}
	return false
}
