// Package extract turns a classified raw message into a structured
// transaction. Bank-profile override rules are applied first, generic
// fallback rules second; the amount is the only mandatory field.
package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/spendsync/constants"
	"github.com/joseph-ayodele/spendsync/internal/entity"
)

var (
	// ErrNoAmount reports that no amount token was found in the body.
	ErrNoAmount = errors.New("no amount found")
	// ErrBadAmount reports an amount that parsed but is zero or negative.
	ErrBadAmount = errors.New("amount must be positive")
)

type Extractor struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract builds a transaction from the message, consulting the profile's
// override rules when profile is non-nil. A missing or non-positive amount
// fails extraction; every other field is optional.
func (e *Extractor) Extract(msg entity.RawMessage, profile *entity.BankProfile) (*entity.Transaction, error) {
	var rules *entity.ExtractionRules
	if profile != nil {
		rules = profile.Rules
	}

	body := msg.Body

	balanceRaw, balanceSpan := matchBalance(body, rules)

	amountRaw := matchAmount(body, rules, balanceSpan)
	if amountRaw == "" {
		return nil, fmt.Errorf("message %d: %w", msg.ID, ErrNoAmount)
	}
	amount, err := ParseAmount(amountRaw)
	if err != nil {
		return nil, fmt.Errorf("message %d: %w", msg.ID, err)
	}

	txn := &entity.Transaction{
		SourceID:   msg.ID,
		Amount:     amount,
		Direction:  Direction(body),
		TxDate:     msg.ArrivedAt,
		ReceivedAt: msg.ArrivedAt,
		RawBody:    body,
		Sender:     msg.Sender,
		Category:   constants.Uncategorized,
	}

	if balanceRaw != "" {
		if bal, err := decimal.NewFromString(stripGrouping(balanceRaw)); err == nil {
			txn.BalanceAfter = &bal
		}
	}

	if ref := matchField(body, ruleOf(rules, fieldReference), genericReferencePattern); ref != "" {
		txn.Reference = &ref
	}

	if merchant := trimMerchant(matchField(body, ruleOf(rules, fieldMerchant), genericMerchantPattern)); merchant != "" {
		txn.Merchant = &merchant
	}

	if acct := matchField(body, nil, genericAccountPattern); acct != "" {
		txn.AccountRef = &acct
	}

	if explicit, ok := explicitDate(body, msg.ArrivedAt); ok {
		txn.TxDate = explicit
	}

	return txn, nil
}

// Direction derives debit/credit from verb keywords alone, independently of
// the field rules. When both polarities appear the earlier mention wins.
func Direction(body string) entity.Direction {
	debit := debitVerbPattern.FindStringIndex(body)
	credit := creditVerbPattern.FindStringIndex(body)
	switch {
	case debit == nil && credit == nil:
		return entity.DirectionUnknown
	case credit == nil:
		return entity.DirectionDebit
	case debit == nil:
		return entity.DirectionCredit
	case debit[0] < credit[0]:
		return entity.DirectionDebit
	default:
		return entity.DirectionCredit
	}
}

// ParseAmount parses a money token, tolerating digit grouping and one or two
// decimal places. Zero and negative amounts are rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := stripGrouping(raw)
	if s == "" {
		return decimal.Decimal{}, ErrNoAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	if d.Sign() <= 0 {
		return decimal.Decimal{}, fmt.Errorf("amount %q: %w", raw, ErrBadAmount)
	}
	return d, nil
}

func stripGrouping(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
}

type fieldName int

const (
	fieldAmount fieldName = iota
	fieldBalance
	fieldMerchant
	fieldReference
)

func ruleOf(rules *entity.ExtractionRules, f fieldName) *regexp.Regexp {
	if rules == nil {
		return nil
	}
	switch f {
	case fieldAmount:
		return rules.Amount
	case fieldBalance:
		return rules.Balance
	case fieldMerchant:
		return rules.Merchant
	case fieldReference:
		return rules.Reference
	default:
		return nil
	}
}

// matchField applies the override first, the generic pattern second, and
// returns the trimmed first capture group of whichever matched.
func matchField(body string, override, generic *regexp.Regexp) string {
	if override != nil {
		if m := override.FindStringSubmatch(body); len(m) > 1 && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
	}
	if generic == nil {
		return ""
	}
	if m := generic.FindStringSubmatch(body); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// matchBalance returns the balance capture plus the span of the full match,
// so the amount matcher can skip currency tokens that belong to the balance
// phrase.
func matchBalance(body string, rules *entity.ExtractionRules) (string, []int) {
	if override := ruleOf(rules, fieldBalance); override != nil {
		if loc := override.FindStringSubmatchIndex(body); loc != nil && loc[2] >= 0 {
			return body[loc[2]:loc[3]], loc[:2]
		}
	}
	if loc := genericBalancePattern.FindStringSubmatchIndex(body); loc != nil && loc[2] >= 0 {
		return body[loc[2]:loc[3]], loc[:2]
	}
	return "", nil
}

// matchAmount picks the first currency token that does not sit inside the
// balance phrase ("Avl Bal Rs.5000.00" must not become the amount).
func matchAmount(body string, rules *entity.ExtractionRules, balanceSpan []int) string {
	if override := ruleOf(rules, fieldAmount); override != nil {
		if m := override.FindStringSubmatch(body); len(m) > 1 && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
	}
	for _, loc := range genericAmountPattern.FindAllStringSubmatchIndex(body, -1) {
		if balanceSpan != nil && loc[0] >= balanceSpan[0] && loc[0] < balanceSpan[1] {
			continue
		}
		return body[loc[2]:loc[3]]
	}
	return ""
}

// explicitDate finds a date written in the body. Two-digit years are read as
// 20xx. The arrival time's zone is kept so windowed queries stay consistent.
func explicitDate(body string, arrived time.Time) (time.Time, bool) {
	if m := numericDatePattern.FindStringSubmatch(body); m != nil {
		if t, ok := buildDate(m[1], monthFromNumber(m[2]), m[3], arrived.Location()); ok {
			return t, true
		}
	}
	if m := monthNameDatePattern.FindStringSubmatch(body); m != nil {
		if t, ok := buildDate(m[1], monthNumbers[strings.ToLower(m[2])], m[3], arrived.Location()); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func monthFromNumber(s string) time.Month {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	if n < 1 || n > 12 {
		return 0
	}
	return time.Month(n)
}

func buildDate(dayStr string, month time.Month, yearStr string, loc *time.Location) (time.Time, bool) {
	if month == 0 {
		return time.Time{}, false
	}
	day := 0
	for _, r := range dayStr {
		day = day*10 + int(r-'0')
	}
	year := 0
	for _, r := range yearStr {
		year = year*10 + int(r-'0')
	}
	if year < 100 {
		year += 2000
	}
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	// Reject rollovers like 31-02-26.
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}
