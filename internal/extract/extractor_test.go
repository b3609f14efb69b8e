package extract

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/spendsync/internal/entity"
)

var arrivedAt = time.Date(2026, time.January, 3, 14, 30, 0, 0, time.UTC)

func message(sender, body string) entity.RawMessage {
	return entity.RawMessage{
		ID:        101,
		Sender:    sender,
		Body:      body,
		ArrivedAt: arrivedAt,
	}
}

func TestExtractDebitAlert(t *testing.T) {
	e := New(nil)
	msg := message("VM-HDFCBK", "Rs.500.00 debited from A/c XX1234 on 03-01-26 at Amazon. Ref 123456789. Avl Bal Rs.5000.00")

	txn, err := e.Extract(msg, nil)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if want := decimal.RequireFromString("500.00"); !txn.Amount.Equal(want) {
		t.Errorf("Amount = %s, want %s", txn.Amount, want)
	}
	if txn.Direction != entity.DirectionDebit {
		t.Errorf("Direction = %s, want %s", txn.Direction, entity.DirectionDebit)
	}
	if got := txn.MerchantName(); got != "Amazon" {
		t.Errorf("Merchant = %q, want %q", got, "Amazon")
	}
	if got := txn.ReferenceNumber(); got != "123456789" {
		t.Errorf("Reference = %q, want %q", got, "123456789")
	}
	if txn.BalanceAfter == nil {
		t.Fatal("BalanceAfter = nil, want 5000.00")
	}
	if want := decimal.RequireFromString("5000.00"); !txn.BalanceAfter.Equal(want) {
		t.Errorf("BalanceAfter = %s, want %s", txn.BalanceAfter, want)
	}
	if txn.AccountRef == nil || *txn.AccountRef != "XX1234" {
		t.Errorf("AccountRef = %v, want XX1234", txn.AccountRef)
	}
	if want := time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC); !txn.TxDate.Equal(want) {
		t.Errorf("TxDate = %s, want %s", txn.TxDate, want)
	}
	if txn.SourceID != msg.ID {
		t.Errorf("SourceID = %d, want %d", txn.SourceID, msg.ID)
	}
}

func TestExtractCreditAlert(t *testing.T) {
	e := New(nil)
	msg := message("AD-SBIINB", "INR 12,000.00 credited to A/c XX9876 on 01-01-26 by NEFT. Ref UTR309812345678. Avl Bal INR 45,210.55")

	txn, err := e.Extract(msg, nil)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if want := decimal.RequireFromString("12000.00"); !txn.Amount.Equal(want) {
		t.Errorf("Amount = %s, want %s", txn.Amount, want)
	}
	if txn.Direction != entity.DirectionCredit {
		t.Errorf("Direction = %s, want %s", txn.Direction, entity.DirectionCredit)
	}
	if txn.BalanceAfter == nil {
		t.Fatal("BalanceAfter = nil, want 45210.55")
	}
	if want := decimal.RequireFromString("45210.55"); !txn.BalanceAfter.Equal(want) {
		t.Errorf("BalanceAfter = %s, want %s", txn.BalanceAfter, want)
	}
}

func TestExtractOwnAccountCreditHasNoMerchant(t *testing.T) {
	e := New(nil)
	// "to A/c" must not leak a one-letter merchant; the masked-account rule
	// owns that token.
	msg := message("AD-SBIINB", "Rs.2,000.00 credited to A/c XX1234 on 05-01-26. Avl Bal Rs.7,000.00")

	txn, err := e.Extract(msg, nil)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if txn.Merchant != nil {
		t.Errorf("Merchant = %q, want none for a credit to the account holder", *txn.Merchant)
	}
	if txn.AccountRef == nil || *txn.AccountRef != "XX1234" {
		t.Errorf("AccountRef = %v, want XX1234", txn.AccountRef)
	}
}

func TestExtractAmountIsMandatory(t *testing.T) {
	e := New(nil)
	msg := message("VM-HDFCBK", "Your account has been debited. Contact branch for details.")

	if _, err := e.Extract(msg, nil); !errors.Is(err, ErrNoAmount) {
		t.Errorf("Extract() error = %v, want ErrNoAmount", err)
	}
}

func TestExtractSkipsBalanceWhenPickingAmount(t *testing.T) {
	e := New(nil)
	// Balance phrase comes first; the amount matcher must not grab it.
	msg := message("VM-HDFCBK", "Avl Bal Rs.5000.00 after Rs.250.00 debited at Cafe Coffee Day.")

	txn, err := e.Extract(msg, nil)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if want := decimal.RequireFromString("250.00"); !txn.Amount.Equal(want) {
		t.Errorf("Amount = %s, want %s", txn.Amount, want)
	}
}

func TestExtractWithProfileOverrides(t *testing.T) {
	e := New(nil)
	profile := &entity.BankProfile{
		Name:    "X Bank",
		Senders: []string{"XBANK"},
		Rules: &entity.ExtractionRules{
			Amount:   regexp.MustCompile(`amount of INR ([0-9.,]+)`),
			Merchant: regexp.MustCompile(`towards ([A-Za-z ]+) stands`),
		},
	}
	msg := message("XBANK", "Your payment towards electricity board stands confirmed. An amount of INR 1,499.00 was debited. Avl Bal Rs.3,000.00")

	txn, err := e.Extract(msg, profile)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if want := decimal.RequireFromString("1499.00"); !txn.Amount.Equal(want) {
		t.Errorf("Amount = %s, want %s", txn.Amount, want)
	}
	if got := txn.MerchantName(); got != "electricity board" {
		t.Errorf("Merchant = %q, want %q", got, "electricity board")
	}
}

func TestExtractFallsBackWhenOverrideMisses(t *testing.T) {
	e := New(nil)
	profile := &entity.BankProfile{
		Name:    "X Bank",
		Senders: []string{"XBANK"},
		Rules: &entity.ExtractionRules{
			Amount: regexp.MustCompile(`amount of INR ([0-9.,]+)`),
		},
	}
	msg := message("XBANK", "Rs.99.00 debited at Chai Point. Ref 40012345.")

	txn, err := e.Extract(msg, profile)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if want := decimal.RequireFromString("99.00"); !txn.Amount.Equal(want) {
		t.Errorf("Amount = %s, want %s", txn.Amount, want)
	}
}

func TestExtractDateFallsBackToArrival(t *testing.T) {
	e := New(nil)
	msg := message("VM-HDFCBK", "Rs.75.00 debited at Metro Station. Ref 88112233.")

	txn, err := e.Extract(msg, nil)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !txn.TxDate.Equal(arrivedAt) {
		t.Errorf("TxDate = %s, want arrival %s", txn.TxDate, arrivedAt)
	}
}

func TestExtractMonthNameDate(t *testing.T) {
	e := New(nil)
	msg := message("VM-HDFCBK", "Rs.320.00 debited on 5-Jan-26 at Big Bazaar. Ref 77001122.")

	txn, err := e.Extract(msg, nil)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if want := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC); !txn.TxDate.Equal(want) {
		t.Errorf("TxDate = %s, want %s", txn.TxDate, want)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain", raw: "500.00", want: "500.00"},
		{name: "grouped", raw: "1,234.50", want: "1234.50"},
		{name: "indian grouping", raw: "1,00,000", want: "100000"},
		{name: "integer", raw: "99", want: "99"},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-50", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "garbage", raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseAmount(%q) = %s, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) error = %v", tt.raw, err)
			}
			if want := decimal.RequireFromString(tt.want); !got.Equal(want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.raw, got, want)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name string
		body string
		want entity.Direction
	}{
		{name: "debit", body: "Rs.100 debited from your account", want: entity.DirectionDebit},
		{name: "credit", body: "Rs.100 credited to your account", want: entity.DirectionCredit},
		{name: "both debit first", body: "Rs.100 debited; beneficiary credited", want: entity.DirectionDebit},
		{name: "both credit first", body: "Rs.100 credited after being deducted elsewhere", want: entity.DirectionCredit},
		{name: "neither", body: "Rs.100 balance update", want: entity.DirectionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Direction(tt.body); got != tt.want {
				t.Errorf("Direction(%q) = %s, want %s", tt.body, got, tt.want)
			}
		})
	}
}

func TestTrimMerchant(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "Amazon", want: "Amazon"},
		{name: "two words", raw: "Cafe Coffee Day", want: "Cafe Coffee Day"},
		{name: "trailing ref keyword", raw: "Amazon Ref", want: "Amazon"},
		{name: "trailing punctuation", raw: "Amazon.", want: "Amazon"},
		{name: "stop mid sequence", raw: "Big Bazaar Avl Bal", want: "Big Bazaar"},
		{name: "single letter dropped", raw: "A", want: ""},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trimMerchant(tt.raw); got != tt.want {
				t.Errorf("trimMerchant(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
