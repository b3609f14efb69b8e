package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/spendsync/constants"
)

// Direction reports whether money left or entered the account.
type Direction string

const (
	DirectionDebit   Direction = "DEBIT"
	DirectionCredit  Direction = "CREDIT"
	DirectionUnknown Direction = "UNKNOWN"
)

// Transaction represents a parsed transaction for data transfer between layers.
// SourceID is the ID of the raw message it was extracted from and is the
// stable identity of the transaction.
type Transaction struct {
	SourceID     int64              `json:"source_id"`
	Amount       decimal.Decimal    `json:"amount"`
	Direction    Direction          `json:"direction"`
	Merchant     *string            `json:"merchant,omitempty"`
	AccountRef   *string            `json:"account_ref,omitempty"`
	Reference    *string            `json:"reference,omitempty"`
	TxDate       time.Time          `json:"tx_date"`
	ReceivedAt   time.Time          `json:"received_at"`
	RawBody      string             `json:"raw_body"`
	Sender       string             `json:"sender"`
	BalanceAfter *decimal.Decimal   `json:"balance_after,omitempty"`
	Location     *string            `json:"location,omitempty"`
	Category     constants.Category `json:"category"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// MerchantName returns the merchant or "" when none was extracted.
func (t *Transaction) MerchantName() string {
	if t.Merchant == nil {
		return ""
	}
	return *t.Merchant
}

// ReferenceNumber returns the reference or "" when none was extracted.
func (t *Transaction) ReferenceNumber() string {
	if t.Reference == nil {
		return ""
	}
	return *t.Reference
}
