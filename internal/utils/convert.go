// Package utils holds small conversion helpers between Ent rows and the
// transfer entities the services speak.
package utils

import (
	"github.com/joseph-ayodele/spendsync/constants"
	"github.com/joseph-ayodele/spendsync/gen/ent"
	"github.com/joseph-ayodele/spendsync/internal/entity"
)

// ToTransaction converts an Ent row into the transfer entity. A zero
// balance_after column reads back as absent.
func ToTransaction(row *ent.Transaction) *entity.Transaction {
	t := &entity.Transaction{
		SourceID:   row.ID,
		Amount:     row.Amount,
		Direction:  entity.Direction(row.Direction),
		Merchant:   row.Merchant,
		AccountRef: row.AccountRef,
		Reference:  row.Reference,
		TxDate:     row.TxDate,
		ReceivedAt: row.ReceivedAt,
		RawBody:    row.RawBody,
		Sender:     row.Sender,
		Location:   row.Location,
		Category:   constants.Category(row.Category),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if !row.BalanceAfter.IsZero() {
		bal := row.BalanceAfter
		t.BalanceAfter = &bal
	}
	return t
}

// ToTransactions converts a slice of Ent rows.
func ToTransactions(rows []*ent.Transaction) []*entity.Transaction {
	out := make([]*entity.Transaction, len(rows))
	for i, row := range rows {
		out[i] = ToTransaction(row)
	}
	return out
}
