package utils

import (
	"fmt"
	"time"

	spendsyncv1 "github.com/joseph-ayodele/spendsync/gen/proto/spendsync/v1"
	"github.com/joseph-ayodele/spendsync/internal/entity"
)

// ParseYMD parses a date-only string (YYYY-MM-DD) in UTC.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ToPBTransaction converts a transaction entity into its wire form.
func ToPBTransaction(t *entity.Transaction) *spendsyncv1.Transaction {
	pb := &spendsyncv1.Transaction{
		Id:         t.SourceID,
		Amount:     t.Amount.String(),
		Direction:  string(t.Direction),
		Merchant:   t.MerchantName(),
		Reference:  t.ReferenceNumber(),
		TxDate:     t.TxDate.Format("2006-01-02"),
		ReceivedAt: t.ReceivedAt.Format(time.RFC3339Nano),
		Sender:     t.Sender,
		Category:   string(t.Category),
		RawBody:    t.RawBody,
	}
	if t.AccountRef != nil {
		pb.AccountRef = *t.AccountRef
	}
	if t.BalanceAfter != nil {
		pb.BalanceAfter = t.BalanceAfter.String()
	}
	return pb
}

// ToPBSyncSummary converts a run summary into its wire form.
func ToPBSyncSummary(s *entity.SyncSummary) *spendsyncv1.SyncSummary {
	if s == nil {
		return nil
	}
	return &spendsyncv1.SyncSummary{
		RunId:              s.RunID.String(),
		MessagesRead:       int32(s.MessagesRead),
		Transactional:      int32(s.Transactional),
		Saved:              int32(s.Saved),
		Duplicates:         int32(s.Duplicates),
		ExtractionFailures: int32(s.ExtractionFailures),
		CompletedAt:        s.CompletedAt.Format(time.RFC3339Nano),
		Incremental:        s.Incremental,
		Failed:             s.Failed,
		Error:              s.Error,
	}
}
