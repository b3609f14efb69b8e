// Package dedupe removes duplicate transaction notifications, both within a
// freshly extracted batch and against transactions already persisted. Two
// notifications describe the same transaction when they share a non-empty
// reference number, or when amount and direction match within a short time
// window.
package dedupe

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/joseph-ayodele/spendsync/internal/entity"
)

// DefaultWindow bounds how far apart two referenceless notifications may
// arrive and still be treated as the same transaction.
const DefaultWindow = 3 * time.Minute

// Store is the persistence surface deduplication needs. The sync package's
// transaction store satisfies it.
type Store interface {
	// Exists reports whether a transaction with the given source message ID
	// was already saved.
	Exists(ctx context.Context, sourceID int64) (bool, error)
	// FindMatches returns saved transactions that could be duplicates of a
	// candidate: rows sharing the non-empty reference, plus rows with the
	// same amount and direction received within window of around. A stored
	// referenceless row can duplicate a referenced candidate, so a non-empty
	// ref widens the candidate set rather than narrowing it; the caller
	// arbitrates with sameTransaction.
	FindMatches(ctx context.Context, ref string, amount string, direction entity.Direction, around time.Time, window time.Duration) ([]*entity.Transaction, error)
}

type Deduplicator struct {
	store  Store
	window time.Duration
	logger *slog.Logger
}

func New(store Store, window time.Duration, logger *slog.Logger) *Deduplicator {
	if window <= 0 {
		window = DefaultWindow
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Deduplicator{store: store, window: window, logger: logger}
}

// CollapseBatch drops intra-batch duplicates, keeping the earliest-received
// notification of each group. The returned slice is sorted by receive time.
func (d *Deduplicator) CollapseBatch(txns []*entity.Transaction) []*entity.Transaction {
	if len(txns) <= 1 {
		return txns
	}

	sorted := make([]*entity.Transaction, len(txns))
	copy(sorted, txns)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ReceivedAt.Before(sorted[j].ReceivedAt)
	})

	kept := make([]*entity.Transaction, 0, len(sorted))
	for _, txn := range sorted {
		dup := false
		for _, prev := range kept {
			if d.sameTransaction(prev, txn) {
				d.logger.Debug("dedupe.batch.drop",
					"source_id", txn.SourceID,
					"kept_source_id", prev.SourceID)
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, txn)
		}
	}
	return kept
}

// FilterAgainstStore drops candidates already persisted, first by source
// message ID, then by the same-transaction heuristic against saved rows.
func (d *Deduplicator) FilterAgainstStore(ctx context.Context, txns []*entity.Transaction) ([]*entity.Transaction, int, error) {
	kept := make([]*entity.Transaction, 0, len(txns))
	dropped := 0
	for _, txn := range txns {
		exists, err := d.store.Exists(ctx, txn.SourceID)
		if err != nil {
			return nil, 0, err
		}
		if exists {
			dropped++
			continue
		}

		matches, err := d.store.FindMatches(ctx,
			txn.ReferenceNumber(), txn.Amount.String(), txn.Direction,
			txn.ReceivedAt, d.window)
		if err != nil {
			return nil, 0, err
		}
		if dup := d.firstMatch(txn, matches); dup != nil {
			d.logger.Debug("dedupe.store.drop",
				"source_id", txn.SourceID,
				"matched_source_id", dup.SourceID)
			dropped++
			continue
		}
		kept = append(kept, txn)
	}
	return kept, dropped, nil
}

func (d *Deduplicator) firstMatch(txn *entity.Transaction, candidates []*entity.Transaction) *entity.Transaction {
	for _, c := range candidates {
		if d.sameTransaction(c, txn) {
			return c
		}
	}
	return nil
}

// sameTransaction is the duplicate heuristic. A shared non-empty reference is
// authoritative. Without one, equal amount and direction within the window
// count as the same event.
func (d *Deduplicator) sameTransaction(a, b *entity.Transaction) bool {
	refA, refB := a.ReferenceNumber(), b.ReferenceNumber()
	if refA != "" && refB != "" {
		return refA == refB
	}
	if !a.Amount.Equal(b.Amount) || a.Direction != b.Direction {
		return false
	}
	gap := a.ReceivedAt.Sub(b.ReceivedAt)
	if gap < 0 {
		gap = -gap
	}
	return gap <= d.window
}
