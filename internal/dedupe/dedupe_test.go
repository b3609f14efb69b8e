package dedupe

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/spendsync/internal/entity"
)

var base = time.Date(2026, time.January, 3, 10, 0, 0, 0, time.UTC)

func txn(sourceID int64, amount, ref string, dir entity.Direction, offset time.Duration) *entity.Transaction {
	t := &entity.Transaction{
		SourceID:   sourceID,
		Amount:     decimal.RequireFromString(amount),
		Direction:  dir,
		ReceivedAt: base.Add(offset),
	}
	if ref != "" {
		t.Reference = &ref
	}
	return t
}

type fakeStore struct {
	saved []*entity.Transaction
}

func (s *fakeStore) Exists(_ context.Context, sourceID int64) (bool, error) {
	for _, t := range s.saved {
		if t.SourceID == sourceID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) FindMatches(_ context.Context, ref, amount string, dir entity.Direction, around time.Time, window time.Duration) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range s.saved {
		if ref != "" && t.ReferenceNumber() == ref {
			out = append(out, t)
			continue
		}
		if t.Amount.String() != amount || t.Direction != dir {
			continue
		}
		gap := t.ReceivedAt.Sub(around)
		if gap < 0 {
			gap = -gap
		}
		if gap <= window {
			out = append(out, t)
		}
	}
	return out, nil
}

func TestCollapseBatch(t *testing.T) {
	d := New(&fakeStore{}, DefaultWindow, nil)

	tests := []struct {
		name    string
		in      []*entity.Transaction
		wantIDs []int64
	}{
		{
			name: "same reference collapses",
			in: []*entity.Transaction{
				txn(2, "500.00", "REF123", entity.DirectionDebit, 30*time.Second),
				txn(1, "500.00", "REF123", entity.DirectionDebit, 0),
			},
			wantIDs: []int64{1},
		},
		{
			name: "no reference within window collapses",
			in: []*entity.Transaction{
				txn(1, "500.00", "", entity.DirectionDebit, 0),
				txn(2, "500.00", "", entity.DirectionDebit, 2*time.Minute),
			},
			wantIDs: []int64{1},
		},
		{
			name: "no reference outside window kept",
			in: []*entity.Transaction{
				txn(1, "500.00", "", entity.DirectionDebit, 0),
				txn(2, "500.00", "", entity.DirectionDebit, 10*time.Minute),
			},
			wantIDs: []int64{1, 2},
		},
		{
			name: "different references kept",
			in: []*entity.Transaction{
				txn(1, "500.00", "REF1", entity.DirectionDebit, 0),
				txn(2, "500.00", "REF2", entity.DirectionDebit, 10*time.Second),
			},
			wantIDs: []int64{1, 2},
		},
		{
			name: "different direction kept",
			in: []*entity.Transaction{
				txn(1, "500.00", "", entity.DirectionDebit, 0),
				txn(2, "500.00", "", entity.DirectionCredit, 10*time.Second),
			},
			wantIDs: []int64{1, 2},
		},
		{
			name: "different amount kept",
			in: []*entity.Transaction{
				txn(1, "500.00", "", entity.DirectionDebit, 0),
				txn(2, "501.00", "", entity.DirectionDebit, 10*time.Second),
			},
			wantIDs: []int64{1, 2},
		},
		{
			name:    "empty batch",
			in:      nil,
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.CollapseBatch(tt.in)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("CollapseBatch() kept %d transactions, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].SourceID != want {
					t.Errorf("kept[%d].SourceID = %d, want %d", i, got[i].SourceID, want)
				}
			}
		})
	}
}

func TestCollapseBatchKeepsEarliest(t *testing.T) {
	d := New(&fakeStore{}, DefaultWindow, nil)

	in := []*entity.Transaction{
		txn(3, "500.00", "REF123", entity.DirectionDebit, time.Minute),
		txn(1, "500.00", "REF123", entity.DirectionDebit, 0),
		txn(2, "500.00", "REF123", entity.DirectionDebit, 30*time.Second),
	}
	got := d.CollapseBatch(in)
	if len(got) != 1 {
		t.Fatalf("CollapseBatch() kept %d, want 1", len(got))
	}
	if got[0].SourceID != 1 {
		t.Errorf("kept SourceID = %d, want 1 (earliest)", got[0].SourceID)
	}
}

func TestFilterAgainstStore(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{saved: []*entity.Transaction{
		txn(10, "500.00", "REF500", entity.DirectionDebit, 0),
		txn(11, "75.00", "", entity.DirectionDebit, 0),
	}}
	d := New(store, DefaultWindow, nil)

	in := []*entity.Transaction{
		// Same source ID as a saved row.
		txn(10, "999.00", "", entity.DirectionDebit, time.Hour),
		// Same reference as a saved row, new source ID.
		txn(20, "500.00", "REF500", entity.DirectionDebit, time.Hour),
		// Referenceless, matches a saved row inside the window.
		txn(21, "75.00", "", entity.DirectionDebit, time.Minute),
		// Referenceless, same shape but outside the window.
		txn(22, "75.00", "", entity.DirectionDebit, time.Hour),
		// Genuinely new.
		txn(23, "42.00", "REF42", entity.DirectionCredit, time.Minute),
	}

	kept, dropped, err := d.FilterAgainstStore(ctx, in)
	if err != nil {
		t.Fatalf("FilterAgainstStore() error = %v", err)
	}
	if dropped != 3 {
		t.Errorf("dropped = %d, want 3", dropped)
	}
	wantIDs := []int64{22, 23}
	if len(kept) != len(wantIDs) {
		t.Fatalf("kept %d transactions, want %d", len(kept), len(wantIDs))
	}
	for i, want := range wantIDs {
		if kept[i].SourceID != want {
			t.Errorf("kept[%d].SourceID = %d, want %d", i, kept[i].SourceID, want)
		}
	}
}

func TestFilterAgainstStoreReferencedCandidateMatchesStoredReferencelessRow(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{saved: []*entity.Transaction{
		// Generic alert persisted by an earlier run without a reference.
		txn(40, "250.00", "", entity.DirectionDebit, 0),
		// Referenced row of the same shape as candidate 51 below.
		txn(41, "90.00", "REF90", entity.DirectionDebit, 0),
	}}
	d := New(store, DefaultWindow, nil)

	in := []*entity.Transaction{
		// UPI-specific alert for the event behind row 40, now carrying a
		// reference. Must still be recognized as the same transaction.
		txn(50, "250.00", "UPI777", entity.DirectionDebit, 30*time.Second),
		// Same amount and window as row 41 but a different reference:
		// a genuinely distinct transaction.
		txn(51, "90.00", "REF91", entity.DirectionDebit, time.Minute),
	}

	kept, dropped, err := d.FilterAgainstStore(ctx, in)
	if err != nil {
		t.Fatalf("FilterAgainstStore() error = %v", err)
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	if len(kept) != 1 || kept[0].SourceID != 51 {
		t.Fatalf("kept = %d transactions, want only source 51", len(kept))
	}
}
