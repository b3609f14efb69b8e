package server

import (
	"testing"
	"time"

	"github.com/joseph-ayodele/spendsync/constants"
	spendsyncv1 "github.com/joseph-ayodele/spendsync/gen/proto/spendsync/v1"
	"github.com/joseph-ayodele/spendsync/internal/entity"
)

func TestListFilterFromRequest(t *testing.T) {
	t.Run("full filter", func(t *testing.T) {
		filter, err := listFilterFromRequest(&spendsyncv1.ListTransactionsRequest{
			FromDate:  "2026-01-01",
			ToDate:    "2026-01-31",
			Category:  "food",
			Direction: "debit",
			Limit:     50,
		})
		if err != nil {
			t.Fatalf("listFilterFromRequest() error = %v", err)
		}
		if filter.From == nil || !filter.From.Equal(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("From = %v, want 2026-01-01", filter.From)
		}
		if filter.To == nil || filter.To.Before(time.Date(2026, time.January, 31, 23, 59, 59, 0, time.UTC)) {
			t.Errorf("To = %v, want end of 2026-01-31", filter.To)
		}
		if filter.Category == nil || *filter.Category != constants.Food {
			t.Errorf("Category = %v, want Food", filter.Category)
		}
		if filter.Direction == nil || *filter.Direction != entity.DirectionDebit {
			t.Errorf("Direction = %v, want DEBIT", filter.Direction)
		}
		if filter.Limit != 50 {
			t.Errorf("Limit = %d, want 50", filter.Limit)
		}
	})

	t.Run("empty request", func(t *testing.T) {
		filter, err := listFilterFromRequest(&spendsyncv1.ListTransactionsRequest{})
		if err != nil {
			t.Fatalf("listFilterFromRequest() error = %v", err)
		}
		if filter.From != nil || filter.To != nil || filter.Category != nil || filter.Direction != nil {
			t.Errorf("expected empty filter, got %+v", filter)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		if _, err := listFilterFromRequest(&spendsyncv1.ListTransactionsRequest{FromDate: "03-01-2026"}); err == nil {
			t.Error("expected error for non-ISO date")
		}
	})

	t.Run("bad category", func(t *testing.T) {
		if _, err := listFilterFromRequest(&spendsyncv1.ListTransactionsRequest{Category: "gambling"}); err == nil {
			t.Error("expected error for unknown category")
		}
	})

	t.Run("bad direction", func(t *testing.T) {
		if _, err := listFilterFromRequest(&spendsyncv1.ListTransactionsRequest{Direction: "sideways"}); err == nil {
			t.Error("expected error for unknown direction")
		}
	})
}
