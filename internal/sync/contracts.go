package sync

import (
	"context"
	"time"

	"github.com/joseph-ayodele/spendsync/constants"
	"github.com/joseph-ayodele/spendsync/internal/entity"
)

// MessageSource lists raw inbox messages for a sync run. A nil since means a
// full scan bounded by lookbackDays; otherwise only messages arriving after
// since are returned. Implementations return messages ordered by arrival.
type MessageSource interface {
	ListMessages(ctx context.Context, since *time.Time, lookbackDays int) ([]entity.RawMessage, error)
}

// TransactionStore persists extracted transactions. It also serves the
// dedupe package's lookup needs.
type TransactionStore interface {
	Exists(ctx context.Context, sourceID int64) (bool, error)
	FindMatches(ctx context.Context, ref string, amount string, direction entity.Direction, around time.Time, window time.Duration) ([]*entity.Transaction, error)
	// SaveBatch writes all transactions in one database transaction; either
	// every row lands or none do.
	SaveBatch(ctx context.Context, txns []*entity.Transaction) error
}

// CursorStore persists the incremental-sync position. The cursor only moves
// forward after a run's transactions are safely stored.
type CursorStore interface {
	Cursor(ctx context.Context) (entity.SyncCursor, error)
	SetCursor(ctx context.Context, cursor entity.SyncCursor) error
	Clear(ctx context.Context) error
}

// Categorizer assigns a category to one transaction.
type Categorizer interface {
	Categorize(ctx context.Context, txn *entity.Transaction) (constants.Category, error)
}
