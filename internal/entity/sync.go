package entity

import (
	"time"

	"github.com/google/uuid"
)

// SyncSummary is the result of one sync run. A failed run records Failed and
// the error text; its counters stay zero since nothing was persisted.
type SyncSummary struct {
	RunID              uuid.UUID `json:"run_id"`
	MessagesRead       int       `json:"messages_read"`
	Transactional      int       `json:"transactional"`
	Saved              int       `json:"saved"`
	Duplicates         int       `json:"duplicates"`
	ExtractionFailures int       `json:"extraction_failures"`
	CompletedAt        time.Time `json:"completed_at"`
	Incremental        bool      `json:"incremental"`
	Failed             bool      `json:"failed,omitempty"`
	Error              string    `json:"error,omitempty"`
}

// SyncCursor is the persisted incremental-sync checkpoint.
type SyncCursor struct {
	LastSyncAt    *time.Time `json:"last_sync_at,omitempty"`
	LastMessageID *int64     `json:"last_message_id,omitempty"`
}
