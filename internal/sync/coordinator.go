// Package sync orchestrates one pass over the message inbox: classify,
// extract, deduplicate, categorize, persist, then advance the incremental
// cursor. Runs are idempotent; replaying the same inbox produces no new rows.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/spendsync/constants"
	"github.com/joseph-ayodele/spendsync/internal/bankprofile"
	"github.com/joseph-ayodele/spendsync/internal/classify"
	"github.com/joseph-ayodele/spendsync/internal/common"
	"github.com/joseph-ayodele/spendsync/internal/dedupe"
	"github.com/joseph-ayodele/spendsync/internal/entity"
	"github.com/joseph-ayodele/spendsync/internal/extract"
)

// ErrSyncInProgress is returned when a run is requested while another run
// holds the coordinator. Callers retry later; requests are not queued.
var ErrSyncInProgress = errors.New("a sync run is already in progress")

type Coordinator struct {
	source     MessageSource
	store      TransactionStore
	cursors    CursorStore
	registry   *bankprofile.Registry
	extractor  *extract.Extractor
	dedup      *dedupe.Deduplicator
	categorize Categorizer
	logger     *slog.Logger

	lookbackDays int

	mu      stdsync.Mutex
	running bool

	statusMu stdsync.RWMutex
	status   constants.SyncStatus
	lastRun  *entity.SyncSummary
}

type Options struct {
	Source       MessageSource
	Store        TransactionStore
	Cursors      CursorStore
	Registry     *bankprofile.Registry
	Extractor    *extract.Extractor
	Deduplicator *dedupe.Deduplicator
	Categorizer  Categorizer
	LookbackDays int
	Logger       *slog.Logger
}

func NewCoordinator(opts Options) *Coordinator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	lookback := opts.LookbackDays
	if lookback <= 0 {
		lookback = 30
	}
	return &Coordinator{
		source:       opts.Source,
		store:        opts.Store,
		cursors:      opts.Cursors,
		registry:     opts.Registry,
		extractor:    opts.Extractor,
		dedup:        opts.Deduplicator,
		categorize:   opts.Categorizer,
		logger:       logger,
		lookbackDays: lookback,
		status:       constants.SyncStatusIdle,
	}
}

// Run executes one sync pass. When incremental is true the persisted cursor
// bounds the scan; otherwise the full lookback window is read. Only one run
// may be in flight; concurrent calls fail fast with ErrSyncInProgress.
func (c *Coordinator) Run(ctx context.Context, incremental bool) (*entity.SyncSummary, error) {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return nil, ErrSyncInProgress
	}
	c.running = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
	}()

	runID := uuid.New()
	ctx = common.WithSyncRunID(ctx, runID.String())
	log := c.logger.With("run_id", runID.String(), "incremental", incremental)
	c.setStatus(constants.SyncStatusRunning)

	summary, err := c.run(ctx, runID, incremental, log)
	if err != nil {
		c.setStatus(constants.SyncStatusFailed)
		log.Error("sync.run.failed", "error", err)

		// The failed state is momentary: once the outcome is recorded on
		// lastRun the coordinator is Idle again, ready for the next trigger.
		c.statusMu.Lock()
		c.status = constants.SyncStatusIdle
		c.lastRun = &entity.SyncSummary{
			RunID:       runID,
			Incremental: incremental,
			CompletedAt: time.Now(),
			Failed:      true,
			Error:       err.Error(),
		}
		c.statusMu.Unlock()
		return nil, err
	}

	c.statusMu.Lock()
	c.status = constants.SyncStatusIdle
	c.lastRun = summary
	c.statusMu.Unlock()

	log.Info("sync.run.ok",
		"messages_read", summary.MessagesRead,
		"transactional", summary.Transactional,
		"saved", summary.Saved,
		"duplicates", summary.Duplicates,
		"extraction_failures", summary.ExtractionFailures)
	return summary, nil
}

func (c *Coordinator) run(ctx context.Context, runID uuid.UUID, incremental bool, log *slog.Logger) (*entity.SyncSummary, error) {
	var since *time.Time
	cursor := entity.SyncCursor{}
	if incremental {
		var err error
		cursor, err = c.cursors.Cursor(ctx)
		if err != nil {
			return nil, fmt.Errorf("load cursor: %w", err)
		}
		since = cursor.LastSyncAt
	}

	// Capture the window end before reading so messages arriving mid-run are
	// picked up by the next run instead of slipping between cursors.
	windowEnd := time.Now()

	messages, err := c.source.ListMessages(ctx, since, c.lookbackDays)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	summary := &entity.SyncSummary{
		RunID:       runID,
		Incremental: incremental,
	}
	summary.MessagesRead = len(messages)

	var (
		extracted []*entity.Transaction
		maxID     int64
	)
	if cursor.LastMessageID != nil {
		maxID = *cursor.LastMessageID
	}
	for _, msg := range messages {
		if incremental && cursor.LastMessageID != nil && msg.ID <= *cursor.LastMessageID {
			continue
		}
		if msg.ID > maxID {
			maxID = msg.ID
		}
		if !classify.IsTransactionMessage(msg.Body) {
			continue
		}
		summary.Transactional++

		txn, err := c.extractor.Extract(msg, c.registry.Resolve(msg.Sender))
		if err != nil {
			summary.ExtractionFailures++
			log.Warn("sync.extract.skip", "message_id", msg.ID, "error", err)
			continue
		}
		extracted = append(extracted, txn)
	}

	collapsed := c.dedup.CollapseBatch(extracted)
	fresh, droppedByStore, err := c.dedup.FilterAgainstStore(ctx, collapsed)
	if err != nil {
		return nil, fmt.Errorf("deduplicate: %w", err)
	}
	summary.Duplicates = (len(extracted) - len(collapsed)) + droppedByStore

	for _, txn := range fresh {
		cat, err := c.categorize.Categorize(ctx, txn)
		if err != nil {
			return nil, fmt.Errorf("categorize message %d: %w", txn.SourceID, err)
		}
		txn.Category = cat
	}

	if len(fresh) > 0 {
		if err := c.store.SaveBatch(ctx, fresh); err != nil {
			return nil, fmt.Errorf("save transactions: %w", err)
		}
	}
	summary.Saved = len(fresh)

	// Advance the cursor only after the batch is stored. A run that read
	// nothing new still moves the time cursor so the next scan stays short.
	next := entity.SyncCursor{LastSyncAt: &windowEnd}
	if maxID > 0 {
		next.LastMessageID = &maxID
	}
	if err := c.cursors.SetCursor(ctx, next); err != nil {
		return nil, fmt.Errorf("advance cursor: %w", err)
	}

	summary.CompletedAt = time.Now()
	return summary, nil
}

// Status reports the coordinator state and the most recent completed run.
func (c *Coordinator) Status() (constants.SyncStatus, *entity.SyncSummary) {
	c.statusMu.RLock()
	defer c.statusMu.RUnlock()
	return c.status, c.lastRun
}

// ResetCursor clears the incremental checkpoint so the next incremental run
// scans the full lookback window.
func (c *Coordinator) ResetCursor(ctx context.Context) error {
	return c.cursors.Clear(ctx)
}

func (c *Coordinator) setStatus(s constants.SyncStatus) {
	c.statusMu.Lock()
	c.status = s
	c.statusMu.Unlock()
}
