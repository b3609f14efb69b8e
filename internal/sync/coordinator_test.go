package sync

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/joseph-ayodele/spendsync/constants"
	"github.com/joseph-ayodele/spendsync/internal/bankprofile"
	"github.com/joseph-ayodele/spendsync/internal/dedupe"
	"github.com/joseph-ayodele/spendsync/internal/entity"
	"github.com/joseph-ayodele/spendsync/internal/extract"
)

var inboxBase = time.Date(2026, time.January, 3, 10, 0, 0, 0, time.UTC)

func inboxMessages() []entity.RawMessage {
	return []entity.RawMessage{
		{ID: 1, Sender: "VM-HDFCBK", ArrivedAt: inboxBase,
			Body: "Rs.500.00 debited from A/c XX1234 on 03-01-26 at Amazon. Ref 123456789. Avl Bal Rs.5000.00"},
		{ID: 2, Sender: "VM-HDFCBK", ArrivedAt: inboxBase.Add(time.Minute),
			Body: "Your OTP is 482913. Do not share."},
		{ID: 3, Sender: "BZ-PROMOS", ArrivedAt: inboxBase.Add(2 * time.Minute),
			Body: "Mega sale! Get Rs.500 off on orders above Rs.2,000. Shop now!"},
		{ID: 4, Sender: "VM-HDFCBK", ArrivedAt: inboxBase.Add(3 * time.Minute),
			Body: "Alert: Rs.500.00 debited at Amazon on 03-01-26. Ref 123456789."},
		{ID: 5, Sender: "VM-HDFCBK", ArrivedAt: inboxBase.Add(4 * time.Minute),
			Body: "INR 2,000.00 credited to A/c XX1234. Ref 555111222."},
		{ID: 6, Sender: "VM-HDFCBK", ArrivedAt: inboxBase.Add(5 * time.Minute),
			Body: "Rs.0 debited from A/c XX1234. Ref 999000111."},
	}
}

type fakeSource struct {
	messages  []entity.RawMessage
	lastSince *time.Time
	block     chan struct{}
}

func (s *fakeSource) ListMessages(_ context.Context, since *time.Time, _ int) ([]entity.RawMessage, error) {
	if s.block != nil {
		<-s.block
	}
	s.lastSince = since
	if since == nil {
		return s.messages, nil
	}
	var out []entity.RawMessage
	for _, m := range s.messages {
		if m.ArrivedAt.After(*since) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeTxnStore struct {
	saved    []*entity.Transaction
	failSave bool
}

func (s *fakeTxnStore) Exists(_ context.Context, sourceID int64) (bool, error) {
	for _, t := range s.saved {
		if t.SourceID == sourceID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeTxnStore) FindMatches(_ context.Context, ref, amount string, dir entity.Direction, around time.Time, window time.Duration) ([]*entity.Transaction, error) {
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

func (s *fakeTxnStore) SaveBatch(_ context.Context, txns []*entity.Transaction) error {
	if s.failSave {
		return errors.New("database unavailable")
	}
	s.saved = append(s.saved, txns...)
	return nil
}

type fakeCursorStore struct {
	cursor entity.SyncCursor
	sets   int
}

func (s *fakeCursorStore) Cursor(_ context.Context) (entity.SyncCursor, error) {
	return s.cursor, nil
}

func (s *fakeCursorStore) SetCursor(_ context.Context, c entity.SyncCursor) error {
	s.cursor = c
	s.sets++
	return nil
}

func (s *fakeCursorStore) Clear(_ context.Context) error {
	s.cursor = entity.SyncCursor{}
	return nil
}

type fakeCategorizer struct{}

func (fakeCategorizer) Categorize(_ context.Context, _ *entity.Transaction) (constants.Category, error) {
	return constants.Shopping, nil
}

func newTestCoordinator(t *testing.T, source *fakeSource, store *fakeTxnStore, cursors *fakeCursorStore) *Coordinator {
	t.Helper()
	registry, err := bankprofile.Load(slog.Default())
	if err != nil {
		t.Fatalf("bankprofile.Load() error = %v", err)
	}
	return NewCoordinator(Options{
		Source:       source,
		Store:        store,
		Cursors:      cursors,
		Registry:     registry,
		Extractor:    extract.New(nil),
		Deduplicator: dedupe.New(store, dedupe.DefaultWindow, nil),
		Categorizer:  fakeCategorizer{},
		LookbackDays: 30,
	})
}

func TestRunFullPass(t *testing.T) {
	source := &fakeSource{messages: inboxMessages()}
	store := &fakeTxnStore{}
	cursors := &fakeCursorStore{}
	c := newTestCoordinator(t, source, store, cursors)

	summary, err := c.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if summary.MessagesRead != 6 {
		t.Errorf("MessagesRead = %d, want 6", summary.MessagesRead)
	}
	if summary.Transactional != 4 {
		t.Errorf("Transactional = %d, want 4", summary.Transactional)
	}
	if summary.ExtractionFailures != 1 {
		t.Errorf("ExtractionFailures = %d, want 1", summary.ExtractionFailures)
	}
	if summary.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1", summary.Duplicates)
	}
	if summary.Saved != 2 {
		t.Errorf("Saved = %d, want 2", summary.Saved)
	}
	if len(store.saved) != 2 {
		t.Fatalf("store holds %d transactions, want 2", len(store.saved))
	}
	for _, txn := range store.saved {
		if txn.Category != constants.Shopping {
			t.Errorf("transaction %d category = %s, want %s", txn.SourceID, txn.Category, constants.Shopping)
		}
	}
	if cursors.cursor.LastSyncAt == nil {
		t.Error("cursor time not advanced")
	}
	if cursors.cursor.LastMessageID == nil || *cursors.cursor.LastMessageID != 6 {
		t.Errorf("cursor message ID = %v, want 6", cursors.cursor.LastMessageID)
	}

	status, last := c.Status()
	if status != constants.SyncStatusIdle {
		t.Errorf("status = %s, want %s", status, constants.SyncStatusIdle)
	}
	if last == nil || last.RunID != summary.RunID {
		t.Error("last run summary not recorded")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	source := &fakeSource{messages: inboxMessages()}
	store := &fakeTxnStore{}
	cursors := &fakeCursorStore{}
	c := newTestCoordinator(t, source, store, cursors)

	ctx := context.Background()
	if _, err := c.Run(ctx, false); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	before := len(store.saved)

	summary, err := c.Run(ctx, false)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if summary.Saved != 0 {
		t.Errorf("second run Saved = %d, want 0", summary.Saved)
	}
	if len(store.saved) != before {
		t.Errorf("store grew from %d to %d on replay", before, len(store.saved))
	}
}

func TestRunIncrementalUsesCursor(t *testing.T) {
	source := &fakeSource{messages: inboxMessages()}
	store := &fakeTxnStore{}
	cursors := &fakeCursorStore{}
	c := newTestCoordinator(t, source, store, cursors)

	ctx := context.Background()
	if _, err := c.Run(ctx, true); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if source.lastSince != nil {
		t.Error("first incremental run passed a since bound, want nil")
	}
	firstCursor := cursors.cursor

	summary, err := c.Run(ctx, true)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if source.lastSince == nil || !source.lastSince.Equal(*firstCursor.LastSyncAt) {
		t.Errorf("second run since = %v, want %v", source.lastSince, firstCursor.LastSyncAt)
	}
	if summary.MessagesRead != 0 {
		t.Errorf("MessagesRead = %d, want 0", summary.MessagesRead)
	}
	if summary.Saved != 0 {
		t.Errorf("Saved = %d, want 0", summary.Saved)
	}

	// Empty runs still move the time cursor and keep the message high-water
	// mark.
	if cursors.sets != 2 {
		t.Errorf("cursor writes = %d, want 2", cursors.sets)
	}
	if cursors.cursor.LastMessageID == nil || *cursors.cursor.LastMessageID != 6 {
		t.Errorf("cursor message ID = %v, want 6", cursors.cursor.LastMessageID)
	}
}

func TestRunSaveFailureLeavesCursorAlone(t *testing.T) {
	source := &fakeSource{messages: inboxMessages()}
	store := &fakeTxnStore{failSave: true}
	cursors := &fakeCursorStore{}
	c := newTestCoordinator(t, source, store, cursors)

	if _, err := c.Run(context.Background(), true); err == nil {
		t.Fatal("Run() succeeded, want persistence error")
	}
	if cursors.sets != 0 {
		t.Errorf("cursor writes = %d, want 0 after failed save", cursors.sets)
	}

	// The coordinator settles back to Idle; the failure lives on the last
	// run summary.
	status, last := c.Status()
	if status != constants.SyncStatusIdle {
		t.Errorf("status = %s, want %s", status, constants.SyncStatusIdle)
	}
	if last == nil || !last.Failed {
		t.Fatalf("last run = %+v, want a failed summary", last)
	}
	if last.Error == "" {
		t.Error("failed summary carries no error text")
	}
	if last.CompletedAt.IsZero() {
		t.Error("failed summary carries no completion time")
	}
}

func TestRunRejectsConcurrentInvocation(t *testing.T) {
	source := &fakeSource{messages: inboxMessages(), block: make(chan struct{})}
	store := &fakeTxnStore{}
	cursors := &fakeCursorStore{}
	c := newTestCoordinator(t, source, store, cursors)

	done := make(chan error, 1)
	go func() {
		_, err := c.Run(context.Background(), false)
		done <- err
	}()

	// Wait for the first run to take the slot.
	deadline := time.After(2 * time.Second)
	for {
		status, _ := c.Status()
		if status == constants.SyncStatusRunning {
			break
		}
		select {
		case <-deadline:
			t.Fatal("first run never started")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if _, err := c.Run(context.Background(), false); !errors.Is(err, ErrSyncInProgress) {
		t.Errorf("concurrent Run() error = %v, want ErrSyncInProgress", err)
	}

	close(source.block)
	if err := <-done; err != nil {
		t.Errorf("first Run() error = %v", err)
	}
}

func TestResetCursor(t *testing.T) {
	source := &fakeSource{messages: inboxMessages()}
	store := &fakeTxnStore{}
	cursors := &fakeCursorStore{}
	c := newTestCoordinator(t, source, store, cursors)

	ctx := context.Background()
	if _, err := c.Run(ctx, true); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := c.ResetCursor(ctx); err != nil {
		t.Fatalf("ResetCursor() error = %v", err)
	}
	if cursors.cursor.LastSyncAt != nil || cursors.cursor.LastMessageID != nil {
		t.Error("cursor not cleared")
	}
}
