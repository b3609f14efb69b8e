package inbox

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeInbox(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inbox.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write inbox file: %v", err)
	}
	return path
}

func TestListMessages(t *testing.T) {
	path := writeInbox(t, `[
		{"id": 2, "sender": "VM-HDFCBK", "body": "second", "arrived_at": "2026-01-03T10:05:00Z"},
		{"id": 1, "sender": "VM-HDFCBK", "body": "first", "arrived_at": "2026-01-03T10:00:00Z"},
		{"id": 3, "sender": "AD-SBIINB", "body": "third", "arrived_at": "2026-01-03T10:10:00Z"}
	]`)
	s := NewFileSource(path, nil)

	got, err := s.ListMessages(context.Background(), nil, 0)
	if err != nil {
		t.Fatalf("ListMessages() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d messages, want 3", len(got))
	}
	for i, wantID := range []int64{1, 2, 3} {
		if got[i].ID != wantID {
			t.Errorf("messages[%d].ID = %d, want %d (arrival order)", i, got[i].ID, wantID)
		}
	}
}

func TestListMessagesSinceBound(t *testing.T) {
	path := writeInbox(t, `[
		{"id": 1, "sender": "VM-HDFCBK", "body": "old", "arrived_at": "2026-01-03T10:00:00Z"},
		{"id": 2, "sender": "VM-HDFCBK", "body": "new", "arrived_at": "2026-01-03T11:00:00Z"}
	]`)
	s := NewFileSource(path, nil)

	since := time.Date(2026, time.January, 3, 10, 30, 0, 0, time.UTC)
	got, err := s.ListMessages(context.Background(), &since, 30)
	if err != nil {
		t.Fatalf("ListMessages() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("got %v, want only message 2", got)
	}
}

func TestListMessagesSkipsCorruptRecords(t *testing.T) {
	path := writeInbox(t, `[
		{"id": 1, "sender": "VM-HDFCBK", "body": "good", "arrived_at": "2026-01-03T10:00:00Z"},
		{"id": "not-a-number", "sender": "VM-HDFCBK"},
		{"sender": "VM-HDFCBK", "body": "missing id", "arrived_at": "2026-01-03T10:01:00Z"},
		{"id": 4, "body": "missing sender", "arrived_at": "2026-01-03T10:02:00Z"},
		{"id": 5, "sender": "AD-SBIINB", "body": "also good", "arrived_at": "2026-01-03T10:03:00Z"}
	]`)
	s := NewFileSource(path, nil)

	got, err := s.ListMessages(context.Background(), nil, 0)
	if err != nil {
		t.Fatalf("ListMessages() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d messages, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 5 {
		t.Errorf("kept IDs %d and %d, want 1 and 5", got[0].ID, got[1].ID)
	}
}

func TestListMessagesRejectsBadFile(t *testing.T) {
	s := NewFileSource(writeInbox(t, `{"not": "an array"}`), nil)
	if _, err := s.ListMessages(context.Background(), nil, 0); err == nil {
		t.Error("ListMessages() succeeded on a non-array file, want error")
	}

	s = NewFileSource(filepath.Join(t.TempDir(), "missing.json"), nil)
	if _, err := s.ListMessages(context.Background(), nil, 0); err == nil {
		t.Error("ListMessages() succeeded on a missing file, want error")
	}
}
