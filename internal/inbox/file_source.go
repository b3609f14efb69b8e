// Package inbox provides message sources for sync runs. The file source
// reads an exported inbox dump: a JSON array of raw messages, the format
// produced by common SMS backup tools.
package inbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/joseph-ayodele/spendsync/internal/entity"
)

type FileSource struct {
	path   string
	logger *slog.Logger
}

func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{path: path, logger: logger}
}

// ListMessages reads the dump and returns messages in arrival order. A nil
// since bounds the scan by lookbackDays instead. Records that fail to decode
// are logged and skipped; one bad record does not sink the run.
func (s *FileSource) ListMessages(ctx context.Context, since *time.Time, lookbackDays int) ([]entity.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read inbox file: %w", err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse inbox file %s: %w", s.path, err)
	}

	cutoff := time.Time{}
	if since != nil {
		cutoff = *since
	} else if lookbackDays > 0 {
		cutoff = time.Now().AddDate(0, 0, -lookbackDays)
	}

	messages := make([]entity.RawMessage, 0, len(records))
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var msg entity.RawMessage
		if err := json.Unmarshal(rec, &msg); err != nil {
			s.logger.Warn("inbox.record.skip", "index", i, "error", err)
			continue
		}
		if msg.ID == 0 || msg.Sender == "" {
			s.logger.Warn("inbox.record.skip", "index", i, "error", "missing id or sender")
			continue
		}
		if !cutoff.IsZero() && !msg.ArrivedAt.After(cutoff) {
			continue
		}
		messages = append(messages, msg)
	}

	sort.Slice(messages, func(i, j int) bool {
		if messages[i].ArrivedAt.Equal(messages[j].ArrivedAt) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].ArrivedAt.Before(messages[j].ArrivedAt)
	})

	s.logger.Debug("inbox.list.ok", "total", len(records), "returned", len(messages))
	return messages, nil
}
