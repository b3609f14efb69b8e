package repository

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/spendsync/gen/ent"
	"github.com/joseph-ayodele/spendsync/internal/entity"
)

// cursorRowID is the fixed key of the single sync_cursors row.
const cursorRowID = 1

type CursorRepository interface {
	Cursor(ctx context.Context) (entity.SyncCursor, error)
	SetCursor(ctx context.Context, cursor entity.SyncCursor) error
	Clear(ctx context.Context) error
}

type cursorRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCursorRepository(client *ent.Client, logger *slog.Logger) CursorRepository {
	return &cursorRepository{
		client: client,
		logger: logger,
	}
}

func (r *cursorRepository) Cursor(ctx context.Context) (entity.SyncCursor, error) {
	row, err := r.client.SyncCursor.Get(ctx, cursorRowID)
	if err != nil {
		if ent.IsNotFound(err) {
			return entity.SyncCursor{}, nil
		}
		return entity.SyncCursor{}, err
	}
	return entity.SyncCursor{
		LastSyncAt:    row.LastSyncAt,
		LastMessageID: row.LastMessageID,
	}, nil
}

func (r *cursorRepository) SetCursor(ctx context.Context, cursor entity.SyncCursor) error {
	update := r.client.SyncCursor.UpdateOneID(cursorRowID).
		SetNillableLastSyncAt(cursor.LastSyncAt).
		SetNillableLastMessageID(cursor.LastMessageID)
	if _, err := update.Save(ctx); err != nil {
		if !ent.IsNotFound(err) {
			return err
		}
		_, err = r.client.SyncCursor.Create().
			SetID(cursorRowID).
			SetNillableLastSyncAt(cursor.LastSyncAt).
			SetNillableLastMessageID(cursor.LastMessageID).
			Save(ctx)
		return err
	}
	return nil
}

func (r *cursorRepository) Clear(ctx context.Context) error {
	err := r.client.SyncCursor.UpdateOneID(cursorRowID).
		ClearLastSyncAt().
		ClearLastMessageID().
		Exec(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	return err
}
