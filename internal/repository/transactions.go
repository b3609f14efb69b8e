package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/spendsync/constants"
	"github.com/joseph-ayodele/spendsync/gen/ent"
	"github.com/joseph-ayodele/spendsync/gen/ent/categoryoverride"
	"github.com/joseph-ayodele/spendsync/gen/ent/transaction"
	"github.com/joseph-ayodele/spendsync/internal/common"
	"github.com/joseph-ayodele/spendsync/internal/entity"
	"github.com/joseph-ayodele/spendsync/internal/utils"
)

// ListFilter narrows ListTransactions. Nil fields match everything.
type ListFilter struct {
	From      *time.Time
	To        *time.Time
	Category  *constants.Category
	Direction *entity.Direction
	Limit     int
}

type TransactionRepository interface {
	Exists(ctx context.Context, sourceID int64) (bool, error)
	FindMatches(ctx context.Context, ref string, amount string, direction entity.Direction, around time.Time, window time.Duration) ([]*entity.Transaction, error)
	SaveBatch(ctx context.Context, txns []*entity.Transaction) error
	Get(ctx context.Context, sourceID int64) (*entity.Transaction, error)
	List(ctx context.Context, filter ListFilter) ([]*entity.Transaction, error)
	Delete(ctx context.Context, sourceID int64) error
	UpdateCategory(ctx context.Context, sourceID int64, category constants.Category) error
}

type transactionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTransactionRepository(client *ent.Client, logger *slog.Logger) TransactionRepository {
	return &transactionRepository{
		client: client,
		logger: logger,
	}
}

func (r *transactionRepository) Exists(ctx context.Context, sourceID int64) (bool, error) {
	return r.client.Transaction.Query().
		Where(transaction.ID(sourceID)).
		Exist(ctx)
}

func (r *transactionRepository) FindMatches(ctx context.Context, ref string, amount string, direction entity.Direction, around time.Time, window time.Duration) ([]*entity.Transaction, error) {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	heuristic := transaction.And(
		transaction.AmountEQ(amt),
		transaction.DirectionEQ(transaction.Direction(direction)),
		transaction.ReceivedAtGTE(around.Add(-window)),
		transaction.ReceivedAtLTE(around.Add(window)),
	)

	// A stored referenceless row can still duplicate a referenced candidate,
	// so the reference match widens the amount/direction/window candidate
	// set instead of replacing it. The caller arbitrates the candidates.
	q := r.client.Transaction.Query()
	if ref != "" {
		q = q.Where(transaction.Or(transaction.ReferenceEQ(ref), heuristic))
	} else {
		q = q.Where(heuristic)
	}

	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to query duplicate candidates", "error", err)
		return nil, err
	}
	return utils.ToTransactions(rows), nil
}

// SaveBatch writes every transaction in one database transaction, keyed by
// source message ID so a replayed batch fails on conflict instead of
// double-inserting.
func (r *transactionRepository) SaveBatch(ctx context.Context, txns []*entity.Transaction) error {
	if len(txns) == 0 {
		return nil
	}
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	for _, t := range txns {
		builder := tx.Transaction.Create().
			SetID(t.SourceID).
			SetAmount(t.Amount).
			SetDirection(transaction.Direction(t.Direction)).
			SetNillableMerchant(t.Merchant).
			SetNillableAccountRef(t.AccountRef).
			SetNillableReference(t.Reference).
			SetNillableLocation(t.Location).
			SetTxDate(t.TxDate).
			SetReceivedAt(t.ReceivedAt).
			SetRawBody(t.RawBody).
			SetSender(t.Sender).
			SetCategory(string(t.Category))
		if t.BalanceAfter != nil {
			builder = builder.SetBalanceAfter(*t.BalanceAfter)
		}
		if _, err := builder.Save(ctx); err != nil {
			r.logger.Error("failed to save transaction", "source_id", t.SourceID, "error", err)
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *transactionRepository) Get(ctx context.Context, sourceID int64) (*entity.Transaction, error) {
	row, err := r.client.Transaction.Get(ctx, sourceID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToTransaction(row), nil
}

func (r *transactionRepository) List(ctx context.Context, filter ListFilter) ([]*entity.Transaction, error) {
	q := r.client.Transaction.Query()
	if filter.From != nil {
		q = q.Where(transaction.TxDateGTE(*filter.From))
	}
	if filter.To != nil {
		q = q.Where(transaction.TxDateLTE(*filter.To))
	}
	if filter.Category != nil {
		q = q.Where(transaction.CategoryEQ(string(*filter.Category)))
	}
	if filter.Direction != nil {
		q = q.Where(transaction.DirectionEQ(transaction.Direction(*filter.Direction)))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	rows, err := q.Order(transaction.ByTxDate(), transaction.ByID()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list transactions", "error", err)
		return nil, err
	}
	return utils.ToTransactions(rows), nil
}

// Delete removes a transaction and any category override pinned to it in one
// database transaction.
func (r *transactionRepository) Delete(ctx context.Context, sourceID int64) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.CategoryOverride.Delete().
		Where(categoryoverride.TransactionID(sourceID)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Transaction.DeleteOneID(sourceID).Exec(ctx); err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}
	return tx.Commit()
}

func (r *transactionRepository) UpdateCategory(ctx context.Context, sourceID int64, category constants.Category) error {
	_, err := r.client.Transaction.UpdateOneID(sourceID).
		SetCategory(string(category)).
		Save(ctx)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	return err
}
