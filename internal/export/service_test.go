package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/spendsync/constants"
	"github.com/joseph-ayodele/spendsync/internal/entity"
	"github.com/joseph-ayodele/spendsync/internal/repository"
)

type fakeTransactionRepo struct {
	txns       []*entity.Transaction
	lastFilter repository.ListFilter
}

func (f *fakeTransactionRepo) Exists(context.Context, int64) (bool, error) { return false, nil }

func (f *fakeTransactionRepo) FindMatches(context.Context, string, string, entity.Direction, time.Time, time.Duration) ([]*entity.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) SaveBatch(context.Context, []*entity.Transaction) error { return nil }

func (f *fakeTransactionRepo) Get(context.Context, int64) (*entity.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) List(_ context.Context, filter repository.ListFilter) ([]*entity.Transaction, error) {
	f.lastFilter = filter
	return f.txns, nil
}

func (f *fakeTransactionRepo) Delete(context.Context, int64) error { return nil }

func (f *fakeTransactionRepo) UpdateCategory(context.Context, int64, constants.Category) error {
	return nil
}

func sampleTransactions() []*entity.Transaction {
	merchant := "Amazon"
	ref := "123456789"
	bal := decimal.RequireFromString("5000.00")
	return []*entity.Transaction{
		{
			SourceID:     1,
			Amount:       decimal.RequireFromString("500.00"),
			Direction:    entity.DirectionDebit,
			Merchant:     &merchant,
			Reference:    &ref,
			TxDate:       time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC),
			ReceivedAt:   time.Date(2026, time.January, 3, 10, 0, 0, 0, time.UTC),
			Sender:       "VM-HDFCBK",
			BalanceAfter: &bal,
			Category:     constants.Shopping,
		},
		{
			SourceID:   2,
			Amount:     decimal.RequireFromString("2000.00"),
			Direction:  entity.DirectionCredit,
			TxDate:     time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC),
			ReceivedAt: time.Date(2026, time.January, 4, 9, 0, 0, 0, time.UTC),
			Sender:     "AD-SBIINB",
			Category:   constants.Income,
		},
	}
}

func TestExportTransactionsXLSX(t *testing.T) {
	repo := &fakeTransactionRepo{txns: sampleTransactions()}
	s := NewService(repo, nil)

	data, err := s.ExportTransactionsXLSX(context.Background(), nil, nil, nil)
	if err != nil {
		t.Fatalf("ExportTransactionsXLSX() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("workbook is empty")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	// Header plus two data rows.
	if len(rows) != 3 {
		t.Fatalf("sheet has %d rows, want 3", len(rows))
	}
	if rows[0][0] != "Transaction Date" {
		t.Errorf("header[0] = %q, want %q", rows[0][0], "Transaction Date")
	}
	if rows[1][3] != "Amazon" {
		t.Errorf("row 1 merchant = %q, want %q", rows[1][3], "Amazon")
	}
	if rows[2][1] != "CREDIT" {
		t.Errorf("row 2 direction = %q, want %q", rows[2][1], "CREDIT")
	}
}

func TestExportNormalizesDateWindow(t *testing.T) {
	repo := &fakeTransactionRepo{}
	s := NewService(repo, nil)

	from := time.Date(2026, time.January, 1, 13, 45, 0, 0, time.UTC)
	if _, err := s.ExportTransactionsXLSX(context.Background(), &from, nil, nil); err != nil {
		t.Fatalf("ExportTransactionsXLSX() error = %v", err)
	}

	if repo.lastFilter.From == nil || !repo.lastFilter.From.Equal(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("From = %v, want start of 2026-01-01", repo.lastFilter.From)
	}
	if repo.lastFilter.To == nil {
		t.Error("To = nil, want defaulted end bound")
	}
}
