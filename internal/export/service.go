package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/spendsync/constants"
	"github.com/joseph-ayodele/spendsync/internal/repository"
)

// Service is a tiny façade over the transaction repository that produces
// XLSX bytes for exports.
type Service struct {
	transactions repository.TransactionRepository
	logger       *slog.Logger
}

func NewService(transactions repository.TransactionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{transactions: transactions, logger: logger}
}

// ExportTransactionsXLSX returns an XLSX workbook (as bytes) for the given
// date window and optional category.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all transactions.
func (s *Service) ExportTransactionsXLSX(ctx context.Context, from, to *time.Time, category *constants.Category) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	txns, err := s.transactions.List(ctx, repository.ListFilter{
		From:     fromDate,
		To:       toDate,
		Category: category,
	})
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Transactions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Transaction Date",
		"Direction",
		"Amount",
		"Merchant",
		"Category",
		"Reference",
		"Account",
		"Balance After",
		"Sender",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, txn := range txns {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, txn.TxDate.Format("2006-01-02"))
		write(2, string(txn.Direction))
		write(3, txn.Amount.String())
		write(4, txn.MerchantName())
		write(5, string(txn.Category))
		write(6, txn.ReferenceNumber())
		if txn.AccountRef != nil {
			write(7, *txn.AccountRef)
		}
		if txn.BalanceAfter != nil {
			write(8, txn.BalanceAfter.String())
		}
		write(9, txn.Sender)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", row-2,
		"bytes", buf.Len(),
		"elapsed", time.Since(start).String())
	return buf.Bytes(), nil
}
