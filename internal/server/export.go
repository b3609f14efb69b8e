package server

import (
	"context"
	"strings"
	"time"

	"github.com/joseph-ayodele/spendsync/constants"
	spendsyncv1 "github.com/joseph-ayodele/spendsync/gen/proto/spendsync/v1"
	"github.com/joseph-ayodele/spendsync/internal/common"
	"github.com/joseph-ayodele/spendsync/internal/utils"
)

// ExportTransactions renders the filtered transactions as an XLSX workbook
// and returns its bytes inline.
func (s *TransactionsService) ExportTransactions(ctx context.Context, req *spendsyncv1.ExportTransactionsRequest) (*spendsyncv1.ExportTransactionsResponse, error) {
	var from, to *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("from_date invalid (YYYY-MM-DD): %v", err)
		}
		from = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("to_date invalid (YYYY-MM-DD): %v", err)
		}
		to = &t
	}
	var category *constants.Category
	if c := strings.TrimSpace(req.GetCategory()); c != "" {
		cat, ok := constants.Canonicalize(c)
		if !ok {
			return nil, common.InvalidArgumentErrorf("unknown category %q", c)
		}
		category = &cat
	}

	data, err := s.exporter.ExportTransactionsXLSX(ctx, from, to, category)
	if err != nil {
		s.logger.Error("failed to export transactions", "error", err)
		return nil, common.InternalErrorf("export transactions: %v", err)
	}
	return &spendsyncv1.ExportTransactionsResponse{Xlsx: data}, nil
}
