package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/joseph-ayodele/spendsync/constants"
	spendsyncv1 "github.com/joseph-ayodele/spendsync/gen/proto/spendsync/v1"
	"github.com/joseph-ayodele/spendsync/internal/categorize"
	"github.com/joseph-ayodele/spendsync/internal/common"
	"github.com/joseph-ayodele/spendsync/internal/entity"
	"github.com/joseph-ayodele/spendsync/internal/export"
	"github.com/joseph-ayodele/spendsync/internal/repository"
	"github.com/joseph-ayodele/spendsync/internal/utils"
)

type TransactionsService struct {
	spendsyncv1.UnimplementedTransactionsServiceServer
	transactions repository.TransactionRepository
	engine       *categorize.Engine
	exporter     *export.Service
	logger       *slog.Logger
}

func NewTransactionsService(transactions repository.TransactionRepository, engine *categorize.Engine, exporter *export.Service, logger *slog.Logger) *TransactionsService {
	return &TransactionsService{
		transactions: transactions,
		engine:       engine,
		exporter:     exporter,
		logger:       logger,
	}
}

func (s *TransactionsService) ListTransactions(ctx context.Context, req *spendsyncv1.ListTransactionsRequest) (*spendsyncv1.ListTransactionsResponse, error) {
	filter, err := listFilterFromRequest(req)
	if err != nil {
		return nil, err
	}

	txns, err := s.transactions.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list transactions", "error", err)
		return nil, common.InternalErrorf("list transactions: %v", err)
	}

	out := make([]*spendsyncv1.Transaction, 0, len(txns))
	for _, t := range txns {
		out = append(out, utils.ToPBTransaction(t))
	}
	return &spendsyncv1.ListTransactionsResponse{Transactions: out}, nil
}

func (s *TransactionsService) GetTransaction(ctx context.Context, req *spendsyncv1.GetTransactionRequest) (*spendsyncv1.GetTransactionResponse, error) {
	if req.GetId() <= 0 {
		return nil, common.InvalidArgumentError("id is required")
	}
	txn, err := s.transactions.Get(ctx, req.GetId())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("transaction not found")
		}
		s.logger.Error("failed to get transaction", "id", req.GetId(), "error", err)
		return nil, common.InternalErrorf("get transaction: %v", err)
	}
	return &spendsyncv1.GetTransactionResponse{Transaction: utils.ToPBTransaction(txn)}, nil
}

func (s *TransactionsService) DeleteTransaction(ctx context.Context, req *spendsyncv1.DeleteTransactionRequest) (*spendsyncv1.DeleteTransactionResponse, error) {
	if req.GetId() <= 0 {
		return nil, common.InvalidArgumentError("id is required")
	}
	if err := s.transactions.Delete(ctx, req.GetId()); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("transaction not found")
		}
		s.logger.Error("failed to delete transaction", "id", req.GetId(), "error", err)
		return nil, common.InternalErrorf("delete transaction: %v", err)
	}
	s.logger.Info("transaction deleted", "id", req.GetId())
	return &spendsyncv1.DeleteTransactionResponse{}, nil
}

// SetCategoryOverride pins a category to one transaction and updates the
// stored row so reads reflect it immediately.
func (s *TransactionsService) SetCategoryOverride(ctx context.Context, req *spendsyncv1.SetCategoryOverrideRequest) (*spendsyncv1.SetCategoryOverrideResponse, error) {
	v := common.NewValidator().
		Field("transaction_id", req.GetTransactionId(), common.Required).
		Field("category", req.GetCategory(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	category, ok := constants.Canonicalize(req.GetCategory())
	if !ok {
		return nil, common.InvalidArgumentErrorf("unknown category %q", req.GetCategory())
	}

	if err := s.engine.SetOverride(ctx, req.GetTransactionId(), category); err != nil {
		s.logger.Error("failed to set category override", "transaction_id", req.GetTransactionId(), "error", err)
		return nil, common.InternalErrorf("set override: %v", err)
	}
	if err := s.transactions.UpdateCategory(ctx, req.GetTransactionId(), category); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("transaction not found")
		}
		s.logger.Error("failed to update transaction category", "transaction_id", req.GetTransactionId(), "error", err)
		return nil, common.InternalErrorf("update category: %v", err)
	}
	if merchant := strings.TrimSpace(req.GetMerchant()); merchant != "" {
		if err := s.engine.LearnMapping(ctx, merchant, category); err != nil {
			if errors.Is(err, categorize.ErrInvalidMerchant) {
				return nil, common.InvalidArgumentError("merchant name is empty after normalization")
			}
			s.logger.Error("failed to learn merchant mapping", "merchant", merchant, "error", err)
			return nil, common.InternalErrorf("learn mapping: %v", err)
		}
	}
	s.logger.Info("category override set", "transaction_id", req.GetTransactionId(), "category", category)
	return &spendsyncv1.SetCategoryOverrideResponse{}, nil
}

func (s *TransactionsService) LearnMerchantMapping(ctx context.Context, req *spendsyncv1.LearnMerchantMappingRequest) (*spendsyncv1.LearnMerchantMappingResponse, error) {
	v := common.NewValidator().
		Field("merchant", req.GetMerchant(), common.Required).
		Field("category", req.GetCategory(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	category, ok := constants.Canonicalize(req.GetCategory())
	if !ok {
		return nil, common.InvalidArgumentErrorf("unknown category %q", req.GetCategory())
	}
	if err := s.engine.LearnMapping(ctx, req.GetMerchant(), category); err != nil {
		if errors.Is(err, categorize.ErrInvalidMerchant) {
			return nil, common.InvalidArgumentError("merchant name is empty after normalization")
		}
		s.logger.Error("failed to learn merchant mapping", "merchant", req.GetMerchant(), "error", err)
		return nil, common.InternalErrorf("learn mapping: %v", err)
	}
	return &spendsyncv1.LearnMerchantMappingResponse{}, nil
}

func (s *TransactionsService) ResetMerchantMappings(ctx context.Context, _ *spendsyncv1.ResetMerchantMappingsRequest) (*spendsyncv1.ResetMerchantMappingsResponse, error) {
	n, err := s.engine.ResetMappings(ctx)
	if err != nil {
		s.logger.Error("failed to reset merchant mappings", "error", err)
		return nil, common.InternalErrorf("reset mappings: %v", err)
	}
	return &spendsyncv1.ResetMerchantMappingsResponse{Removed: int32(n)}, nil
}

func listFilterFromRequest(req *spendsyncv1.ListTransactionsRequest) (repository.ListFilter, error) {
	var filter repository.ListFilter

	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			return filter, common.InvalidArgumentErrorf("from_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.From = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			return filter, common.InvalidArgumentErrorf("to_date invalid (YYYY-MM-DD): %v", err)
		}
		// Inclusive end of day.
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}
	if c := strings.TrimSpace(req.GetCategory()); c != "" {
		category, ok := constants.Canonicalize(c)
		if !ok {
			return filter, common.InvalidArgumentErrorf("unknown category %q", c)
		}
		filter.Category = &category
	}
	if d := strings.TrimSpace(req.GetDirection()); d != "" {
		dir := entity.Direction(strings.ToUpper(d))
		switch dir {
		case entity.DirectionDebit, entity.DirectionCredit, entity.DirectionUnknown:
			filter.Direction = &dir
		default:
			return filter, common.InvalidArgumentErrorf("unknown direction %q", d)
		}
	}
	if req.GetLimit() > 0 {
		filter.Limit = int(req.GetLimit())
	}
	return filter, nil
}
