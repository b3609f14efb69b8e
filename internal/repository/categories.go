package repository

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/spendsync/constants"
	"github.com/joseph-ayodele/spendsync/gen/ent"
	"github.com/joseph-ayodele/spendsync/gen/ent/categoryoverride"
	"github.com/joseph-ayodele/spendsync/gen/ent/merchantmapping"
)

// CategoryRepository persists per-transaction overrides and learned merchant
// mappings. It backs the categorization engine's stores.
type CategoryRepository interface {
	GetOverride(ctx context.Context, transactionID int64) (constants.Category, bool, error)
	SetOverride(ctx context.Context, transactionID int64, category constants.Category) error
	GetMapping(ctx context.Context, merchant string) (constants.Category, bool, error)
	SetMapping(ctx context.Context, merchant string, category constants.Category) error
	AllMappings(ctx context.Context) (map[string]constants.Category, error)
	ClearMappings(ctx context.Context) (int, error)
}

type categoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCategoryRepository(client *ent.Client, logger *slog.Logger) CategoryRepository {
	return &categoryRepository{
		client: client,
		logger: logger,
	}
}

func (r *categoryRepository) GetOverride(ctx context.Context, transactionID int64) (constants.Category, bool, error) {
	row, err := r.client.CategoryOverride.Query().
		Where(categoryoverride.TransactionID(transactionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constants.Uncategorized, false, nil
		}
		return constants.Uncategorized, false, err
	}
	return constants.Category(row.Category), true, nil
}

func (r *categoryRepository) SetOverride(ctx context.Context, transactionID int64, category constants.Category) error {
	existing, err := r.client.CategoryOverride.Query().
		Where(categoryoverride.TransactionID(transactionID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return err
		}
		_, err = r.client.CategoryOverride.Create().
			SetTransactionID(transactionID).
			SetCategory(string(category)).
			Save(ctx)
		return err
	}
	_, err = existing.Update().SetCategory(string(category)).Save(ctx)
	return err
}

func (r *categoryRepository) GetMapping(ctx context.Context, merchant string) (constants.Category, bool, error) {
	row, err := r.client.MerchantMapping.Query().
		Where(merchantmapping.Merchant(merchant)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constants.Uncategorized, false, nil
		}
		return constants.Uncategorized, false, err
	}
	return constants.Category(row.Category), true, nil
}

func (r *categoryRepository) SetMapping(ctx context.Context, merchant string, category constants.Category) error {
	existing, err := r.client.MerchantMapping.Query().
		Where(merchantmapping.Merchant(merchant)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return err
		}
		_, err = r.client.MerchantMapping.Create().
			SetMerchant(merchant).
			SetCategory(string(category)).
			Save(ctx)
		return err
	}
	_, err = existing.Update().SetCategory(string(category)).Save(ctx)
	return err
}

func (r *categoryRepository) AllMappings(ctx context.Context) (map[string]constants.Category, error) {
	rows, err := r.client.MerchantMapping.Query().All(ctx)
	if err != nil {
		r.logger.Error("failed to load merchant mappings", "error", err)
		return nil, err
	}
	out := make(map[string]constants.Category, len(rows))
	for _, row := range rows {
		out[row.Merchant] = constants.Category(row.Category)
	}
	return out, nil
}

func (r *categoryRepository) ClearMappings(ctx context.Context) (int, error) {
	n, err := r.client.MerchantMapping.Delete().Exec(ctx)
	if err != nil {
		r.logger.Error("failed to clear merchant mappings", "error", err)
		return 0, err
	}
	return n, nil
}
