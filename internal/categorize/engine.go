// Package categorize assigns a category to each transaction. Resolution
// order is fixed: a per-transaction override wins over a learned merchant
// mapping, which wins over keyword rules, which fall back to Uncategorized.
package categorize

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"unicode"

	"github.com/joseph-ayodele/spendsync/constants"
	"github.com/joseph-ayodele/spendsync/internal/entity"
)

// ErrInvalidMerchant reports a merchant name that is empty after
// normalization, so no mapping can be keyed on it.
var ErrInvalidMerchant = errors.New("merchant name is empty after normalization")

// resolver is one step of the resolution chain. ok reports that the step
// produced an answer and the chain stops.
type resolver func(ctx context.Context, txn *entity.Transaction) (constants.Category, bool, error)

type Engine struct {
	overrides OverrideStore
	mappings  MappingStore
	logger    *slog.Logger
	resolvers []resolver

	mu    sync.RWMutex
	cache map[string]constants.Category
}

// NewEngine builds the engine and warms the merchant-mapping cache.
func NewEngine(ctx context.Context, overrides OverrideStore, mappings MappingStore, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cache, err := mappings.AllMappings(ctx)
	if err != nil {
		return nil, err
	}
	if cache == nil {
		cache = make(map[string]constants.Category)
	}
	logger.Debug("categorize.cache.loaded", "mappings", len(cache))
	e := &Engine{
		overrides: overrides,
		mappings:  mappings,
		logger:    logger,
		cache:     cache,
	}
	e.resolvers = []resolver{
		e.resolveOverride,
		e.resolveMapping,
		e.resolveKeywords,
	}
	return e, nil
}

// Categorize walks the resolver chain and returns the first answer, falling
// back to Uncategorized.
func (e *Engine) Categorize(ctx context.Context, txn *entity.Transaction) (constants.Category, error) {
	for _, resolve := range e.resolvers {
		cat, ok, err := resolve(ctx, txn)
		if err != nil {
			return constants.Uncategorized, err
		}
		if ok {
			return cat, nil
		}
	}
	return constants.Uncategorized, nil
}

func (e *Engine) resolveOverride(ctx context.Context, txn *entity.Transaction) (constants.Category, bool, error) {
	return e.overrides.GetOverride(ctx, txn.SourceID)
}

func (e *Engine) resolveMapping(ctx context.Context, txn *entity.Transaction) (constants.Category, bool, error) {
	merchant := NormalizeMerchant(txn.MerchantName())
	if merchant == "" {
		return constants.Uncategorized, false, nil
	}
	if cat, ok := e.cachedMapping(merchant); ok {
		return cat, true, nil
	}
	// A miss still consults the store, so mappings written after the cache
	// was warmed are picked up without a restart.
	cat, ok, err := e.mappings.GetMapping(ctx, merchant)
	if err != nil {
		return constants.Uncategorized, false, err
	}
	if ok {
		e.mu.Lock()
		e.cache[merchant] = cat
		e.mu.Unlock()
	}
	return cat, ok, nil
}

func (e *Engine) resolveKeywords(_ context.Context, txn *entity.Transaction) (constants.Category, bool, error) {
	cat, ok := keywordCategory(txn.MerchantName(), txn.RawBody)
	return cat, ok, nil
}

// SetOverride records a manual category for one transaction.
func (e *Engine) SetOverride(ctx context.Context, transactionID int64, category constants.Category) error {
	return e.overrides.SetOverride(ctx, transactionID, category)
}

// LearnMapping persists a merchant-to-category mapping and updates the
// cache. The merchant name is normalized before keying.
func (e *Engine) LearnMapping(ctx context.Context, merchant string, category constants.Category) error {
	key := NormalizeMerchant(merchant)
	if key == "" {
		return ErrInvalidMerchant
	}
	if err := e.mappings.SetMapping(ctx, key, category); err != nil {
		return err
	}
	e.mu.Lock()
	e.cache[key] = category
	e.mu.Unlock()
	e.logger.Info("categorize.mapping.learned", "merchant", key, "category", category)
	return nil
}

// ResetMappings clears all learned merchant mappings and returns how many
// were removed. Overrides are untouched.
func (e *Engine) ResetMappings(ctx context.Context) (int, error) {
	n, err := e.mappings.ClearMappings(ctx)
	if err != nil {
		return 0, err
	}
	e.mu.Lock()
	e.cache = make(map[string]constants.Category)
	e.mu.Unlock()
	e.logger.Info("categorize.mappings.reset", "removed", n)
	return n, nil
}

func (e *Engine) cachedMapping(merchant string) (constants.Category, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cat, ok := e.cache[merchant]
	return cat, ok
}

// NormalizeMerchant lowercases the name, replaces every run of
// non-letter/non-digit runes with a single space, and trims. Symbols and
// emoji disappear, so "  Swiggy™️  " and "SWIGGY" share one key.
func NormalizeMerchant(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// keywordCategory scans the merchant name first, then the raw body, against
// the keyword table in a fixed category order so results are stable.
func keywordCategory(merchant, body string) (constants.Category, bool) {
	for _, text := range []string{merchant, body} {
		if text == "" {
			continue
		}
		lowered := strings.ToLower(text)
		for _, cat := range constants.CategoryOrder {
			for _, kw := range constants.CategoryKeywords[cat] {
				if strings.Contains(lowered, kw) {
					return cat, true
				}
			}
		}
	}
	return constants.Uncategorized, false
}
