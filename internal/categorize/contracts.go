package categorize

import (
	"context"

	"github.com/joseph-ayodele/spendsync/constants"
)

// OverrideStore persists per-transaction category overrides. An override
// always wins over merchant mappings and keyword rules.
type OverrideStore interface {
	GetOverride(ctx context.Context, transactionID int64) (constants.Category, bool, error)
	SetOverride(ctx context.Context, transactionID int64, category constants.Category) error
}

// MappingStore persists learned merchant-to-category mappings keyed by the
// normalized merchant name.
type MappingStore interface {
	GetMapping(ctx context.Context, merchant string) (constants.Category, bool, error)
	SetMapping(ctx context.Context, merchant string, category constants.Category) error
	AllMappings(ctx context.Context) (map[string]constants.Category, error)
	ClearMappings(ctx context.Context) (int, error)
}
