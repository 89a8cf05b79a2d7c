package category

import (
	"context"
	"time"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/repository"
)

// TxRunner executes fn inside one DB transaction with repositories bound to
// that transaction. Tree walks (move, delete, restore) are all-or-nothing.
type TxRunner interface {
	RunCategory(ctx context.Context, fn func(
		categories repository.CategoryRepository,
		products repository.ProductRepository,
	) error) error
}

// Cache is a best-effort read cache for hot hierarchy listings. Misses and
// backend failures are indistinguishable; implementations log and move on.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	DeleteByPrefix(ctx context.Context, prefix string)
}
