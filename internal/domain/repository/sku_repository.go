package repository

import (
	"context"
	"time"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
)

// SkuRepository is the persistence port for Sku. Lookups return (nil, nil)
// when nothing matches; GetByID includes soft-deleted rows.
type SkuRepository interface {
	Create(ctx context.Context, sku *entity.Sku) error
	GetByID(ctx context.Context, id string) (*entity.Sku, error)
	GetByCode(ctx context.Context, code string) (*entity.Sku, error)
	// GetForUpdate locks the row (SELECT ... FOR UPDATE); only meaningful
	// inside a transaction.
	GetForUpdate(ctx context.Context, id string) (*entity.Sku, error)
	// Update persists all mutable fields with an optimistic version check;
	// a stale Version surfaces as a domain.ConflictError.
	Update(ctx context.Context, sku *entity.Sku) error
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Sku, error)
	// ListBelowReorderPoint returns active SKUs whose available quantity is
	// at or below their reorder point.
	ListBelowReorderPoint(ctx context.Context, limit, offset int) ([]*entity.Sku, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
	// HasActiveForProduct reports whether the product still owns any active,
	// non-deleted SKU.
	HasActiveForProduct(ctx context.Context, productID string) (bool, error)
}
