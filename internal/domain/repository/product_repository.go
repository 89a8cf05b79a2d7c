package repository

import (
	"context"
	"time"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
)

// ProductRepository is the persistence port for Product. Lookups return
// (nil, nil) when nothing matches; GetByID includes soft-deleted rows.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Update persists all mutable fields with an optimistic version check;
	// a stale Version surfaces as a domain.ConflictError.
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*entity.Product, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
	// HasActiveInCategory reports whether the category directly holds any
	// active, non-deleted product.
	HasActiveInCategory(ctx context.Context, categoryID string) (bool, error)
}
