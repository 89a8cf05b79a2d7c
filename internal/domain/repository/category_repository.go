package repository

import (
	"context"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
)

// CategoryRepository is the persistence port for Category (DIP).
// GetByID returns soft-deleted rows too (they stay queryable by id); list
// and scope lookups exclude them unless stated otherwise. Lookups return
// (nil, nil) when nothing matches.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// Update persists all mutable fields with an optimistic version check;
	// a stale Version surfaces as a domain.ConflictError.
	Update(ctx context.Context, category *entity.Category) error
	ListRoots(ctx context.Context) ([]*entity.Category, error)
	ListByParent(ctx context.Context, parentID string) ([]*entity.Category, error)
	// FindByNameAtScope matches name among non-deleted siblings of parentID
	// (empty parentID means roots). Case-sensitive.
	FindByNameAtScope(ctx context.Context, name, parentID string) (*entity.Category, error)
	// ListByPathPrefix returns categories whose path starts with prefix,
	// ordered by path, optionally including soft-deleted rows.
	ListByPathPrefix(ctx context.Context, prefix string, includeDeleted bool) ([]*entity.Category, error)
}
