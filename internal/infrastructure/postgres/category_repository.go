package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, description, parent_id, path, level, sort_order, is_active, version, created_at, updated_at, deleted_at`

// CategoryRepo implements CategoryRepository over PostgreSQL. Pass a pool or
// a tx (Querier).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository builds the category adapter.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create inserts a new row. A partial unique index on (parent_id, name)
// for live rows backstops the service-level duplicate check.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, parent_id, path, level, sort_order, is_active, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Description, nullable(c.ParentID), c.Path, c.Level,
		c.SortOrder, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError("name", "duplicate name at this level")
		}
		return fmt.Errorf("create category: %w", err)
	}
	c.Version = 1
	return nil
}

// GetByID returns the row including soft-deleted ones, nil when absent.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	c, err := scanCategory(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// Update persists all mutable fields with an optimistic version check.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = $3, parent_id = $4, path = $5, level = $6,
		    sort_order = $7, is_active = $8, deleted_at = $9, updated_at = $10,
		    version = version + 1
		WHERE id = $1 AND version = $11`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Description, nullable(c.ParentID), c.Path, c.Level,
		c.SortOrder, c.IsActive, c.DeletedAt, c.UpdatedAt, c.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError("name", "duplicate name at this level")
		}
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewConflictError("category was modified concurrently")
	}
	c.Version++
	return nil
}

// ListRoots returns the non-deleted roots ordered by sort order.
func (r *CategoryRepo) ListRoots(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + `
		FROM categories
		WHERE parent_id IS NULL AND deleted_at IS NULL
		ORDER BY sort_order, name`
	return r.list(ctx, query)
}

// ListByParent returns the non-deleted children ordered by sort order.
// An empty parentID lists roots.
func (r *CategoryRepo) ListByParent(ctx context.Context, parentID string) ([]*entity.Category, error) {
	if parentID == "" {
		return r.ListRoots(ctx)
	}
	query := `SELECT ` + categoryColumns + `
		FROM categories
		WHERE parent_id = $1 AND deleted_at IS NULL
		ORDER BY sort_order, name`
	return r.list(ctx, query, parentID)
}

// FindByNameAtScope matches name among non-deleted siblings of parentID.
func (r *CategoryRepo) FindByNameAtScope(ctx context.Context, name, parentID string) (*entity.Category, error) {
	var row pgx.Row
	if parentID == "" {
		query := `SELECT ` + categoryColumns + `
			FROM categories
			WHERE parent_id IS NULL AND name = $1 AND deleted_at IS NULL`
		row = r.q.QueryRow(ctx, query, name)
	} else {
		query := `SELECT ` + categoryColumns + `
			FROM categories
			WHERE parent_id = $1 AND name = $2 AND deleted_at IS NULL`
		row = r.q.QueryRow(ctx, query, parentID, name)
	}
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return c, nil
}

// ListByPathPrefix returns categories whose path starts with prefix,
// ordered by path.
func (r *CategoryRepo) ListByPathPrefix(ctx context.Context, prefix string, includeDeleted bool) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + `
		FROM categories
		WHERE path LIKE $1`
	if !includeDeleted {
		query += ` AND deleted_at IS NULL`
	}
	query += ` ORDER BY path`
	return r.list(ctx, query, prefix+"%")
}

func (r *CategoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	var parentID *string
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &parentID, &c.Path, &c.Level,
		&c.SortOrder, &c.IsActive, &c.Version, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	if parentID != nil {
		c.ParentID = *parentID
	}
	return &c, nil
}

// nullable maps the entity's empty-string parent to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
