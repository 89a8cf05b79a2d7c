package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, category_id, name, description, price, is_active, version, created_at, updated_at, deleted_at`

// ProductRepo implements ProductRepository over PostgreSQL. Pass a pool or a
// tx (Querier).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the product adapter.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserts a new row.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, category_id, name, description, price, is_active, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CategoryID, p.Name, p.Description, p.Price, p.IsActive,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	p.Version = 1
	return nil
}

// GetByID returns the row including soft-deleted ones, nil when absent.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update persists all mutable fields with an optimistic version check.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET category_id = $2, name = $3, description = $4, price = $5,
		    is_active = $6, deleted_at = $7, updated_at = $8, version = version + 1
		WHERE id = $1 AND version = $9`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.CategoryID, p.Name, p.Description, p.Price, p.IsActive,
		p.DeletedAt, p.UpdatedAt, p.Version,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewConflictError("product was modified concurrently")
	}
	p.Version++
	return nil
}

// List returns non-deleted products with pagination.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

// ListByCategory returns the non-deleted products directly in a category.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE category_id = $1 AND deleted_at IS NULL
		ORDER BY name
		LIMIT $2 OFFSET $3`
	return r.list(ctx, query, categoryID, limit, offset)
}

// SoftDelete marks the row deleted. Idempotent at this layer.
func (r *ProductRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE products SET deleted_at = $2, updated_at = $2, version = version + 1 WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}

// HasActiveInCategory reports whether the category directly holds any
// active, non-deleted product.
func (r *ProductRepo) HasActiveInCategory(ctx context.Context, categoryID string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM products WHERE category_id = $1 AND deleted_at IS NULL AND is_active)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, categoryID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check category products: %w", err)
	}
	return exists, nil
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price,
		&p.IsActive, &p.Version, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
