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

var _ repository.SkuRepository = (*SkuRepo)(nil)

const skuColumns = `id, product_id, sku_code, price, stock_quantity, reserved_quantity, reorder_point, reorder_quantity, is_active, version, created_at, updated_at, deleted_at`

// SkuRepo implements SkuRepository over PostgreSQL. Pass a pool or a tx
// (Querier).
type SkuRepo struct {
	q Querier
}

// NewSkuRepository builds the SKU adapter.
func NewSkuRepository(q Querier) *SkuRepo {
	return &SkuRepo{q: q}
}

// Create inserts a new row; sku_code carries a unique index.
func (r *SkuRepo) Create(ctx context.Context, s *entity.Sku) error {
	query := `
		INSERT INTO skus (id, product_id, sku_code, price, stock_quantity, reserved_quantity, reorder_point, reorder_quantity, is_active, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.ProductID, s.SkuCode, s.Price, s.StockQuantity, s.ReservedQuantity,
		s.ReorderPoint, s.ReorderQuantity, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError("sku_code", "duplicate sku code")
		}
		return fmt.Errorf("create sku: %w", err)
	}
	s.Version = 1
	return nil
}

// GetByID returns the row including soft-deleted ones, nil when absent.
func (r *SkuRepo) GetByID(ctx context.Context, id string) (*entity.Sku, error) {
	query := `SELECT ` + skuColumns + ` FROM skus WHERE id = $1`
	return r.get(ctx, query, id)
}

// GetByCode returns the non-deleted row with the given code, nil when absent.
func (r *SkuRepo) GetByCode(ctx context.Context, code string) (*entity.Sku, error) {
	query := `SELECT ` + skuColumns + ` FROM skus WHERE sku_code = $1 AND deleted_at IS NULL`
	return r.get(ctx, query, code)
}

// GetForUpdate locks the row (SELECT ... FOR UPDATE) so concurrent quantity
// mutations on the same SKU serialize. Only meaningful inside a tx.
func (r *SkuRepo) GetForUpdate(ctx context.Context, id string) (*entity.Sku, error) {
	query := `SELECT ` + skuColumns + ` FROM skus WHERE id = $1 FOR UPDATE`
	return r.get(ctx, query, id)
}

// Update persists all mutable fields with an optimistic version check.
func (r *SkuRepo) Update(ctx context.Context, s *entity.Sku) error {
	query := `
		UPDATE skus
		SET price = $2, stock_quantity = $3, reserved_quantity = $4,
		    reorder_point = $5, reorder_quantity = $6, is_active = $7,
		    deleted_at = $8, updated_at = $9, version = version + 1
		WHERE id = $1 AND version = $10`
	tag, err := r.q.Exec(ctx, query,
		s.ID, s.Price, s.StockQuantity, s.ReservedQuantity,
		s.ReorderPoint, s.ReorderQuantity, s.IsActive, s.DeletedAt, s.UpdatedAt, s.Version,
	)
	if err != nil {
		return fmt.Errorf("update sku: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewConflictError("sku was modified concurrently")
	}
	s.Version++
	return nil
}

// ListByProduct returns the non-deleted SKUs of a product.
func (r *SkuRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Sku, error) {
	query := `SELECT ` + skuColumns + `
		FROM skus
		WHERE product_id = $1 AND deleted_at IS NULL
		ORDER BY sku_code
		LIMIT $2 OFFSET $3`
	return r.list(ctx, query, productID, limit, offset)
}

// ListBelowReorderPoint returns active SKUs whose available quantity is at
// or below their reorder point.
func (r *SkuRepo) ListBelowReorderPoint(ctx context.Context, limit, offset int) ([]*entity.Sku, error) {
	query := `SELECT ` + skuColumns + `
		FROM skus
		WHERE deleted_at IS NULL AND is_active
		  AND stock_quantity - reserved_quantity <= reorder_point
		ORDER BY sku_code
		LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

// SoftDelete marks the row deleted. Idempotent at this layer.
func (r *SkuRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE skus SET deleted_at = $2, updated_at = $2, version = version + 1 WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("soft delete sku: %w", err)
	}
	return nil
}

// HasActiveForProduct reports whether the product still owns any active,
// non-deleted SKU.
func (r *SkuRepo) HasActiveForProduct(ctx context.Context, productID string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM skus WHERE product_id = $1 AND deleted_at IS NULL AND is_active)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, productID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check product skus: %w", err)
	}
	return exists, nil
}

func (r *SkuRepo) get(ctx context.Context, query string, args ...any) (*entity.Sku, error) {
	s, err := scanSku(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return s, nil
}

func (r *SkuRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sku, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()

	var out []*entity.Sku
	for rows.Next() {
		s, err := scanSku(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanSku(row pgx.Row) (*entity.Sku, error) {
	var s entity.Sku
	err := row.Scan(
		&s.ID, &s.ProductID, &s.SkuCode, &s.Price, &s.StockQuantity,
		&s.ReservedQuantity, &s.ReorderPoint, &s.ReorderQuantity,
		&s.IsActive, &s.Version, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
