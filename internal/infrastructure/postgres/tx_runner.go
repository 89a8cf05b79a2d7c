package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NadafMM/inventory-management-system-sub001/internal/application/category"
	"github.com/NadafMM/inventory-management-system-sub001/internal/application/stock"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/repository"
)

// Ensure TxRunner implements the application tx ports.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ category.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunStock begins a transaction, runs fn with SKU and ledger repositories
// bound to it, and commits or rolls back as one unit.
func (r *TxRunner) RunStock(ctx context.Context, fn func(
	skus repository.SkuRepository,
	ledger repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSkuRepository(tx), NewTransactionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCategory begins a transaction with category and product repositories
// bound to it, so tree walks (move, cascade delete, restore) are
// all-or-nothing.
func (r *TxRunner) RunCategory(ctx context.Context, fn func(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCategoryRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
