package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, sku_id, transaction_type, quantity, reference_id, reference_type, reason, performed_by, created_at`

// TransactionRepo implements the append-only ledger over PostgreSQL. Pass a
// pool or a tx (Querier). There is no UPDATE or DELETE on this table.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository builds the ledger adapter.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create appends one ledger entry.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (id, sku_id, transaction_type, quantity, reference_id, reference_type, reason, performed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.SkuID, t.Type, t.Quantity, t.ReferenceID, t.ReferenceType,
		t.Reason, t.PerformedBy, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append inventory transaction: %w", err)
	}
	return nil
}

// ListBySkuAndDateRange returns a SKU's entries ordered by creation time;
// nil bounds are open-ended.
func (r *TransactionRepo) ListBySkuAndDateRange(ctx context.Context, skuID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryTransaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM inventory_transactions
		WHERE sku_id = $1
		  AND ($2::timestamptz IS NULL OR created_at >= $2)
		  AND ($3::timestamptz IS NULL OR created_at <= $3)
		ORDER BY created_at, id
		LIMIT $4 OFFSET $5`
	return r.list(ctx, query, skuID, from, to, limit, offset)
}

// ListByType returns entries of one type, newest first.
func (r *TransactionRepo) ListByType(ctx context.Context, txType string, limit, offset int) ([]*entity.InventoryTransaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM inventory_transactions
		WHERE transaction_type = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`
	return r.list(ctx, query, txType, limit, offset)
}

func (r *TransactionRepo) list(ctx context.Context, query string, args ...any) ([]*entity.InventoryTransaction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory transactions: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryTransaction
	for rows.Next() {
		var t entity.InventoryTransaction
		err := rows.Scan(
			&t.ID, &t.SkuID, &t.Type, &t.Quantity, &t.ReferenceID,
			&t.ReferenceType, &t.Reason, &t.PerformedBy, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan inventory transaction: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
