package repository

import (
	"context"
	"time"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
)

// TransactionRepository is the append-only persistence port for the
// inventory ledger. There is deliberately no update or delete.
type TransactionRepository interface {
	Create(ctx context.Context, txn *entity.InventoryTransaction) error
	// ListBySkuAndDateRange returns ledger entries for a SKU ordered by
	// creation time; nil bounds are open-ended.
	ListBySkuAndDateRange(ctx context.Context, skuID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryTransaction, error)
	ListByType(ctx context.Context, txType string, limit, offset int) ([]*entity.InventoryTransaction, error)
}
