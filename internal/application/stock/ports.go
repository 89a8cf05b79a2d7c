package stock

import (
	"context"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/repository"
)

// TxRunner executes fn inside one DB transaction with repositories bound to
// that transaction. The quantity update and its ledger entry commit together
// or not at all.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(
		skus repository.SkuRepository,
		ledger repository.TransactionRepository,
	) error) error
}
