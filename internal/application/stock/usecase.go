package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/repository"
	"github.com/NadafMM/inventory-management-system-sub001/pkg/logger"
)

// Service is the only mutator of a SKU's quantity pair. Every operation runs
// as one transaction: lock the row, validate against the legal region
// (stock >= 0, 0 <= reserved <= stock), persist the SKU and append exactly
// one ledger entry. A failed validation leaves both untouched.
type Service struct {
	tx     TxRunner
	skus   repository.SkuRepository
	ledger repository.TransactionRepository
	log    *logger.Logger
}

// NewService builds the stock ledger service. skus and ledger are the
// pool-bound repositories used for reads outside a transaction.
func NewService(tx TxRunner, skus repository.SkuRepository, ledger repository.TransactionRepository, log *logger.Logger) *Service {
	return &Service{tx: tx, skus: skus, ledger: ledger, log: log}
}

// AuditInput carries optional correlation and audit metadata recorded on the
// ledger entry of a stock operation.
type AuditInput struct {
	ReferenceID   string
	ReferenceType string
	Reason        string
	PerformedBy   string
}

// AddStock receives quantity units into stock and records an IN entry.
func (s *Service) AddStock(ctx context.Context, skuID string, quantity int, audit AuditInput) (*entity.Sku, error) {
	if quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "must be positive")
	}
	return s.mutate(ctx, skuID, func(sku *entity.Sku) (*entity.InventoryTransaction, error) {
		sku.StockQuantity += quantity
		return newLedgerEntry(entity.TransactionTypeIn, quantity, audit), nil
	})
}

// RemoveStock ships quantity units out of stock and records an OUT entry.
// Removal never eats into reserved stock.
func (s *Service) RemoveStock(ctx context.Context, skuID string, quantity int, audit AuditInput) (*entity.Sku, error) {
	if quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "must be positive")
	}
	return s.mutate(ctx, skuID, func(sku *entity.Sku) (*entity.InventoryTransaction, error) {
		if quantity > sku.AvailableQuantity() {
			return nil, &domain.InsufficientStockError{
				SKUCode:   sku.SkuCode,
				Requested: quantity,
				Available: sku.AvailableQuantity(),
			}
		}
		sku.StockQuantity -= quantity
		return newLedgerEntry(entity.TransactionTypeOut, quantity, audit), nil
	})
}

// Reserve earmarks quantity units for a pending order and records a RESERVE
// entry.
func (s *Service) Reserve(ctx context.Context, skuID string, quantity int, audit AuditInput) (*entity.Sku, error) {
	if quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "must be positive")
	}
	return s.mutate(ctx, skuID, func(sku *entity.Sku) (*entity.InventoryTransaction, error) {
		if quantity > sku.AvailableQuantity() {
			return nil, &domain.InsufficientStockError{
				SKUCode:   sku.SkuCode,
				Requested: quantity,
				Available: sku.AvailableQuantity(),
			}
		}
		sku.ReservedQuantity += quantity
		return newLedgerEntry(entity.TransactionTypeReserve, quantity, audit), nil
	})
}

// Release returns quantity reserved units to the available pool and records
// a RELEASE entry.
func (s *Service) Release(ctx context.Context, skuID string, quantity int, audit AuditInput) (*entity.Sku, error) {
	if quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "must be positive")
	}
	return s.mutate(ctx, skuID, func(sku *entity.Sku) (*entity.InventoryTransaction, error) {
		if quantity > sku.ReservedQuantity {
			return nil, domain.NewValidationError("quantity", "exceeds reserved quantity")
		}
		sku.ReservedQuantity -= quantity
		return newLedgerEntry(entity.TransactionTypeRelease, quantity, audit), nil
	})
}

// Adjust applies a signed correction to on-hand stock and records an
// ADJUSTMENT entry with the delta. Reservations are never moved: a delta
// that would drive stock negative, or below the reserved quantity, is
// rejected before any mutation.
func (s *Service) Adjust(ctx context.Context, skuID string, delta int, audit AuditInput) (*entity.Sku, error) {
	if delta == 0 {
		return nil, domain.NewValidationError("delta", "must be non-zero")
	}
	if audit.Reason == "" {
		return nil, domain.NewValidationError("reason", "is required")
	}
	return s.mutate(ctx, skuID, func(sku *entity.Sku) (*entity.InventoryTransaction, error) {
		newStock := sku.StockQuantity + delta
		if newStock < 0 {
			return nil, domain.NewValidationError("delta", "adjustment would make stock negative")
		}
		if sku.ReservedQuantity > newStock {
			return nil, domain.NewValidationError("delta", "adjustment would leave reserved above stock")
		}
		sku.StockQuantity = newStock
		return newLedgerEntry(entity.TransactionTypeAdjustment, delta, audit), nil
	})
}

// GetSku returns a SKU by id.
func (s *Service) GetSku(ctx context.Context, skuID string) (*entity.Sku, error) {
	sku, err := s.skus.GetByID(ctx, skuID)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.NewNotFoundError("sku", skuID)
	}
	return sku, nil
}

// GetSkuByCode returns a SKU by its unique code.
func (s *Service) GetSkuByCode(ctx context.Context, code string) (*entity.Sku, error) {
	sku, err := s.skus.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.NewNotFoundError("sku", code)
	}
	return sku, nil
}

// ListTransactions returns the ledger entries of a SKU ordered by creation
// time, optionally bounded by [from, to].
func (s *Service) ListTransactions(ctx context.Context, skuID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryTransaction, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, domain.NewValidationError("date_range", "start must not be after end")
	}
	sku, err := s.skus.GetByID(ctx, skuID)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.NewNotFoundError("sku", skuID)
	}
	return s.ledger.ListBySkuAndDateRange(ctx, skuID, from, to, limit, offset)
}

// ListTransactionsByType returns ledger entries of one type across all SKUs,
// newest first.
func (s *Service) ListTransactionsByType(ctx context.Context, txType string, limit, offset int) ([]*entity.InventoryTransaction, error) {
	if !entity.ValidTransactionType(txType) {
		return nil, domain.NewValidationError("type", "unknown transaction type")
	}
	return s.ledger.ListByType(ctx, txType, limit, offset)
}

// LowStock reports active SKUs whose available quantity has fallen to the
// reorder point.
func (s *Service) LowStock(ctx context.Context, limit, offset int) ([]*entity.Sku, error) {
	return s.skus.ListBelowReorderPoint(ctx, limit, offset)
}

// mutate loads and locks the SKU, applies the quantity rule, then persists
// the row and appends the ledger entry inside one transaction. apply must
// not mutate the SKU on a validation failure.
func (s *Service) mutate(ctx context.Context, skuID string, apply func(*entity.Sku) (*entity.InventoryTransaction, error)) (*entity.Sku, error) {
	var out *entity.Sku
	err := s.tx.RunStock(ctx, func(skus repository.SkuRepository, ledger repository.TransactionRepository) error {
		sku, err := skus.GetForUpdate(ctx, skuID)
		if err != nil {
			return err
		}
		if sku == nil || sku.IsDeleted() {
			return domain.NewNotFoundError("sku", skuID)
		}
		txn, err := apply(sku)
		if err != nil {
			return err
		}
		now := time.Now()
		sku.UpdatedAt = now
		if err := skus.Update(ctx, sku); err != nil {
			return err
		}
		txn.ID = uuid.New().String()
		txn.SkuID = sku.ID
		txn.CreatedAt = now
		if err := ledger.Create(ctx, txn); err != nil {
			return err
		}
		out = sku
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Str("sku_id", out.ID).
		Int("stock", out.StockQuantity).
		Int("reserved", out.ReservedQuantity).
		Msg("stock mutated")
	return out, nil
}

func newLedgerEntry(txType string, quantity int, audit AuditInput) *entity.InventoryTransaction {
	return &entity.InventoryTransaction{
		Type:          txType,
		Quantity:      quantity,
		ReferenceID:   audit.ReferenceID,
		ReferenceType: audit.ReferenceType,
		Reason:        audit.Reason,
		PerformedBy:   audit.PerformedBy,
	}
}
