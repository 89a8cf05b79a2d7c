package stock_test

import (
	"context"
	"time"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/repository"
)

// memSkuRepo is an in-memory SkuRepository storing copies, so service-side
// mutations only become visible through Update.
type memSkuRepo struct {
	byID map[string]*entity.Sku
}

func newMemSkuRepo() *memSkuRepo {
	return &memSkuRepo{byID: map[string]*entity.Sku{}}
}

func cloneSku(s *entity.Sku) *entity.Sku {
	cp := *s
	if s.DeletedAt != nil {
		at := *s.DeletedAt
		cp.DeletedAt = &at
	}
	return &cp
}

func (r *memSkuRepo) snapshot() map[string]*entity.Sku {
	snap := make(map[string]*entity.Sku, len(r.byID))
	for id, s := range r.byID {
		snap[id] = cloneSku(s)
	}
	return snap
}

func (r *memSkuRepo) Create(_ context.Context, s *entity.Sku) error {
	s.Version = 1
	r.byID[s.ID] = cloneSku(s)
	return nil
}

func (r *memSkuRepo) GetByID(_ context.Context, id string) (*entity.Sku, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneSku(s), nil
}

func (r *memSkuRepo) GetByCode(_ context.Context, code string) (*entity.Sku, error) {
	for _, s := range r.byID {
		if s.SkuCode == code && !s.IsDeleted() {
			return cloneSku(s), nil
		}
	}
	return nil, nil
}

func (r *memSkuRepo) GetForUpdate(ctx context.Context, id string) (*entity.Sku, error) {
	return r.GetByID(ctx, id)
}

func (r *memSkuRepo) Update(_ context.Context, s *entity.Sku) error {
	s.Version++
	r.byID[s.ID] = cloneSku(s)
	return nil
}

func (r *memSkuRepo) ListByProduct(_ context.Context, productID string, _, _ int) ([]*entity.Sku, error) {
	var out []*entity.Sku
	for _, s := range r.byID {
		if s.ProductID == productID && !s.IsDeleted() {
			out = append(out, cloneSku(s))
		}
	}
	return out, nil
}

func (r *memSkuRepo) ListBelowReorderPoint(_ context.Context, _, _ int) ([]*entity.Sku, error) {
	var out []*entity.Sku
	for _, s := range r.byID {
		if s.IsActive && !s.IsDeleted() && s.NeedsReorder() {
			out = append(out, cloneSku(s))
		}
	}
	return out, nil
}

func (r *memSkuRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	if s, ok := r.byID[id]; ok && !s.IsDeleted() {
		s.DeletedAt = &at
	}
	return nil
}

func (r *memSkuRepo) HasActiveForProduct(_ context.Context, productID string) (bool, error) {
	for _, s := range r.byID {
		if s.ProductID == productID && s.IsActive && !s.IsDeleted() {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.SkuRepository = (*memSkuRepo)(nil)

// memLedger is an append-only in-memory TransactionRepository.
type memLedger struct {
	entries []*entity.InventoryTransaction
}

func (r *memLedger) Create(_ context.Context, txn *entity.InventoryTransaction) error {
	cp := *txn
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *memLedger) ListBySkuAndDateRange(_ context.Context, skuID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryTransaction, error) {
	var out []*entity.InventoryTransaction
	for _, e := range r.entries {
		if e.SkuID != skuID {
			continue
		}
		if from != nil && e.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && e.CreatedAt.After(*to) {
			continue
		}
		out = append(out, e)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memLedger) ListByType(_ context.Context, txType string, _, _ int) ([]*entity.InventoryTransaction, error) {
	var out []*entity.InventoryTransaction
	for _, e := range r.entries {
		if e.Type == txType {
			out = append(out, e)
		}
	}
	return out, nil
}

var _ repository.TransactionRepository = (*memLedger)(nil)

// memTxRunner simulates transactional semantics: SKU state and ledger length
// are restored when fn fails, so a failed operation touches neither.
type memTxRunner struct {
	skus   *memSkuRepo
	ledger *memLedger
}

func (t *memTxRunner) RunStock(ctx context.Context, fn func(repository.SkuRepository, repository.TransactionRepository) error) error {
	snap := t.skus.snapshot()
	ledgerLen := len(t.ledger.entries)
	if err := fn(t.skus, t.ledger); err != nil {
		t.skus.byID = snap
		t.ledger.entries = t.ledger.entries[:ledgerLen]
		return err
	}
	return nil
}
