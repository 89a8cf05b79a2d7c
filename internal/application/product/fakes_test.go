package product_test

import (
	"context"
	"time"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/repository"
)

type memProductRepo struct {
	byID map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byID: map[string]*entity.Product{}}
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	if p.DeletedAt != nil {
		at := *p.DeletedAt
		cp.DeletedAt = &at
	}
	return &cp
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.Version = 1
	r.byID[p.ID] = cloneProduct(p)
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	p.Version++
	r.byID[p.ID] = cloneProduct(p)
	return nil
}

func (r *memProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if !p.IsDeleted() {
			out = append(out, cloneProduct(p))
		}
	}
	return out, nil
}

func (r *memProductRepo) ListByCategory(_ context.Context, categoryID string, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.CategoryID == categoryID && !p.IsDeleted() {
			out = append(out, cloneProduct(p))
		}
	}
	return out, nil
}

func (r *memProductRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	if p, ok := r.byID[id]; ok && !p.IsDeleted() {
		p.DeletedAt = &at
	}
	return nil
}

func (r *memProductRepo) HasActiveInCategory(_ context.Context, categoryID string) (bool, error) {
	for _, p := range r.byID {
		if p.CategoryID == categoryID && p.IsActive && !p.IsDeleted() {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.ProductRepository = (*memProductRepo)(nil)

// memCategoryRepo fakes only the lookup the product service performs.
type memCategoryRepo struct {
	byID map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{byID: map[string]*entity.Category{}}
}

func (r *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.byID[c.ID] = c
	return nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) Update(context.Context, *entity.Category) error { return nil }
func (r *memCategoryRepo) ListRoots(context.Context) ([]*entity.Category, error) {
	return nil, nil
}
func (r *memCategoryRepo) ListByParent(context.Context, string) ([]*entity.Category, error) {
	return nil, nil
}
func (r *memCategoryRepo) FindByNameAtScope(context.Context, string, string) (*entity.Category, error) {
	return nil, nil
}
func (r *memCategoryRepo) ListByPathPrefix(context.Context, string, bool) ([]*entity.Category, error) {
	return nil, nil
}

var _ repository.CategoryRepository = (*memCategoryRepo)(nil)

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

func (r *memSkuRepo) ListBelowReorderPoint(context.Context, int, int) ([]*entity.Sku, error) {
	return nil, nil
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
