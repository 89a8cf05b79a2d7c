package category_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/repository"
)

// memCategoryRepo is an in-memory CategoryRepository. It stores copies so the
// service only observes state it explicitly persisted via Update.
type memCategoryRepo struct {
	byID map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{byID: map[string]*entity.Category{}}
}

func cloneCategory(c *entity.Category) *entity.Category {
	cp := *c
	if c.DeletedAt != nil {
		at := *c.DeletedAt
		cp.DeletedAt = &at
	}
	return &cp
}

func (r *memCategoryRepo) snapshot() map[string]*entity.Category {
	snap := make(map[string]*entity.Category, len(r.byID))
	for id, c := range r.byID {
		snap[id] = cloneCategory(c)
	}
	return snap
}

func (r *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	c.Version = 1
	r.byID[c.ID] = cloneCategory(c)
	return nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneCategory(c), nil
}

func (r *memCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	c.Version++
	r.byID[c.ID] = cloneCategory(c)
	return nil
}

func (r *memCategoryRepo) ListRoots(ctx context.Context) ([]*entity.Category, error) {
	return r.ListByParent(ctx, "")
}

func (r *memCategoryRepo) ListByParent(_ context.Context, parentID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.byID {
		if c.ParentID == parentID && !c.IsDeleted() {
			out = append(out, cloneCategory(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *memCategoryRepo) FindByNameAtScope(_ context.Context, name, parentID string) (*entity.Category, error) {
	for _, c := range r.byID {
		if c.ParentID == parentID && c.Name == name && !c.IsDeleted() {
			return cloneCategory(c), nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) ListByPathPrefix(_ context.Context, prefix string, includeDeleted bool) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.byID {
		if !strings.HasPrefix(c.Path, prefix) {
			continue
		}
		if !includeDeleted && c.IsDeleted() {
			continue
		}
		out = append(out, cloneCategory(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

var _ repository.CategoryRepository = (*memCategoryRepo)(nil)

// memProductRepo fakes only what the category service touches: the active
// product check per category.
type memProductRepo struct {
	activeInCategory map[string]bool
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{activeInCategory: map[string]bool{}}
}

func (r *memProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (r *memProductRepo) GetByID(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Update(context.Context, *entity.Product) error { return nil }
func (r *memProductRepo) List(context.Context, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) ListByCategory(context.Context, string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) SoftDelete(context.Context, string, time.Time) error { return nil }
func (r *memProductRepo) HasActiveInCategory(_ context.Context, categoryID string) (bool, error) {
	return r.activeInCategory[categoryID], nil
}

var _ repository.ProductRepository = (*memProductRepo)(nil)

// memTxRunner simulates transactional semantics: the category store is
// snapshotted before fn and restored when fn fails, so a failed operation is
// observably a no-op.
type memTxRunner struct {
	cats  *memCategoryRepo
	prods *memProductRepo
}

func (t *memTxRunner) RunCategory(ctx context.Context, fn func(repository.CategoryRepository, repository.ProductRepository) error) error {
	snap := t.cats.snapshot()
	if err := fn(t.cats, t.prods); err != nil {
		t.cats.byID = snap
		return err
	}
	return nil
}
