package category

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/repository"
	"github.com/NadafMM/inventory-management-system-sub001/pkg/logger"
)

const (
	forbiddenNameChars = `/\|<>`
	maxNameLength      = 255

	cacheKeyPrefix   = "categories:"
	cacheKeyRoots    = cacheKeyPrefix + "roots"
	cacheKeyChildren = cacheKeyPrefix + "children:"
	cacheTTL         = 5 * time.Minute
)

// Service owns the business rules of the category tree: creation, renames,
// re-parenting with recursive path/level rewrite, cascading soft delete and
// restore. Structural mutations run inside one transaction via TxRunner.
type Service struct {
	categories repository.CategoryRepository
	tx         TxRunner
	cache      Cache // nil disables caching
	log        *logger.Logger
}

// NewService builds the hierarchy service. cache may be nil.
func NewService(categories repository.CategoryRepository, tx TxRunner, cache Cache, log *logger.Logger) *Service {
	return &Service{categories: categories, tx: tx, cache: cache, log: log}
}

// CreateInput carries the fields for Create. SortOrder nil means "after the
// last sibling"; IsActive nil defaults to true.
type CreateInput struct {
	Name        string
	Description string
	ParentID    string
	SortOrder   *int
	IsActive    *bool
}

// UpdateInput carries partial updates; nil fields are left untouched.
// ParentID pointing at a different parent triggers a subtree move; the empty
// string promotes the category to a root.
type UpdateInput struct {
	Name        *string
	Description *string
	ParentID    *string
	SortOrder   *int
	IsActive    *bool
}

// Create validates and inserts a new category. The row is persisted first to
// fix its id, then updated with the materialized path ending in that id;
// both writes share one transaction.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if in.SortOrder != nil && *in.SortOrder < 0 {
		return nil, domain.NewValidationError("sort_order", "must be non-negative")
	}

	var created *entity.Category
	err := s.tx.RunCategory(ctx, func(cats repository.CategoryRepository, _ repository.ProductRepository) error {
		parentPath := ""
		level := 0
		if in.ParentID != "" {
			parent, err := cats.GetByID(ctx, in.ParentID)
			if err != nil {
				return err
			}
			if parent == nil || parent.IsDeleted() {
				return domain.NewNotFoundError("category", in.ParentID)
			}
			if parent.Level+1 > entity.MaxCategoryDepth {
				return domain.NewValidationError("parent_id", "max depth exceeded")
			}
			parentPath = parent.Path
			level = parent.Level + 1
		}

		dup, err := cats.FindByNameAtScope(ctx, name, in.ParentID)
		if err != nil {
			return err
		}
		if dup != nil {
			return domain.NewValidationError("name", "duplicate name at this level")
		}

		sortOrder := 0
		if in.SortOrder != nil {
			sortOrder = *in.SortOrder
		} else {
			siblings, err := cats.ListByParent(ctx, in.ParentID)
			if err != nil {
				return err
			}
			for _, sib := range siblings {
				if sib.SortOrder >= sortOrder {
					sortOrder = sib.SortOrder + 1
				}
			}
		}

		now := time.Now()
		cat := &entity.Category{
			ID:          uuid.New().String(),
			Name:        name,
			Description: in.Description,
			ParentID:    in.ParentID,
			Level:       level,
			SortOrder:   sortOrder,
			IsActive:    in.IsActive == nil || *in.IsActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := cats.Create(ctx, cat); err != nil {
			return err
		}
		// Path is derived from the persisted id; second write completes it.
		cat.Path = entity.BuildPath(parentPath, cat.ID)
		if err := cats.Update(ctx, cat); err != nil {
			return err
		}
		created = cat
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.log.Info().Str("category_id", created.ID).Str("path", created.Path).Msg("category created")
	return created, nil
}

// Update applies partial changes. Renames re-check sibling uniqueness at the
// effective scope; re-parenting recomputes path and level for the category
// and every descendant inside one transaction.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*entity.Category, error) {
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		if err := validateName(trimmed); err != nil {
			return nil, err
		}
		in.Name = &trimmed
	}
	if in.SortOrder != nil && *in.SortOrder < 0 {
		return nil, domain.NewValidationError("sort_order", "must be non-negative")
	}

	var updated *entity.Category
	err := s.tx.RunCategory(ctx, func(cats repository.CategoryRepository, _ repository.ProductRepository) error {
		cat, err := cats.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if cat == nil || cat.IsDeleted() {
			return domain.NewNotFoundError("category", id)
		}

		reparenting := in.ParentID != nil && *in.ParentID != cat.ParentID
		targetParentID := cat.ParentID
		newParentPath := ""
		newLevel := 0
		if reparenting {
			targetParentID = *in.ParentID
			if targetParentID == cat.ID {
				return domain.NewValidationError("parent_id", "category cannot be its own parent")
			}
			if targetParentID != "" {
				parent, err := cats.GetByID(ctx, targetParentID)
				if err != nil {
					return err
				}
				if parent == nil || parent.IsDeleted() {
					return domain.NewNotFoundError("category", targetParentID)
				}
				if entity.PathContainsID(parent.Path, cat.ID) {
					return domain.NewValidationError("parent_id", "cannot move a category under its own descendant")
				}
				newParentPath = parent.Path
				newLevel = parent.Level + 1
			}
		}

		name := cat.Name
		if in.Name != nil {
			name = *in.Name
		}
		if name != cat.Name || reparenting {
			dup, err := cats.FindByNameAtScope(ctx, name, targetParentID)
			if err != nil {
				return err
			}
			if dup != nil && dup.ID != cat.ID {
				return domain.NewValidationError("name", "duplicate name at this level")
			}
		}

		cat.Name = name
		if in.Description != nil {
			cat.Description = *in.Description
		}
		if in.SortOrder != nil {
			cat.SortOrder = *in.SortOrder
		}
		if in.IsActive != nil {
			cat.IsActive = *in.IsActive
		}
		now := time.Now()
		cat.UpdatedAt = now

		if !reparenting {
			if err := cats.Update(ctx, cat); err != nil {
				return err
			}
			updated = cat
			return nil
		}

		if newLevel > entity.MaxCategoryDepth {
			return domain.NewValidationError("parent_id", "max depth exceeded")
		}
		oldPath := cat.Path
		shift := newLevel - cat.Level
		descendants, err := cats.ListByPathPrefix(ctx, oldPath+entity.PathSeparator, true)
		if err != nil {
			return err
		}
		for _, d := range descendants {
			if d.Level+shift > entity.MaxCategoryDepth {
				return domain.NewValidationError("parent_id", "max depth exceeded")
			}
		}

		cat.ParentID = targetParentID
		cat.Level = newLevel
		cat.Path = entity.BuildPath(newParentPath, cat.ID)
		if err := cats.Update(ctx, cat); err != nil {
			return err
		}
		// Descendants keep their relative structure: swap the old prefix
		// for the new one and shift the level by the same delta.
		for _, d := range descendants {
			d.Path = cat.Path + strings.TrimPrefix(d.Path, oldPath)
			d.Level += shift
			d.UpdatedAt = now
			if err := cats.Update(ctx, d); err != nil {
				return err
			}
		}
		updated = cat
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// Delete soft-deletes the category and, depth-first via an explicit
// worklist, every non-deleted descendant. Only the target itself is checked
// for active products; descendants are cascaded regardless.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.tx.RunCategory(ctx, func(cats repository.CategoryRepository, prods repository.ProductRepository) error {
		cat, err := cats.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if cat == nil || cat.IsDeleted() {
			return domain.NewNotFoundError("category", id)
		}
		hasProducts, err := prods.HasActiveInCategory(ctx, cat.ID)
		if err != nil {
			return err
		}
		if hasProducts {
			return domain.NewBusinessError("category has products")
		}

		now := time.Now()
		worklist := []*entity.Category{cat}
		for len(worklist) > 0 {
			cur := worklist[len(worklist)-1]
			worklist = worklist[:len(worklist)-1]

			children, err := cats.ListByParent(ctx, cur.ID)
			if err != nil {
				return err
			}
			worklist = append(worklist, children...)

			cur.DeletedAt = &now
			cur.UpdatedAt = now
			if err := cats.Update(ctx, cur); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	s.log.Info().Str("category_id", id).Msg("category soft-deleted")
	return nil
}

// Restore clears the soft-delete mark on the category and every soft-deleted
// descendant, leaving path and level untouched. Restoring an already-live
// category is a no-op.
func (s *Service) Restore(ctx context.Context, id string) (*entity.Category, error) {
	var restored *entity.Category
	err := s.tx.RunCategory(ctx, func(cats repository.CategoryRepository, _ repository.ProductRepository) error {
		cat, err := cats.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if cat == nil {
			return domain.NewNotFoundError("category", id)
		}
		if !cat.IsDeleted() {
			restored = cat
			return nil
		}
		if cat.ParentID != "" {
			parent, err := cats.GetByID(ctx, cat.ParentID)
			if err != nil {
				return err
			}
			if parent == nil || parent.IsDeleted() {
				return domain.NewBusinessError("parent category is deleted")
			}
		}

		now := time.Now()
		cat.DeletedAt = nil
		cat.UpdatedAt = now
		if err := cats.Update(ctx, cat); err != nil {
			return err
		}
		descendants, err := cats.ListByPathPrefix(ctx, cat.Path+entity.PathSeparator, true)
		if err != nil {
			return err
		}
		for _, d := range descendants {
			if !d.IsDeleted() {
				continue
			}
			d.DeletedAt = nil
			d.UpdatedAt = now
			if err := cats.Update(ctx, d); err != nil {
				return err
			}
		}
		restored = cat
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return restored, nil
}

// GetByID returns a category by id. Soft-deleted rows remain queryable.
func (s *Service) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.NewNotFoundError("category", id)
	}
	return cat, nil
}

// ListRoots returns the non-deleted root categories.
func (s *Service) ListRoots(ctx context.Context) ([]*entity.Category, error) {
	return s.cachedList(ctx, cacheKeyRoots, func() ([]*entity.Category, error) {
		return s.categories.ListRoots(ctx)
	})
}

// ListChildren returns the non-deleted direct children of parentID.
func (s *Service) ListChildren(ctx context.Context, parentID string) ([]*entity.Category, error) {
	parent, err := s.categories.GetByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil || parent.IsDeleted() {
		return nil, domain.NewNotFoundError("category", parentID)
	}
	return s.cachedList(ctx, cacheKeyChildren+parentID, func() ([]*entity.Category, error) {
		return s.categories.ListByParent(ctx, parentID)
	})
}

// AncestorPath returns the chain from the root down to and including id,
// resolved from the materialized path.
func (s *Service) AncestorPath(ctx context.Context, id string) ([]*entity.Category, error) {
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.NewNotFoundError("category", id)
	}
	segments := entity.PathSegments(cat.Path)
	chain := make([]*entity.Category, 0, len(segments))
	for _, ancestorID := range segments {
		if ancestorID == cat.ID {
			chain = append(chain, cat)
			continue
		}
		ancestor, err := s.categories.GetByID(ctx, ancestorID)
		if err != nil {
			return nil, err
		}
		if ancestor == nil {
			return nil, domain.NewNotFoundError("category", ancestorID)
		}
		chain = append(chain, ancestor)
	}
	return chain, nil
}

// ListDescendants returns every non-deleted category under id, ordered by
// path (a prefix scan on the materialized path).
func (s *Service) ListDescendants(ctx context.Context, id string) ([]*entity.Category, error) {
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil || cat.IsDeleted() {
		return nil, domain.NewNotFoundError("category", id)
	}
	return s.categories.ListByPathPrefix(ctx, cat.Path+entity.PathSeparator, false)
}

func validateName(name string) error {
	if name == "" {
		return domain.NewValidationError("name", "is required")
	}
	if len(name) > maxNameLength {
		return domain.NewValidationError("name", "must be at most 255 characters")
	}
	if strings.ContainsAny(name, forbiddenNameChars) {
		return domain.NewValidationError("name", `must not contain / \ | < >`)
	}
	return nil
}

func (s *Service) cachedList(ctx context.Context, key string, load func() ([]*entity.Category, error)) ([]*entity.Category, error) {
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var cats []*entity.Category
			if err := json.Unmarshal([]byte(raw), &cats); err == nil {
				return cats, nil
			}
		}
	}
	cats, err := load()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if raw, err := json.Marshal(cats); err == nil {
			s.cache.Set(ctx, key, string(raw), cacheTTL)
		}
	}
	return cats, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.DeleteByPrefix(ctx, cacheKeyPrefix)
	}
}
