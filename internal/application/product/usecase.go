package product

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/repository"
	"github.com/NadafMM/inventory-management-system-sub001/pkg/logger"
)

// Service owns the Product<->Category and Product<->Sku associations: it
// validates that a target category can receive a product and blocks deletion
// while dependents exist. Quantity fields are off limits here; those belong
// to the stock ledger service.
type Service struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	skus       repository.SkuRepository
	log        *logger.Logger
}

// NewService builds the product catalog service.
func NewService(products repository.ProductRepository, categories repository.CategoryRepository, skus repository.SkuRepository, log *logger.Logger) *Service {
	return &Service{products: products, categories: categories, skus: skus, log: log}
}

// CreateInput carries the fields for Create.
type CreateInput struct {
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal
}

// UpdateInput carries partial updates; nil fields are left untouched.
type UpdateInput struct {
	CategoryID  *string
	Name        *string
	Description *string
	Price       *decimal.Decimal
	IsActive    *bool
}

// Create validates the target category and inserts the product.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if in.Price.IsNegative() {
		return nil, domain.NewValidationError("price", "must be non-negative")
	}
	if err := s.checkCategoryEligible(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", p.ID).Str("category_id", p.CategoryID).Msg("product created")
	return p, nil
}

// GetByID returns a product by id. Soft-deleted rows remain queryable.
func (s *Service) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NewNotFoundError("product", id)
	}
	return p, nil
}

// Update applies partial changes. Moving the product to another category
// re-validates that category's eligibility.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*entity.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.IsDeleted() {
		return nil, domain.NewNotFoundError("product", id)
	}
	if in.CategoryID != nil && *in.CategoryID != p.CategoryID {
		if err := s.checkCategoryEligible(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "is required")
		}
		p.Name = name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.NewValidationError("price", "must be non-negative")
		}
		p.Price = *in.Price
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.UpdatedAt = time.Now()
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete soft-deletes a product. Blocked while it still owns active SKUs.
func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil || p.IsDeleted() {
		return domain.NewNotFoundError("product", id)
	}
	hasSkus, err := s.skus.HasActiveForProduct(ctx, id)
	if err != nil {
		return err
	}
	if hasSkus {
		return domain.NewBusinessError("product has skus")
	}
	return s.products.SoftDelete(ctx, id, time.Now())
}

// List returns products with pagination.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return s.products.List(ctx, limit, offset)
}

// ListByCategory returns the products directly under a category.
func (s *Service) ListByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*entity.Product, error) {
	return s.products.ListByCategory(ctx, categoryID, limit, offset)
}

// checkCategoryEligible verifies the category exists, is active and not
// soft-deleted before a product may be attached to it.
func (s *Service) checkCategoryEligible(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return domain.NewValidationError("category_id", "is required")
	}
	cat, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if cat == nil || cat.IsDeleted() {
		return domain.NewNotFoundError("category", categoryID)
	}
	if !cat.IsActive {
		return domain.NewBusinessError("category is not active")
	}
	return nil
}
