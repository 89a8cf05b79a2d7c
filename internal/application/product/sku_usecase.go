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

// SkuService owns SKU identity and lifecycle. Initial quantities are set
// here once at creation; every later change goes through the stock ledger.
type SkuService struct {
	skus     repository.SkuRepository
	products repository.ProductRepository
	log      *logger.Logger
}

// NewSkuService builds the SKU service.
func NewSkuService(skus repository.SkuRepository, products repository.ProductRepository, log *logger.Logger) *SkuService {
	return &SkuService{skus: skus, products: products, log: log}
}

// CreateSkuInput carries the fields for CreateSku. Quantities default to 0.
type CreateSkuInput struct {
	ProductID        string
	SkuCode          string
	Price            decimal.Decimal
	StockQuantity    int
	ReservedQuantity int
	ReorderPoint     int
	ReorderQuantity  int
}

// CreateSku inserts a new SKU under an existing product. Initial quantities
// must already satisfy the legal region.
func (s *SkuService) CreateSku(ctx context.Context, in CreateSkuInput) (*entity.Sku, error) {
	code := strings.TrimSpace(in.SkuCode)
	if code == "" {
		return nil, domain.NewValidationError("sku_code", "is required")
	}
	if in.StockQuantity < 0 {
		return nil, domain.NewValidationError("stock_quantity", "must be non-negative")
	}
	if in.ReservedQuantity < 0 || in.ReservedQuantity > in.StockQuantity {
		return nil, domain.NewValidationError("reserved_quantity", "must be between 0 and stock quantity")
	}
	if in.ReorderPoint < 0 || in.ReorderQuantity < 0 {
		return nil, domain.NewValidationError("reorder_point", "must be non-negative")
	}
	if in.Price.IsNegative() {
		return nil, domain.NewValidationError("price", "must be non-negative")
	}

	p, err := s.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.IsDeleted() {
		return nil, domain.NewNotFoundError("product", in.ProductID)
	}
	existing, err := s.skus.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewValidationError("sku_code", "duplicate sku code")
	}

	now := time.Now()
	sku := &entity.Sku{
		ID:               uuid.New().String(),
		ProductID:        in.ProductID,
		SkuCode:          code,
		Price:            in.Price,
		StockQuantity:    in.StockQuantity,
		ReservedQuantity: in.ReservedQuantity,
		ReorderPoint:     in.ReorderPoint,
		ReorderQuantity:  in.ReorderQuantity,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.skus.Create(ctx, sku); err != nil {
		return nil, err
	}
	s.log.Info().Str("sku_id", sku.ID).Str("sku_code", sku.SkuCode).Msg("sku created")
	return sku, nil
}

// GetSku returns a SKU by id. Soft-deleted rows remain queryable.
func (s *SkuService) GetSku(ctx context.Context, id string) (*entity.Sku, error) {
	sku, err := s.skus.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.NewNotFoundError("sku", id)
	}
	return sku, nil
}

// ListByProduct returns the SKUs of a product with pagination.
func (s *SkuService) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Sku, error) {
	return s.skus.ListByProduct(ctx, productID, limit, offset)
}

// DeleteSku soft-deletes a SKU. Stock on hand does not block deletion.
func (s *SkuService) DeleteSku(ctx context.Context, id string) error {
	sku, err := s.skus.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sku == nil || sku.IsDeleted() {
		return domain.NewNotFoundError("sku", id)
	}
	return s.skus.SoftDelete(ctx, id, time.Now())
}
