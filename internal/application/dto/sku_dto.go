package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
)

// CreateSkuRequest is the payload for POST /products/:id/skus.
type CreateSkuRequest struct {
	SkuCode          string          `json:"sku_code" validate:"required,max=100"`
	Price            decimal.Decimal `json:"price"`
	StockQuantity    int             `json:"stock_quantity" validate:"omitempty,min=0"`
	ReservedQuantity int             `json:"reserved_quantity" validate:"omitempty,min=0"`
	ReorderPoint     int             `json:"reorder_point" validate:"omitempty,min=0"`
	ReorderQuantity  int             `json:"reorder_quantity" validate:"omitempty,min=0"`
}

// SkuResponse is the wire representation of a SKU. AvailableQuantity is
// derived from the stored pair.
type SkuResponse struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"product_id"`
	SkuCode           string          `json:"sku_code"`
	Price             decimal.Decimal `json:"price"`
	StockQuantity     int             `json:"stock_quantity"`
	ReservedQuantity  int             `json:"reserved_quantity"`
	AvailableQuantity int             `json:"available_quantity"`
	ReorderPoint      int             `json:"reorder_point"`
	ReorderQuantity   int             `json:"reorder_quantity"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         *time.Time      `json:"deleted_at,omitempty"`
}

// SkuListResponse wraps a page of SKUs.
type SkuListResponse struct {
	Items []SkuResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}

// ToSkuResponse maps the entity to its wire form.
func ToSkuResponse(s *entity.Sku) SkuResponse {
	return SkuResponse{
		ID:                s.ID,
		ProductID:         s.ProductID,
		SkuCode:           s.SkuCode,
		Price:             s.Price,
		StockQuantity:     s.StockQuantity,
		ReservedQuantity:  s.ReservedQuantity,
		AvailableQuantity: s.AvailableQuantity(),
		ReorderPoint:      s.ReorderPoint,
		ReorderQuantity:   s.ReorderQuantity,
		IsActive:          s.IsActive,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
		DeletedAt:         s.DeletedAt,
	}
}

// ToSkuResponses maps a slice of entities.
func ToSkuResponses(skus []*entity.Sku) []SkuResponse {
	out := make([]SkuResponse, 0, len(skus))
	for _, s := range skus {
		out = append(out, ToSkuResponse(s))
	}
	return out
}
