package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sku is a stock-keeping unit of a product. Quantity fields are mutated
// exclusively through the stock ledger service, which keeps the pair inside
// the legal region: StockQuantity >= 0 and 0 <= ReservedQuantity <=
// StockQuantity. Version backs the optimistic concurrency check.
type Sku struct {
	ID               string
	ProductID        string // immutable after creation
	SkuCode          string // unique
	Price            decimal.Decimal
	StockQuantity    int
	ReservedQuantity int
	ReorderPoint     int
	ReorderQuantity  int
	IsActive         bool
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// AvailableQuantity is the portion of on-hand stock not already committed.
// Derived, never stored.
func (s *Sku) AvailableQuantity() int {
	return s.StockQuantity - s.ReservedQuantity
}

// NeedsReorder reports whether available stock has fallen to the reorder
// point. Reporting only; nothing is enforced transactionally.
func (s *Sku) NeedsReorder() bool {
	return s.AvailableQuantity() <= s.ReorderPoint
}

// IsDeleted reports whether the SKU is soft-deleted.
func (s *Sku) IsDeleted() bool { return s.DeletedAt != nil }
