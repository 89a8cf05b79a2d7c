package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product belongs to exactly one category and owns zero or more SKUs.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal
	IsActive    bool
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// IsDeleted reports whether the product is soft-deleted.
func (p *Product) IsDeleted() bool { return p.DeletedAt != nil }
