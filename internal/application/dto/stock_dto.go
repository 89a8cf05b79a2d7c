package dto

import (
	"time"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
)

// StockOperationRequest is the payload for add/remove/reserve/release.
type StockOperationRequest struct {
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	ReferenceID   string `json:"reference_id"`
	ReferenceType string `json:"reference_type"`
	Reason        string `json:"reason"`
	PerformedBy   string `json:"performed_by"`
}

// AdjustStockRequest is the payload for adjust. Delta is signed.
type AdjustStockRequest struct {
	Delta       int    `json:"delta" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
	PerformedBy string `json:"performed_by"`
}

// TransactionResponse is the wire representation of a ledger entry.
type TransactionResponse struct {
	ID            string    `json:"id"`
	SkuID         string    `json:"sku_id"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	ReferenceType string    `json:"reference_type,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	PerformedBy   string    `json:"performed_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// TransactionListResponse wraps a page of ledger entries.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ToTransactionResponse maps the entity to its wire form.
func ToTransactionResponse(t *entity.InventoryTransaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		SkuID:         t.SkuID,
		Type:          t.Type,
		Quantity:      t.Quantity,
		ReferenceID:   t.ReferenceID,
		ReferenceType: t.ReferenceType,
		Reason:        t.Reason,
		PerformedBy:   t.PerformedBy,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransactionResponses maps a slice of entities.
func ToTransactionResponses(txns []*entity.InventoryTransaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, ToTransactionResponse(t))
	}
	return out
}
