package entity

import "time"

// Inventory transaction types.
const (
	TransactionTypeIn         = "IN"         // stock received
	TransactionTypeOut        = "OUT"        // stock shipped
	TransactionTypeAdjustment = "ADJUSTMENT" // manual correction, signed
	TransactionTypeReserve    = "RESERVE"    // earmarked for an order
	TransactionTypeRelease    = "RELEASE"    // reservation returned
)

// InventoryTransaction is one immutable entry in the per-SKU audit ledger.
// IN/OUT/RESERVE/RELEASE record the applied magnitude with the type implying
// direction; ADJUSTMENT records the signed delta. Rows are never updated or
// deleted once written.
type InventoryTransaction struct {
	ID            string
	SkuID         string
	Type          string
	Quantity      int
	ReferenceID   string // external business document, optional
	ReferenceType string
	Reason        string
	PerformedBy   string
	CreatedAt     time.Time
}

// ValidTransactionType reports whether t is a known ledger entry type.
func ValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeIn, TransactionTypeOut, TransactionTypeAdjustment,
		TransactionTypeReserve, TransactionTypeRelease:
		return true
	}
	return false
}
