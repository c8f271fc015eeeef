package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StorageLocation is where an item should be kept after purchase.
type StorageLocation string

const (
	StorageFridge StorageLocation = "fridge"
	StorageShelf  StorageLocation = "shelf"
)

// ShelfLifeInfo is the enrichment attached to an item after matching it
// against the food reference taxonomy.
type ShelfLifeInfo struct {
	Category           string          `json:"category"`
	RecommendedStorage StorageLocation `json:"recommendedStorage"`
	FridgeDays         int             `json:"shelfLifeFridgeDays,omitempty"`
	ShelfDays          int             `json:"shelfLifeShelfDays,omitempty"`
	Tips               string          `json:"tips,omitempty"`
	Matched            bool            `json:"matched"`
}

// ItemRecord is a single purchased item reconstructed from OCR text.
// UnitPrice is the line total divided by quantity when quantity had to be
// reconstructed after the fact, not necessarily a printed per-unit price.
type ItemRecord struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	ShelfLife *ShelfLifeInfo  `json:"shelfLife,omitempty"`
}

// TotalKey identifies one of the recognized order-total lines.
type TotalKey string

const (
	TotalTax        TotalKey = "tax"
	TotalSubtotal   TotalKey = "subtotal"
	TotalGrandTotal TotalKey = "grand_total"
	TotalOrderTotal TotalKey = "order_total"
	TotalDriverTip  TotalKey = "driver_tip"
)

// OrderTotals maps recognized totals lines to their amounts. A key is present
// only if its line was found in the text; the first unambiguous match per key
// wins.
type OrderTotals map[TotalKey]decimal.Decimal

// SetOnce records an amount for key unless one was already captured.
// Returns true if the amount was recorded.
func (t OrderTotals) SetOnce(key TotalKey, amount decimal.Decimal) bool {
	if _, exists := t[key]; exists {
		return false
	}
	t[key] = amount
	return true
}

// Authoritative returns the single total a consumer should trust:
// grand_total when present, order_total as the fallback.
func (t OrderTotals) Authoritative() (decimal.Decimal, bool) {
	if v, ok := t[TotalGrandTotal]; ok {
		return v, true
	}
	if v, ok := t[TotalOrderTotal]; ok {
		return v, true
	}
	return decimal.Decimal{}, false
}

// Extraction is the output of one extraction run: items in line order plus
// whatever totals lines were found.
type Extraction struct {
	Items  []ItemRecord `json:"items"`
	Totals OrderTotals  `json:"totals"`
}
