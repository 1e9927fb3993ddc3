package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricedItem is a catalog item with at most one resolved discount rule.
// DiscountedUnitPrice never exceeds UnitPrice; without a rule both are equal and Rule is nil.
type PricedItem struct {
	CatalogItem
	Rule                *DiscountRule    `json:"rule,omitempty"`
	DiscountValue       *decimal.Decimal `json:"discount_value,omitempty"`
	DiscountedUnitPrice decimal.Decimal  `json:"discounted_unit_price"`
}

// HasDiscount reports whether the resolved rule actually lowers the price.
func (p PricedItem) HasDiscount() bool {
	return p.DiscountedUnitPrice.LessThan(p.UnitPrice)
}

// UnitDiscount is the per-unit amount taken off the tax-inclusive price.
func (p PricedItem) UnitDiscount() decimal.Decimal {
	if !p.HasDiscount() {
		return decimal.Zero
	}

	return p.UnitPrice.Sub(p.DiscountedUnitPrice)
}

// DiscountID returns the id of the resolved rule, if any.
func (p PricedItem) DiscountID() *uuid.UUID {
	if p.Rule == nil {
		return nil
	}
	id := p.Rule.ID

	return &id
}

// LineItem is one cart row. StockSnapshot is the item's stock when it was selected.
type LineItem struct {
	PricedItem
	Quantity      int `json:"quantity"`
	StockSnapshot int `json:"stock_snapshot"`
}
