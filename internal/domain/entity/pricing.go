package entity

import "github.com/shopspring/decimal"

// LoyaltyDiscount is the cart-level discount a customer is entitled to.
type LoyaltyDiscount struct {
	Eligible   bool            `json:"eligible"`
	Percentage decimal.Decimal `json:"percentage"` // In [0,100].
}

// Totals is the priced breakdown of a cart. Amounts are unrounded.
type Totals struct {
	Subtotal        decimal.Decimal `json:"subtotal"`         // Tax-exclusive, after per-item discounts.
	ItemDiscount    decimal.Decimal `json:"item_discount"`    // Sum of per-item discounts, tax-inclusive.
	LoyaltyDiscount decimal.Decimal `json:"loyalty_discount"` // Taken off the subtotal.
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
}

// DiscountTotal is the whole amount discounted from the sale. The two parts are on different
// bases: ItemDiscount is measured on tax-inclusive prices while LoyaltyDiscount is taken off the
// tax-exclusive Subtotal. The sum is reported as is and is not used to derive Total.
func (t Totals) DiscountTotal() decimal.Decimal {
	return t.ItemDiscount.Add(t.LoyaltyDiscount)
}
