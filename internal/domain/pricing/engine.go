package pricing

import (
	"checkout/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// TaxRate is the sales tax embedded in every unit price.
var TaxRate = decimal.RequireFromString("0.18")

// Compute totals a set of cart lines. Prices are tax-inclusive, so the tax-exclusive base of each
// line is extracted before the cart-level loyalty discount and tax are applied. Nothing is rounded.
func Compute(lines []entity.LineItem, loyalty entity.LoyaltyDiscount) entity.Totals {
	divisor := decimal.NewFromInt(1).Add(TaxRate)

	subtotal := decimal.Zero
	itemDiscount := decimal.Zero
	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		subtotal = subtotal.Add(line.DiscountedUnitPrice.Div(divisor).Mul(qty))
		if line.HasDiscount() {
			itemDiscount = itemDiscount.Add(line.UnitPrice.Sub(line.DiscountedUnitPrice).Mul(qty))
		}
	}

	loyaltyAmount := decimal.Zero
	if loyalty.Eligible {
		loyaltyAmount = subtotal.Mul(loyalty.Percentage.Div(hundred))
	}

	taxable := subtotal.Sub(loyaltyAmount)
	tax := taxable.Mul(TaxRate)

	return entity.Totals{
		Subtotal:        subtotal,
		ItemDiscount:    itemDiscount,
		LoyaltyDiscount: loyaltyAmount,
		Tax:             tax,
		Total:           taxable.Add(tax),
	}
}
