package pricing

import (
	"testing"

	"checkout/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(price, discounted string, qty int) entity.LineItem {
	item := newItem(price, "Abarrotes")

	return entity.LineItem{
		PricedItem: entity.PricedItem{
			CatalogItem:         item,
			DiscountedUnitPrice: dec(discounted),
		},
		Quantity:      qty,
		StockSnapshot: item.Stock,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "want %s, got %s", want, got.String())
}

func TestCompute_EmptyCartIsZero(t *testing.T) {
	totals := Compute(nil, entity.LoyaltyDiscount{Eligible: true, Percentage: dec("5")})

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.ItemDiscount.IsZero())
	assert.True(t, totals.LoyaltyDiscount.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestCompute_NoDiscount(t *testing.T) {
	totals := Compute([]entity.LineItem{line("118.00", "118.00", 2)}, entity.LoyaltyDiscount{})

	assertDecimal(t, "200", totals.Subtotal)
	assertDecimal(t, "0", totals.ItemDiscount)
	assertDecimal(t, "36", totals.Tax)
	assertDecimal(t, "236", totals.Total)
}

func TestCompute_PercentageItemDiscount(t *testing.T) {
	item := newItem("118.00", "Abarrotes")
	priced := ResolveDiscount(item, []entity.DiscountRule{itemRule(item, entity.DiscountKindPercentage, "10")}, testNow)

	totals := Compute([]entity.LineItem{{PricedItem: priced, Quantity: 2, StockSnapshot: item.Stock}}, entity.LoyaltyDiscount{})

	assertDecimal(t, "106.20", priced.DiscountedUnitPrice)
	assertDecimal(t, "180", totals.Subtotal)
	assertDecimal(t, "23.60", totals.ItemDiscount)
	assertDecimal(t, "32.40", totals.Tax)
	assertDecimal(t, "212.40", totals.Total)
}

func TestCompute_LoyaltyDiscount(t *testing.T) {
	lines := []entity.LineItem{line("118.00", "106.20", 2)}

	totals := Compute(lines, entity.LoyaltyDiscount{Eligible: true, Percentage: dec("5")})

	assertDecimal(t, "180", totals.Subtotal)
	assertDecimal(t, "9", totals.LoyaltyDiscount)
	assertDecimal(t, "30.78", totals.Tax)
	assertDecimal(t, "201.78", totals.Total)
	assertDecimal(t, "32.60", totals.DiscountTotal())
}

func TestCompute_IneligibleLoyaltyIgnored(t *testing.T) {
	lines := []entity.LineItem{line("118.00", "118.00", 1)}

	totals := Compute(lines, entity.LoyaltyDiscount{Eligible: false, Percentage: dec("50")})

	assertDecimal(t, "0", totals.LoyaltyDiscount)
	assertDecimal(t, "118", totals.Total)
}

func TestCompute_Invariants(t *testing.T) {
	carts := [][]entity.LineItem{
		{line("118.00", "118.00", 1)},
		{line("9.90", "8.91", 3), line("4.50", "4.50", 7)},
		{line("0.10", "0", 5), line("1234.56", "1000", 2), line("3.33", "3.00", 11)},
	}
	loyalties := []entity.LoyaltyDiscount{
		{},
		{Eligible: true, Percentage: dec("0")},
		{Eligible: true, Percentage: dec("7.5")},
		{Eligible: true, Percentage: dec("100")},
	}

	for _, cart := range carts {
		for _, loyalty := range loyalties {
			totals := Compute(cart, loyalty)

			net := totals.Subtotal.Sub(totals.LoyaltyDiscount)
			assert.False(t, totals.Subtotal.IsNegative())
			assert.False(t, totals.Tax.IsNegative())
			assert.True(t, totals.Total.Equal(net.Add(totals.Tax)))
			assert.True(t, totals.Total.GreaterThanOrEqual(net))
		}
	}
}

func TestCompute_ItemDiscountOnlyCountsReductions(t *testing.T) {
	lines := []entity.LineItem{
		line("10.00", "10.00", 3),
		line("20.00", "15.00", 2),
	}

	totals := Compute(lines, entity.LoyaltyDiscount{})

	assertDecimal(t, "10", totals.ItemDiscount)
}

func TestCompute_DiscountTotalMixesBases(t *testing.T) {
	lines := []entity.LineItem{line("118.00", "106.20", 2)}

	totals := Compute(lines, entity.LoyaltyDiscount{Eligible: true, Percentage: dec("10")})

	// 23.60 off tax-inclusive prices, 18 off the tax-exclusive subtotal of 180.
	assertDecimal(t, "23.60", totals.ItemDiscount)
	assertDecimal(t, "18", totals.LoyaltyDiscount)
	assertDecimal(t, "41.60", totals.DiscountTotal())
	assertDecimal(t, "191.16", totals.Total)
}
