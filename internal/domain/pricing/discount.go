// Package pricing holds the pure price computations of a checkout: selecting the best discount
// for an item and totalling a cart.
package pricing

import (
	"time"

	"checkout/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ResolveDiscount picks the best applicable rule for item at the given time and prices the item.
//
// A rule applies when it is enabled, at falls inside its window, its value is in range and its scope
// covers the item. Among applicable rules the one with the largest raw value wins, percentage and
// fixed-amount values compared on the same scale; the first one listed wins a tie.
func ResolveDiscount(item entity.CatalogItem, rules []entity.DiscountRule, at time.Time) entity.PricedItem {
	priced := entity.PricedItem{
		CatalogItem:         item,
		DiscountedUnitPrice: item.UnitPrice,
	}

	var best *entity.DiscountRule
	for i := range rules {
		rule := rules[i]
		if !rule.IsActiveAt(at) || !rule.HasValidValue() || !rule.Covers(item) {
			continue
		}
		if best == nil || rule.Value.GreaterThan(best.Value) {
			best = &rule
		}
	}

	if best == nil {
		return priced
	}

	value := best.Value
	priced.Rule = best
	priced.DiscountValue = &value
	priced.DiscountedUnitPrice = DiscountedPrice(item.UnitPrice, *best)

	return priced
}

// DiscountedPrice applies a single rule to a unit price. The result is never negative and never
// above price.
func DiscountedPrice(price decimal.Decimal, rule entity.DiscountRule) decimal.Decimal {
	switch rule.Kind {
	case entity.DiscountKindPercentage:
		return price.Mul(decimal.NewFromInt(1).Sub(rule.Value.Div(hundred)))
	case entity.DiscountKindFixedAmount:
		return decimal.Max(decimal.Zero, price.Sub(rule.Value))
	default:
		return price
	}
}
