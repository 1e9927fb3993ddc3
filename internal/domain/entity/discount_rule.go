package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountScope tells which catalog items a rule targets.
type DiscountScope string

const (
	DiscountScopeItem     DiscountScope = "per-item"
	DiscountScopeCategory DiscountScope = "per-category"
)

// DiscountKind tells how a rule's value is applied to a unit price.
type DiscountKind string

const (
	DiscountKindPercentage  DiscountKind = "percentage"
	DiscountKindFixedAmount DiscountKind = "fixed-amount"
)

// DiscountRule is an externally managed discount. Checkout treats the active subset as an
// immutable input for each pricing pass.
type DiscountRule struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Scope      DiscountScope   `json:"scope"`
	ItemIDs    []uuid.UUID     `json:"item_ids,omitempty"`   // Used when Scope is per-item.
	Categories []string        `json:"categories,omitempty"` // Used when Scope is per-category.
	Kind       DiscountKind    `json:"kind"`
	Value      decimal.Decimal `json:"value"` // Percentage in [0,100] or a fixed amount >= 0.
	StartsAt   time.Time       `json:"starts_at"`
	EndsAt     time.Time       `json:"ends_at"`
	Enabled    bool            `json:"enabled"`
}

// IsActiveAt reports whether the rule is enabled and at falls inside its window (inclusive).
func (r DiscountRule) IsActiveAt(at time.Time) bool {
	if !r.Enabled {
		return false
	}

	return !at.Before(r.StartsAt) && !at.After(r.EndsAt)
}

// HasValidValue reports whether the value is within the bounds of its kind.
func (r DiscountRule) HasValidValue() bool {
	if r.Value.IsNegative() {
		return false
	}

	switch r.Kind {
	case DiscountKindPercentage:
		return r.Value.LessThanOrEqual(decimal.NewFromInt(100))
	case DiscountKindFixedAmount:
		return true
	default:
		return false
	}
}

// Covers reports whether the rule's scope matches the item.
func (r DiscountRule) Covers(item CatalogItem) bool {
	switch r.Scope {
	case DiscountScopeItem:
		for _, id := range r.ItemIDs {
			if id == item.ID {
				return true
			}
		}
	case DiscountScopeCategory:
		for _, category := range r.Categories {
			if strings.EqualFold(category, item.Category) {
				return true
			}
		}
	}

	return false
}
