// Package cart holds the line items of the transaction being built at a checkout.
package cart

import (
	"checkout/internal/domain/entity"
	domainerrors "checkout/internal/domain/errors"
	"checkout/internal/domain/pricing"

	"github.com/google/uuid"
)

// Selection is the item picked by the operator but not yet added to the cart.
type Selection struct {
	Item     entity.PricedItem `json:"item"`
	Quantity int               `json:"quantity"`
}

// Ledger owns the cart lines of one in-progress transaction.
// It is not safe for concurrent use; the owning session serializes access.
type Ledger struct {
	lines   []entity.LineItem
	pending *Selection
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Select marks item as the pending selection with a quantity of 1. Stock is checked on Commit.
func (l *Ledger) Select(item entity.PricedItem) {
	l.pending = &Selection{Item: item, Quantity: 1}
}

// Pending returns a copy of the pending selection, or nil.
func (l *Ledger) Pending() *Selection {
	if l.pending == nil {
		return nil
	}
	sel := *l.pending

	return &sel
}

// Commit adds the pending selection to the cart with the given quantity, merging into an
// existing line for the same item. On error the cart is left unchanged.
func (l *Ledger) Commit(quantity int) error {
	if l.pending == nil {
		return domainerrors.ErrNoSelection
	}
	if quantity < 1 {
		return domainerrors.ErrInvalidQuantity
	}

	item := l.pending.Item
	existing := l.QuantityOf(item.ID)
	if existing+quantity > item.Stock {
		return domainerrors.NewInsufficientStockError(item.ID.String(), quantity, max(item.Stock-existing, 0))
	}

	if idx := l.indexOf(item.ID); idx >= 0 {
		l.lines[idx].Quantity += quantity
	} else {
		l.lines = append(l.lines, entity.LineItem{
			PricedItem:    item,
			Quantity:      quantity,
			StockSnapshot: item.Stock,
		})
	}
	l.pending = nil

	return nil
}

// Remove deletes the line for itemID, if any.
func (l *Ledger) Remove(itemID uuid.UUID) {
	if idx := l.indexOf(itemID); idx >= 0 {
		l.lines = append(l.lines[:idx], l.lines[idx+1:]...)
	}
}

// SetQuantity replaces the quantity of an existing line. Quantities below 1 are raised to 1.
// Stock is not checked here. It reports whether the line exists.
func (l *Ledger) SetQuantity(itemID uuid.UUID, quantity int) bool {
	idx := l.indexOf(itemID)
	if idx < 0 {
		return false
	}
	l.lines[idx].Quantity = max(quantity, 1)

	return true
}

// Clear empties the cart and drops the pending selection.
func (l *Ledger) Clear() {
	l.lines = nil
	l.pending = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (l *Ledger) Lines() []entity.LineItem {
	lines := make([]entity.LineItem, len(l.lines))
	copy(lines, l.lines)

	return lines
}

// Line returns the line for itemID.
func (l *Ledger) Line(itemID uuid.UUID) (entity.LineItem, bool) {
	idx := l.indexOf(itemID)
	if idx < 0 {
		return entity.LineItem{}, false
	}

	return l.lines[idx], true
}

// QuantityOf returns the quantity in the cart for itemID, 0 when absent.
func (l *Ledger) QuantityOf(itemID uuid.UUID) int {
	if idx := l.indexOf(itemID); idx >= 0 {
		return l.lines[idx].Quantity
	}

	return 0
}

// IsEmpty reports whether the cart has no lines.
func (l *Ledger) IsEmpty() bool {
	return len(l.lines) == 0
}

// Totals prices the current cart.
func (l *Ledger) Totals(loyalty entity.LoyaltyDiscount) entity.Totals {
	return pricing.Compute(l.lines, loyalty)
}

func (l *Ledger) indexOf(itemID uuid.UUID) int {
	for i := range l.lines {
		if l.lines[i].ID == itemID {
			return i
		}
	}

	return -1
}
