// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogItem is a sellable product as published by the catalog. It is read-only to checkout.
type CatalogItem struct {
	ID        uuid.UUID       `json:"id"`         // Unique catalog identifier.
	Name      string          `json:"name"`       // Display name.
	Code      string          `json:"code"`       // Barcode or internal code.
	Category  string          `json:"category"`   // Category name, matched case-insensitively by discount rules.
	Stock     int             `json:"stock"`      // Available units in the local stock mirror.
	UnitPrice decimal.Decimal `json:"unit_price"` // Tax-inclusive unit price.
}

// StockLevel is a single entry of the local stock mirror.
type StockLevel struct {
	ItemID uuid.UUID `json:"item_id"`
	Stock  int       `json:"stock"`
}

// StockDecrement is the quantity sold for one catalog item in a submission.
type StockDecrement struct {
	ItemID   uuid.UUID
	Quantity int
}
