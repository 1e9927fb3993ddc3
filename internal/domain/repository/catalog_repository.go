// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"checkout/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrCatalogItemNotFound is returned when a catalog item does not exist.
	ErrCatalogItemNotFound = errors.New("catalog item not found")
)

// CatalogRepository reads catalog items and maintains the local stock mirror.
type CatalogRepository interface {
	// FindItemByID retrieves a catalog item with its current mirrored stock.
	FindItemByID(ctx context.Context, id uuid.UUID) (*entity.CatalogItem, error)

	// DecrementStock subtracts sold quantities from the stock mirror. Stock never drops below zero.
	DecrementStock(ctx context.Context, decrements []entity.StockDecrement) error

	// ListStockLevels returns the mirrored stock of the given items.
	ListStockLevels(ctx context.Context, ids []uuid.UUID) ([]entity.StockLevel, error)
}
