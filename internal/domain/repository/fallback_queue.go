package repository

import (
	"context"

	"checkout/internal/domain/entity"
)

// FallbackQueue is the local durable outbox for sales the remote ledger did not confirm.
// Records are only read back for diagnostics.
type FallbackQueue interface {
	// Append stores tx under tx.LocalID, moving to the next free id when it is taken, and
	// returns the id it was stored under.
	Append(ctx context.Context, tx entity.Transaction) (int64, error)

	// List returns every queued transaction ordered by local id.
	List(ctx context.Context) ([]entity.Transaction, error)

	// SaveStockSnapshot upserts post-sale stock levels.
	SaveStockSnapshot(ctx context.Context, levels []entity.StockLevel) error

	// StockSnapshot returns the persisted stock levels.
	StockSnapshot(ctx context.Context) ([]entity.StockLevel, error)
}
