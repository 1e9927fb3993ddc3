package usecase

import (
	"context"

	"checkout/internal/domain/entity"
)

// FallbackUsecase exposes the local fallback queue for diagnostics.
type FallbackUsecase interface {
	ListQueuedTransactions(ctx context.Context) ([]entity.Transaction, error)
	GetStockSnapshot(ctx context.Context) ([]entity.StockLevel, error)
}
