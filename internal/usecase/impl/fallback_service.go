package impl

import (
	"context"

	"checkout/internal/domain/entity"
	"checkout/internal/domain/repository"
	"checkout/internal/usecase"

	"github.com/pkg/errors"
)

type fallbackService struct {
	queue repository.FallbackQueue
}

// NewFallbackService creates a read-only view over the local fallback queue
func NewFallbackService(queue repository.FallbackQueue) usecase.FallbackUsecase {
	return &fallbackService{queue: queue}
}

// ListQueuedTransactions returns the sales that were recorded only locally.
func (s *fallbackService) ListQueuedTransactions(ctx context.Context) ([]entity.Transaction, error) {
	txs, err := s.queue.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list queued transactions")
	}

	return txs, nil
}

// GetStockSnapshot returns the persisted post-sale stock levels.
func (s *fallbackService) GetStockSnapshot(ctx context.Context) ([]entity.StockLevel, error) {
	levels, err := s.queue.StockSnapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stock snapshot")
	}

	return levels, nil
}
