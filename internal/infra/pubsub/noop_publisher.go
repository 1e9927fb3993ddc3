package pubsub

import (
	"context"
	"log/slog"

	"checkout/internal/domain/service"
)

// noopPublisher drops events when no provider is configured
type noopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishSaleRecorded(ctx context.Context, event *service.SaleRecordedEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Sale event dropped",
		slog.String("reference", event.Reference),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
