package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SaleLine is one sold line in a SaleRecordedEvent.
type SaleLine struct {
	ItemID   string          `json:"item_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"unit_price"`
}

// SaleRecordedEvent is published after every completed checkout, delivered or queued.
type SaleRecordedEvent struct {
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	Reference  string          `json:"reference"`
	Outcome    string          `json:"outcome"`
	OperatorID string          `json:"operator_id"`
	CustomerID string          `json:"customer_id,omitempty"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	Lines      []SaleLine      `json:"lines"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSaleRecorded publishes a sale event for downstream consumers
	PublishSaleRecorded(ctx context.Context, event *SaleRecordedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
