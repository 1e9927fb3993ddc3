package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"checkout/config"
	"checkout/internal/domain/constants"
	"checkout/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func saleEvent() *service.SaleRecordedEvent {
	return &service.SaleRecordedEvent{
		RequestID:  "req-42",
		Reference:  "TX-1001",
		Outcome:    constants.OutcomeDelivered,
		OperatorID: "4b0c7a40-8d8b-4a5e-9d3c-0c9fb1a0a001",
		Subtotal:   decimal.RequireFromString("200"),
		Discount:   decimal.Zero,
		Tax:        decimal.RequireFromString("36"),
		Total:      decimal.RequireFromString("236"),
		Lines: []service.SaleLine{
			{ItemID: "item-1", Quantity: 2, Price: decimal.RequireFromString("118")},
		},
		RecordedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishSaleRecorded(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishSaleRecorded(context.Background(), saleEvent())

	require.NoError(t, err)
	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, "TX-1001", received.Message.MessageID)
	assert.Equal(t, constants.OutcomeDelivered, received.Message.Attributes["outcome"])
	assert.Equal(t, "req-42", received.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.SaleRecordedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "TX-1001", decoded.Reference)
	assert.True(t, decoded.Total.Equal(decimal.RequireFromString("236")))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	assert.Error(t, publisher.PublishSaleRecorded(context.Background(), saleEvent()))
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(discardLogger())

	assert.NoError(t, publisher.PublishSaleRecorded(context.Background(), saleEvent()))
	assert.NoError(t, publisher.Close())
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := saleEvent()
	event.RequestID = ""

	attributes := eventAttributes(event)

	assert.NotContains(t, attributes, "request_id")
	assert.Equal(t, "TX-1001", attributes["reference"])
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
		want    any
	}{
		{name: "not configured", pubsub: nil, want: &noopPublisher{}},
		{name: "noop", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderNoop}, want: &noopPublisher{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9"}, want: &localHTTPPublisher{}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "sales"}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "pos"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, publisher)
		})
	}
}
