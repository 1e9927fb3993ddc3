package outbox

import (
	"context"
	"testing"
	"time"

	"checkout/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T) *PebbleQueue {
	t.Helper()

	queue, err := NewPebbleQueue(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = queue.Close() })

	return queue
}

func queuedTransaction(localID int64) entity.Transaction {
	return entity.Transaction{
		OperatorID: uuid.New(),
		Lines: []entity.TransactionLine{{
			ItemID:       uuid.New(),
			Name:         "Coffee",
			UnitDiscount: decimal.Zero,
			UnitPrice:    decimal.RequireFromString("118"),
			Quantity:     2,
		}},
		Discount:      decimal.Zero,
		Subtotal:      decimal.RequireFromString("200"),
		Tax:           decimal.RequireFromString("36"),
		Total:         decimal.RequireFromString("236"),
		PaymentMethod: entity.PaymentMethodCash,
		CreatedAt:     time.UnixMilli(localID).UTC(),
		LocalID:       localID,
	}
}

func TestPebbleQueue_AppendAndList(t *testing.T) {
	queue := newTestQueue(t)
	ctx := context.Background()

	id, err := queue.Append(ctx, queuedTransaction(1700000000200))
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000200), id)

	id, err = queue.Append(ctx, queuedTransaction(1700000000100))
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000100), id)

	transactions, err := queue.List(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, int64(1700000000100), transactions[0].LocalID)
	assert.Equal(t, int64(1700000000200), transactions[1].LocalID)
	assert.True(t, transactions[1].Total.Equal(decimal.RequireFromString("236")))
	assert.Equal(t, 2, transactions[1].Lines[0].Quantity)
}

func TestPebbleQueue_AppendMovesPastTakenID(t *testing.T) {
	queue := newTestQueue(t)
	ctx := context.Background()

	first, err := queue.Append(ctx, queuedTransaction(42))
	require.NoError(t, err)
	second, err := queue.Append(ctx, queuedTransaction(42))
	require.NoError(t, err)
	third, err := queue.Append(ctx, queuedTransaction(42))
	require.NoError(t, err)

	assert.Equal(t, int64(42), first)
	assert.Equal(t, int64(43), second)
	assert.Equal(t, int64(44), third)

	transactions, err := queue.List(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 3)
	assert.Equal(t, int64(43), transactions[1].LocalID)
}

func TestPebbleQueue_ListEmpty(t *testing.T) {
	queue := newTestQueue(t)

	transactions, err := queue.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestPebbleQueue_StockSnapshotUpserts(t *testing.T) {
	queue := newTestQueue(t)
	ctx := context.Background()
	itemA, itemB := uuid.New(), uuid.New()

	require.NoError(t, queue.SaveStockSnapshot(ctx, []entity.StockLevel{
		{ItemID: itemA, Stock: 10},
		{ItemID: itemB, Stock: 3},
	}))
	require.NoError(t, queue.SaveStockSnapshot(ctx, []entity.StockLevel{
		{ItemID: itemA, Stock: 8},
	}))

	levels, err := queue.StockSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, levels, 2)

	byItem := make(map[uuid.UUID]int, len(levels))
	for _, level := range levels {
		byItem[level.ItemID] = level.Stock
	}
	assert.Equal(t, 8, byItem[itemA])
	assert.Equal(t, 3, byItem[itemB])
}

func TestPebbleQueue_SnapshotAndTransactionsDoNotMix(t *testing.T) {
	queue := newTestQueue(t)
	ctx := context.Background()

	_, err := queue.Append(ctx, queuedTransaction(1))
	require.NoError(t, err)
	require.NoError(t, queue.SaveStockSnapshot(ctx, []entity.StockLevel{{ItemID: uuid.New(), Stock: 1}}))

	transactions, err := queue.List(ctx)
	require.NoError(t, err)
	assert.Len(t, transactions, 1)

	levels, err := queue.StockSnapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, levels, 1)
}

func TestPebbleQueue_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	queue, err := NewPebbleQueue(dir)
	require.NoError(t, err)
	_, err = queue.Append(ctx, queuedTransaction(7))
	require.NoError(t, err)
	require.NoError(t, queue.Close())

	reopened, err := NewPebbleQueue(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	transactions, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, int64(7), transactions[0].LocalID)
}

func TestPebbleQueue_CancelledContext(t *testing.T) {
	queue := newTestQueue(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := queue.Append(ctx, queuedTransaction(1))
	assert.ErrorIs(t, err, context.Canceled)
}
