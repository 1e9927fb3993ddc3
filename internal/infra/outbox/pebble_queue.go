// Package outbox keeps transactions the remote ledger could not accept, plus the
// post-sale stock snapshot, in a local Pebble database.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"checkout/config"
	"checkout/internal/domain/entity"
	"checkout/internal/domain/repository"
	"checkout/internal/errors"

	"github.com/cockroachdb/pebble"
	"go.uber.org/fx"
)

const (
	transactionPrefix = "tx/"
	stockPrefix       = "stock/"
)

// PebbleQueue implements repository.FallbackQueue on top of Pebble.
// Every write is synced before it returns.
type PebbleQueue struct {
	db *pebble.DB
	mu sync.Mutex
}

// NewPebbleQueue opens (or creates) the queue stored in dir.
func NewPebbleQueue(dir string) (*PebbleQueue, error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "pebble open")
	}

	return &PebbleQueue{db: db}, nil
}

// Params defines the dependencies of the fx provided queue.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the queue at the configured path and closes it when the app stops.
func New(params Params) (repository.FallbackQueue, error) {
	if params.Config.Outbox == nil {
		return nil, errors.New("outbox configuration is missing")
	}
	path := params.Config.Outbox.Path

	queue, err := NewPebbleQueue(path)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing fallback queue", slog.String("path", path))

			return queue.Close()
		},
	})

	return queue, nil
}

func (q *PebbleQueue) Close() error { return q.db.Close() }

// Append stores tx under its local id, probing upwards while the id is taken.
func (q *PebbleQueue) Append(ctx context.Context, tx entity.Transaction) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	id := tx.LocalID
	for {
		taken, err := q.exists(transactionKey(id))
		if err != nil {
			return 0, err
		}
		if !taken {
			break
		}
		id++
	}
	tx.LocalID = id

	value, err := json.Marshal(tx)
	if err != nil {
		return 0, errors.Wrap(err, "encode queued transaction")
	}

	if err := q.db.Set(transactionKey(id), value, pebble.Sync); err != nil {
		return 0, errors.Wrapf(err, "store queued transaction %d", id)
	}

	return id, nil
}

// List returns the queued transactions in local id order.
func (q *PebbleQueue) List(ctx context.Context) ([]entity.Transaction, error) {
	transactions := make([]entity.Transaction, 0)

	err := q.scan(ctx, transactionPrefix, func(value []byte) error {
		var tx entity.Transaction
		if err := json.Unmarshal(value, &tx); err != nil {
			return errors.Wrap(err, "decode queued transaction")
		}
		transactions = append(transactions, tx)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// SaveStockSnapshot upserts the given levels in a single batch.
func (q *PebbleQueue) SaveStockSnapshot(ctx context.Context, levels []entity.StockLevel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(levels) == 0 {
		return nil
	}

	batch := q.db.NewBatch()
	defer batch.Close()

	for _, level := range levels {
		value, err := json.Marshal(level)
		if err != nil {
			return errors.Wrap(err, "encode stock level")
		}
		if err := batch.Set([]byte(stockPrefix+level.ItemID.String()), value, nil); err != nil {
			return errors.Wrap(err, "stage stock level")
		}
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return errors.Wrap(err, "commit stock snapshot")
	}

	return nil
}

// StockSnapshot returns every persisted stock level.
func (q *PebbleQueue) StockSnapshot(ctx context.Context) ([]entity.StockLevel, error) {
	levels := make([]entity.StockLevel, 0)

	err := q.scan(ctx, stockPrefix, func(value []byte) error {
		var level entity.StockLevel
		if err := json.Unmarshal(value, &level); err != nil {
			return errors.Wrap(err, "decode stock level")
		}
		levels = append(levels, level)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return levels, nil
}

func (q *PebbleQueue) exists(key []byte) (bool, error) {
	_, closer, err := q.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "pebble get")
	}

	return true, closer.Close()
}

func (q *PebbleQueue) scan(ctx context.Context, prefix string, fn func(value []byte) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	it, err := q.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return errors.Wrap(err, "pebble iterator")
	}
	defer it.Close()

	for it.First(); it.Valid(); it.Next() {
		value := append([]byte(nil), it.Value()...)
		if err := fn(value); err != nil {
			return err
		}
	}

	return it.Error()
}

// transactionKey zero pads the id so that key order equals id order.
func transactionKey(id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", transactionPrefix, id))
}

// prefixUpperBound returns the smallest key greater than every key with the prefix.
func prefixUpperBound(prefix string) []byte {
	end := []byte(prefix)
	end[len(end)-1]++

	return end
}
