package service

import (
	"context"
	"time"

	"checkout/internal/domain/entity"
)

// LedgerReceipt is the remote ledger's acknowledgement of a transaction.
type LedgerReceipt struct {
	Code        string
	SubmittedAt time.Time
}

// LedgerClient submits finalized transactions to the remote ledger.
// Any error means the transaction was not confirmed.
type LedgerClient interface {
	SubmitTransaction(ctx context.Context, tx *entity.Transaction) (*LedgerReceipt, error)
}
