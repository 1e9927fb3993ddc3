package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how the customer paid.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// IsValid reports whether the payment method is supported.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	default:
		return false
	}
}

// TransactionLine is one sold item as sent to the ledger.
type TransactionLine struct {
	ItemID       uuid.UUID       `json:"item_id"`
	Name         string          `json:"name"`
	DiscountID   *uuid.UUID      `json:"discount_id"`
	UnitDiscount decimal.Decimal `json:"unit_discount"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
}

// Transaction is a finalized sale. It is never mutated once submitted.
// ServerCode is set only when the remote ledger accepted it; LocalID only when it was queued locally.
type Transaction struct {
	OperatorID    uuid.UUID         `json:"operator_id"`
	CustomerID    *uuid.UUID        `json:"customer_id,omitempty"`
	Lines         []TransactionLine `json:"lines"`
	Discount      decimal.Decimal   `json:"discount"` // Totals.DiscountTotal: tax-inclusive item discounts plus the tax-exclusive loyalty discount.
	Subtotal      decimal.Decimal   `json:"subtotal"`
	Tax           decimal.Decimal   `json:"tax"`
	Total         decimal.Decimal   `json:"total"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	CreatedAt     time.Time         `json:"created_at"`
	ServerCode    string            `json:"server_code,omitempty"`
	LocalID       int64             `json:"local_id,omitempty"`
}

// SubmissionOutcome is either Delivered or QueuedLocally.
type SubmissionOutcome interface {
	Reference() string
	submissionOutcome()
}

// Delivered means the remote ledger accepted the transaction.
type Delivered struct {
	ServerCode  string
	SubmittedAt time.Time
}

func (d Delivered) Reference() string { return d.ServerCode }
func (Delivered) submissionOutcome()  {}

// QueuedLocally means the transaction was appended to the local fallback queue.
type QueuedLocally struct {
	LocalID  int64
	QueuedAt time.Time
}

func (q QueuedLocally) Reference() string { return "L" + formatLocalID(q.LocalID) }
func (QueuedLocally) submissionOutcome()  {}

// SubmissionResult is the terminal state of a checkout.
type SubmissionResult struct {
	Transaction Transaction
	Lines       []LineItem
	Customer    *Customer
	Totals      Totals
	Outcome     SubmissionOutcome
}
