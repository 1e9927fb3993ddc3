package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"checkout/config"
	"checkout/internal/domain/entity"
	"checkout/internal/domain/service"
	"checkout/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ledgerLine struct {
	ItemID       uuid.UUID       `json:"item_id"`
	DiscountID   *uuid.UUID      `json:"discount_id"`
	UnitDiscount decimal.Decimal `json:"unit_discount"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
}

type ledgerRequest struct {
	OperatorID    uuid.UUID            `json:"operator_id"`
	CustomerID    *uuid.UUID           `json:"customer_id"`
	Discount      decimal.Decimal      `json:"discount"` // Mixed basis, see entity.Totals.DiscountTotal.
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Tax           decimal.Decimal      `json:"tax"`
	Total         decimal.Decimal      `json:"total"`
	PaymentMethod entity.PaymentMethod `json:"payment_method"`
	Lines         []ledgerLine         `json:"lines"`
}

type ledgerResponse struct {
	Code        string    `json:"code"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ledgerClient struct {
	http *httpClient
	now  func() time.Time
}

// NewLedgerClient creates the client of the remote transaction ledger.
func NewLedgerClient(cfg *config.Config) (service.LedgerClient, error) {
	client, err := newHTTPClient("ledger", cfg.Ledger)
	if err != nil {
		return nil, err
	}

	return &ledgerClient{http: client, now: time.Now}, nil
}

// SubmitTransaction posts the transaction. Anything other than a 2xx answer carrying a
// transaction code is an error.
func (c *ledgerClient) SubmitTransaction(ctx context.Context, tx *entity.Transaction) (*service.LedgerReceipt, error) {
	req, err := c.http.newRequest(ctx, http.MethodPost, toLedgerRequest(tx), "transactions")
	if err != nil {
		return nil, err
	}

	status, body, err := c.http.do(req)
	if err != nil {
		return nil, errors.Wrap(err, "submit transaction")
	}
	if !isSuccess(status) {
		return nil, &StatusError{StatusCode: status, Body: string(body)}
	}

	var resp ledgerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "decode ledger response")
	}
	if strings.TrimSpace(resp.Code) == "" {
		return nil, errors.New("ledger response has no transaction code")
	}
	if resp.SubmittedAt.IsZero() {
		resp.SubmittedAt = c.now()
	}

	return &service.LedgerReceipt{
		Code:        resp.Code,
		SubmittedAt: resp.SubmittedAt,
	}, nil
}

func toLedgerRequest(tx *entity.Transaction) ledgerRequest {
	lines := make([]ledgerLine, 0, len(tx.Lines))
	for _, line := range tx.Lines {
		lines = append(lines, ledgerLine{
			ItemID:       line.ItemID,
			DiscountID:   line.DiscountID,
			UnitDiscount: line.UnitDiscount,
			UnitPrice:    line.UnitPrice,
			Quantity:     line.Quantity,
		})
	}

	return ledgerRequest{
		OperatorID:    tx.OperatorID,
		CustomerID:    tx.CustomerID,
		Discount:      tx.Discount,
		Subtotal:      tx.Subtotal,
		Tax:           tx.Tax,
		Total:         tx.Total,
		PaymentMethod: tx.PaymentMethod,
		Lines:         lines,
	}
}
