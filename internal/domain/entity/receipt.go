package entity

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// ReceiptLine is a single printed line.
type ReceiptLine struct {
	Name         string          `json:"name"`
	Code         string          `json:"code"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitDiscount decimal.Decimal `json:"unit_discount"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// Receipt is the input contract of the receipt renderer. Amounts are rounded for display.
type Receipt struct {
	Header          ReceiptHeader   `json:"header"`
	Reference       string          `json:"reference"`
	Delivered       bool            `json:"delivered"`
	IssuedAt        time.Time       `json:"issued_at"`
	OperatorID      string          `json:"operator_id"`
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerID      string          `json:"customer_national_id,omitempty"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	Lines           []ReceiptLine   `json:"lines"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	LoyaltyDiscount decimal.Decimal `json:"loyalty_discount"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	QRCodePNG       []byte          `json:"qr_code_png,omitempty"`
}

func formatLocalID(id int64) string {
	return strconv.FormatInt(id, 10)
}
