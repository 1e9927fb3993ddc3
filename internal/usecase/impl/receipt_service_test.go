package impl

import (
	"context"
	"testing"

	"checkout/config"
	"checkout/internal/domain/checkout"
	"checkout/internal/domain/entity"
	domainerrors "checkout/internal/domain/errors"
	mockSvc "checkout/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeCheckout(t *testing.T, session *checkout.Session, outcome entity.SubmissionOutcome) {
	t.Helper()

	draft, err := session.BeginSubmission()
	require.NoError(t, err)
	tx := buildTransaction(draft, entity.PaymentMethodCash, fixedNow)
	session.FinishSubmission(entity.SubmissionResult{
		Transaction: tx,
		Lines:       draft.Lines,
		Customer:    draft.Customer,
		Totals:      draft.Totals,
		Outcome:     outcome,
	})
}

func TestReceiptService_GetReceipt(t *testing.T) {
	sessions := newSessionStore()
	qr := mockSvc.NewMockQRCodeService(t)
	cfg := &config.Config{
		Store: &config.StoreConfig{Name: "Bodega San Martín", Address: "Av. Grau 123", TaxID: "20123456789"},
	}
	service := NewReceiptService(ReceiptServiceParams{Sessions: sessions, QRCodeService: qr, Config: cfg, Logger: newDiscardLogger()})

	session, item, _, customer := discountedCartSession(t, sessions)
	completeCheckout(t, session, entity.Delivered{ServerCode: "V-000777", SubmittedAt: fixedNow})
	qr.EXPECT().GenerateReceiptQR("V-000777").Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	receipt, err := service.GetReceipt(context.Background(), session.OperatorID, session.ID)

	require.NoError(t, err)
	assert.Equal(t, "Bodega San Martín", receipt.Header.StoreName)
	assert.Equal(t, "V-000777", receipt.Reference)
	assert.True(t, receipt.Delivered)
	assert.Equal(t, customer.Name, receipt.CustomerName)
	assert.Equal(t, customer.NationalID, receipt.CustomerID)
	assert.Equal(t, entity.PaymentMethodCash, receipt.PaymentMethod)
	assert.NotEmpty(t, receipt.QRCodePNG)

	require.Len(t, receipt.Lines, 1)
	line := receipt.Lines[0]
	assert.Equal(t, item.Code, line.Code)
	assert.True(t, line.UnitPrice.Equal(dec("118")))
	assert.True(t, line.UnitDiscount.Equal(dec("11.80")))
	assert.True(t, line.LineTotal.Equal(dec("212.40")))

	assert.True(t, receipt.Subtotal.Equal(dec("180")))
	assert.True(t, receipt.LoyaltyDiscount.Equal(dec("9")))
	assert.True(t, receipt.Tax.Equal(dec("30.78")))
	assert.True(t, receipt.Total.Equal(dec("201.78")))
}

func TestReceiptService_GetReceipt_QueuedLocallyWithoutQR(t *testing.T) {
	sessions := newSessionStore()
	qr := mockSvc.NewMockQRCodeService(t)
	service := NewReceiptService(ReceiptServiceParams{Sessions: sessions, QRCodeService: qr, Logger: newDiscardLogger()})

	session := openSession(t, sessions, uuid.New())
	addToCart(t, session, pricedAt(catalogItem("3.50", 10)), 3)
	completeCheckout(t, session, entity.QueuedLocally{LocalID: 1760000000000, QueuedAt: fixedNow})
	qr.EXPECT().GenerateReceiptQR("L1760000000000").Return(nil, errors.New("encode failed"))

	receipt, err := service.GetReceipt(context.Background(), session.OperatorID, session.ID)

	require.NoError(t, err)
	assert.False(t, receipt.Delivered)
	assert.Equal(t, "L1760000000000", receipt.Reference)
	assert.Empty(t, receipt.QRCodePNG)
	assert.Empty(t, receipt.Header.StoreName)
	assert.True(t, receipt.Lines[0].LineTotal.Equal(dec("10.50")))
}

func TestReceiptService_GetReceipt_NotCompleted(t *testing.T) {
	sessions := newSessionStore()
	service := NewReceiptService(ReceiptServiceParams{Sessions: sessions, QRCodeService: mockSvc.NewMockQRCodeService(t), Logger: newDiscardLogger()})
	session := openSession(t, sessions, uuid.New())

	_, err := service.GetReceipt(context.Background(), session.OperatorID, session.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrReceiptUnavailable))
}
