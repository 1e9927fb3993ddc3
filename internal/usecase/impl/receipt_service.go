package impl

import (
	"context"
	"log/slog"

	"checkout/config"
	deliverycontext "checkout/internal/delivery/context"
	"checkout/internal/domain/entity"
	domainerrors "checkout/internal/domain/errors"
	"checkout/internal/domain/repository"
	"checkout/internal/domain/service"
	"checkout/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Receipts print amounts in currency minor units.
const receiptPlaces = 2

type receiptService struct {
	sessions      repository.SessionStore
	qrcodeService service.QRCodeService
	config        *config.Config
	logger        *slog.Logger
}

// ReceiptServiceParams holds dependencies for ReceiptService, injected by Fx.
type ReceiptServiceParams struct {
	fx.In

	Sessions      repository.SessionStore
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewReceiptService creates a new receipt service instance
func NewReceiptService(params ReceiptServiceParams) usecase.ReceiptUsecase {
	return &receiptService{
		sessions:      params.Sessions,
		qrcodeService: params.QRCodeService,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// GetReceipt builds the receipt of the completed checkout awaiting dismissal.
func (srv *receiptService) GetReceipt(ctx context.Context, operatorID, sessionID uuid.UUID) (*entity.Receipt, error) {
	session, err := loadSession(ctx, srv.sessions, operatorID, sessionID)
	if err != nil {
		return nil, err
	}

	result := session.Completed()
	if result == nil {
		return nil, domainerrors.ErrReceiptUnavailable
	}

	receipt := buildReceipt(srv.header(), result)

	qr, err := srv.qrcodeService.GenerateReceiptQR(receipt.Reference)
	if err != nil {
		// The receipt is still printable without its code.
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to generate receipt QR code",
			slog.String("reference", receipt.Reference),
			slog.Any("error", err),
		)
	} else {
		receipt.QRCodePNG = qr
	}

	return receipt, nil
}

func (srv *receiptService) header() entity.ReceiptHeader {
	if srv.config == nil || srv.config.Store == nil {
		return entity.ReceiptHeader{}
	}
	store := srv.config.Store

	return entity.ReceiptHeader{
		StoreName: store.Name,
		Address:   store.Address,
		Phone:     store.Phone,
		TaxID:     store.TaxID,
	}
}

func buildReceipt(header entity.ReceiptHeader, result *entity.SubmissionResult) *entity.Receipt {
	tx := result.Transaction
	_, delivered := result.Outcome.(entity.Delivered)

	receipt := &entity.Receipt{
		Header:          header,
		Reference:       result.Outcome.Reference(),
		Delivered:       delivered,
		IssuedAt:        tx.CreatedAt,
		OperatorID:      tx.OperatorID.String(),
		PaymentMethod:   tx.PaymentMethod,
		Lines:           make([]entity.ReceiptLine, 0, len(result.Lines)),
		Subtotal:        result.Totals.Subtotal.Round(receiptPlaces),
		LoyaltyDiscount: result.Totals.LoyaltyDiscount.Round(receiptPlaces),
		Tax:             result.Totals.Tax.Round(receiptPlaces),
		Total:           result.Totals.Total.Round(receiptPlaces),
	}
	if result.Customer != nil {
		receipt.CustomerName = result.Customer.Name
		receipt.CustomerID = result.Customer.NationalID
	}

	for _, line := range result.Lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		receipt.Lines = append(receipt.Lines, entity.ReceiptLine{
			Name:         line.Name,
			Code:         line.Code,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice.Round(receiptPlaces),
			UnitDiscount: line.UnitDiscount().Round(receiptPlaces),
			LineTotal:    line.DiscountedUnitPrice.Mul(qty).Round(receiptPlaces),
		})
	}

	return receipt
}
