package usecase

import (
	"context"

	"checkout/internal/domain/entity"

	"github.com/google/uuid"
)

// ReceiptUsecase builds the printable receipt of a completed checkout.
type ReceiptUsecase interface {
	GetReceipt(ctx context.Context, operatorID, sessionID uuid.UUID) (*entity.Receipt, error)
}
