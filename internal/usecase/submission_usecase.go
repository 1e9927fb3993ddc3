package usecase

import (
	"context"

	"checkout/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmissionUsecase finalizes checkouts.
type SubmissionUsecase interface {
	// Submit sends the cart to the remote ledger, falling back to the local queue when the ledger
	// cannot be reached. A sale is only reported as failed when neither could record it.
	Submit(ctx context.Context, operatorID, sessionID uuid.UUID, method entity.PaymentMethod) (*entity.SubmissionResult, error)

	// Dismiss acknowledges a completed checkout and clears the session for the next sale.
	Dismiss(ctx context.Context, operatorID, sessionID uuid.UUID) error
}
