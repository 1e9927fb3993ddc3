package service

import (
	"context"

	"checkout/internal/domain/entity"

	"github.com/google/uuid"
)

// LoyaltyService resolves a customer's cart-level loyalty discount.
type LoyaltyService interface {
	Eligibility(ctx context.Context, customerID uuid.UUID) (entity.LoyaltyDiscount, error)
}
