package usecase

import (
	"context"

	"checkout/internal/domain/checkout"
	"checkout/internal/domain/entity"

	"github.com/google/uuid"
)

// ConfirmedCustomer is a customer attached to a checkout with its loyalty discount.
type ConfirmedCustomer struct {
	Customer entity.Customer
	Loyalty  entity.LoyaltyDiscount
}

// CustomerUsecase resolves the customer of a checkout session.
type CustomerUsecase interface {
	// ResolveCustomer looks a national id up locally, then in the national registry.
	ResolveCustomer(ctx context.Context, operatorID, sessionID uuid.UUID, nationalID string) (*checkout.ResolutionView, error)

	// ConfirmCustomer registers a customer found only in the registry, then attaches the
	// customer and its loyalty discount to the checkout.
	ConfirmCustomer(ctx context.Context, operatorID, sessionID uuid.UUID) (*ConfirmedCustomer, error)

	// CancelCustomer abandons any lookup and detaches the customer.
	CancelCustomer(ctx context.Context, operatorID, sessionID uuid.UUID) error
}
