package usecase

import (
	"context"

	"checkout/internal/domain/checkout"

	"github.com/google/uuid"
)

// CartUsecase edits the cart of a checkout session.
type CartUsecase interface {
	// SelectItem prices a catalog item against the active discount rules and makes it the
	// pending selection.
	SelectItem(ctx context.Context, operatorID, sessionID, itemID uuid.UUID) (*checkout.View, error)

	// CommitSelection adds the pending selection with the given quantity.
	CommitSelection(ctx context.Context, operatorID, sessionID uuid.UUID, quantity int) (*checkout.View, error)

	// SetQuantity replaces the quantity of a cart line, checking it against the stock seen at selection.
	SetQuantity(ctx context.Context, operatorID, sessionID, itemID uuid.UUID, quantity int) (*checkout.View, error)

	// RemoveLine deletes a cart line.
	RemoveLine(ctx context.Context, operatorID, sessionID, itemID uuid.UUID) (*checkout.View, error)

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, operatorID, sessionID uuid.UUID) (*checkout.View, error)
}
