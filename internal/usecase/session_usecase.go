// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"checkout/internal/domain/checkout"

	"github.com/google/uuid"
)

// SessionUsecase manages the checkout sessions of an operator.
type SessionUsecase interface {
	// OpenSession starts an empty checkout for the operator.
	OpenSession(ctx context.Context, operatorID uuid.UUID) (*checkout.View, error)

	// GetSession returns the current state of one of the operator's sessions.
	GetSession(ctx context.Context, operatorID, sessionID uuid.UUID) (*checkout.View, error)

	// ListSessions returns the operator's open sessions.
	ListSessions(ctx context.Context, operatorID uuid.UUID) ([]checkout.View, error)

	// CloseSession abandons a session. A session with a running submission cannot be closed.
	CloseSession(ctx context.Context, operatorID, sessionID uuid.UUID) error
}
