package repository

import (
	"context"

	"checkout/internal/domain/checkout"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned for unknown checkout sessions.
var ErrSessionNotFound = errors.New("checkout session not found")

// SessionStore keeps the open checkout sessions.
type SessionStore interface {
	Save(ctx context.Context, session *checkout.Session) error
	Get(ctx context.Context, id uuid.UUID) (*checkout.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOperator(ctx context.Context, operatorID uuid.UUID) ([]*checkout.Session, error)
}
