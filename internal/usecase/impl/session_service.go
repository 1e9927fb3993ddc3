// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "checkout/internal/delivery/context"
	"checkout/internal/domain/checkout"
	domainerrors "checkout/internal/domain/errors"
	"checkout/internal/domain/repository"
	"checkout/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessions repository.SessionStore
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	sessions repository.SessionStore,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		sessions: sessions,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OpenSession starts an empty checkout for the operator.
func (srv *sessionService) OpenSession(ctx context.Context, operatorID uuid.UUID) (*checkout.View, error) {
	if operatorID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrNoOperator, "cannot open a session without an operator")
	}

	session := checkout.NewSession(operatorID, time.Now())
	if err := srv.sessions.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	srv.log(ctx).Info("Checkout session opened", slog.Any("session_id", session.ID), slog.Any("operator_id", operatorID))

	return viewOf(session), nil
}

// GetSession returns the current state of one of the operator's sessions.
func (srv *sessionService) GetSession(ctx context.Context, operatorID, sessionID uuid.UUID) (*checkout.View, error) {
	session, err := loadSession(ctx, srv.sessions, operatorID, sessionID)
	if err != nil {
		return nil, err
	}

	return viewOf(session), nil
}

// ListSessions returns the operator's open sessions.
func (srv *sessionService) ListSessions(ctx context.Context, operatorID uuid.UUID) ([]checkout.View, error) {
	sessions, err := srv.sessions.ListByOperator(ctx, operatorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	views := make([]checkout.View, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, session.View())
	}

	return views, nil
}

// CloseSession abandons a session.
func (srv *sessionService) CloseSession(ctx context.Context, operatorID, sessionID uuid.UUID) error {
	session, err := loadSession(ctx, srv.sessions, operatorID, sessionID)
	if err != nil {
		return err
	}
	if session.View().Submitting {
		return errors.Wrap(domainerrors.ErrCheckoutLocked, "a submission is running")
	}

	if err := srv.sessions.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("Checkout session closed", slog.Any("session_id", sessionID), slog.Any("operator_id", operatorID))

	return nil
}

// loadSession fetches a session and checks that it belongs to the operator.
func loadSession(ctx context.Context, sessions repository.SessionStore, operatorID, sessionID uuid.UUID) (*checkout.Session, error) {
	session, err := sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSessionNotFound, "session not found")
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	if session.OperatorID != operatorID {
		return nil, errors.Wrap(domainerrors.ErrSessionForbidden, "session does not belong to operator")
	}

	return session, nil
}
