// Package handler contains the HTTP handlers of the checkout API.
package handler

import (
	"log/slog"
	"net/http"

	"checkout/internal/delivery/api/response"
	deliverycontext "checkout/internal/delivery/context"
	"checkout/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler holds dependencies for checkout session handlers
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// OpenSession starts a new checkout for the operator
func (h *SessionHandler) OpenSession(c echo.Context) error {
	operatorID, ok := deliverycontext.GetOperatorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid operator ID in token")
	}

	view, err := h.sessionUC.OpenSession(c.Request().Context(), operatorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSessionResponse(view))
}

// ListSessions returns the operator's open sessions
func (h *SessionHandler) ListSessions(c echo.Context) error {
	operatorID, ok := deliverycontext.GetOperatorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid operator ID in token")
	}

	views, err := h.sessionUC.ListSessions(c.Request().Context(), operatorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sessions := make([]SessionResponse, 0, len(views))
	for i := range views {
		sessions = append(sessions, toSessionResponse(&views[i]))
	}

	return response.Success(c, http.StatusOK, sessions)
}

// GetSession returns one session
func (h *SessionHandler) GetSession(c echo.Context) error {
	operatorID, sessionID, ok, err := sessionScope(c)
	if !ok {
		return err
	}

	view, err := h.sessionUC.GetSession(c.Request().Context(), operatorID, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(view))
}

// CloseSession abandons a session
func (h *SessionHandler) CloseSession(c echo.Context) error {
	operatorID, sessionID, ok, err := sessionScope(c)
	if !ok {
		return err
	}

	if err := h.sessionUC.CloseSession(c.Request().Context(), operatorID, sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Session closed successfully"})
}
