package handler

import (
	"log/slog"
	"net/http"

	"checkout/internal/delivery/api/response"
	"checkout/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler holds dependencies for customer resolution handlers
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// ResolveCustomerRequest represents the request body for looking up a customer
type ResolveCustomerRequest struct {
	NationalID string `json:"national_id" validate:"required"`
}

// ResolveCustomer looks up a customer by national identity number.
// The 8 digit rule is enforced by the usecase so the lookup state records the failure.
func (h *CustomerHandler) ResolveCustomer(c echo.Context) error {
	operatorID, sessionID, ok, err := sessionScope(c)
	if !ok {
		return err
	}

	var req ResolveCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.customerUC.ResolveCustomer(c.Request().Context(), operatorID, sessionID, req.NationalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toResolutionResponse(*view))
}

// ConfirmCustomer attaches the found customer to the checkout
func (h *CustomerHandler) ConfirmCustomer(c echo.Context) error {
	operatorID, sessionID, ok, err := sessionScope(c)
	if !ok {
		return err
	}

	confirmed, err := h.customerUC.ConfirmCustomer(c.Request().Context(), operatorID, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ConfirmedCustomerResponse{
		Customer: confirmed.Customer,
		Loyalty:  toLoyaltyResponse(confirmed.Loyalty),
	})
}

// CancelCustomer detaches the customer and abandons any lookup
func (h *CustomerHandler) CancelCustomer(c echo.Context) error {
	operatorID, sessionID, ok, err := sessionScope(c)
	if !ok {
		return err
	}

	if err := h.customerUC.CancelCustomer(c.Request().Context(), operatorID, sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Customer cleared successfully"})
}
