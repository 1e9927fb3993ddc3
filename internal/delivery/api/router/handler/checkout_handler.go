package handler

import (
	"log/slog"
	"net/http"

	"checkout/internal/delivery/api/response"
	"checkout/internal/domain/entity"
	"checkout/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	SubmissionUC usecase.SubmissionUsecase
	ReceiptUC    usecase.ReceiptUsecase
	Logger       *slog.Logger
}

// CheckoutHandler holds dependencies for submission and receipt handlers
type CheckoutHandler struct {
	submissionUC usecase.SubmissionUsecase
	receiptUC    usecase.ReceiptUsecase
	logger       *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		submissionUC: params.SubmissionUC,
		receiptUC:    params.ReceiptUC,
		logger:       params.Logger,
	}
}

// SubmitRequest represents the request body for finalizing a checkout
type SubmitRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,payment_method"`
}

// Submit finalizes the checkout. Both a delivered and a locally queued sale are a success.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	operatorID, sessionID, ok, err := sessionScope(c)
	if !ok {
		return err
	}

	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.submissionUC.Submit(c.Request().Context(), operatorID, sessionID, entity.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSubmissionResponse(result))
}

// Dismiss acknowledges a completed checkout
func (h *CheckoutHandler) Dismiss(c echo.Context) error {
	operatorID, sessionID, ok, err := sessionScope(c)
	if !ok {
		return err
	}

	if err := h.submissionUC.Dismiss(c.Request().Context(), operatorID, sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Checkout dismissed successfully"})
}

// GetReceipt returns the receipt of the completed checkout
func (h *CheckoutHandler) GetReceipt(c echo.Context) error {
	operatorID, sessionID, ok, err := sessionScope(c)
	if !ok {
		return err
	}

	receipt, err := h.receiptUC.GetReceipt(c.Request().Context(), operatorID, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, receipt)
}
