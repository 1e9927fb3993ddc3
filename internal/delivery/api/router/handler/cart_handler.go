package handler

import (
	"log/slog"
	"net/http"

	"checkout/internal/delivery/api/response"
	"checkout/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart editing handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// SelectItemRequest represents the request body for selecting a catalog item
type SelectItemRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
}

// CommitSelectionRequest represents the request body for committing the pending selection
type CommitSelectionRequest struct {
	Quantity int `json:"quantity"`
}

// SetQuantityRequest represents the request body for changing a line's quantity
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// SelectItem prices a catalog item and makes it the pending selection
func (h *CartHandler) SelectItem(c echo.Context) error {
	operatorID, sessionID, ok, err := sessionScope(c)
	if !ok {
		return err
	}

	var req SelectItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.cartUC.SelectItem(c.Request().Context(), operatorID, sessionID, uuid.MustParse(req.ItemID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(view))
}

// CommitSelection adds the pending selection to the cart
func (h *CartHandler) CommitSelection(c echo.Context) error {
	operatorID, sessionID, ok, err := sessionScope(c)
	if !ok {
		return err
	}

	var req CommitSelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	view, err := h.cartUC.CommitSelection(c.Request().Context(), operatorID, sessionID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(view))
}

// SetQuantity replaces the quantity of a cart line
func (h *CartHandler) SetQuantity(c echo.Context) error {
	operatorID, sessionID, ok, err := sessionScope(c)
	if !ok {
		return err
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	var req SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.cartUC.SetQuantity(c.Request().Context(), operatorID, sessionID, itemID, *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(view))
}

// RemoveLine deletes a cart line
func (h *CartHandler) RemoveLine(c echo.Context) error {
	operatorID, sessionID, ok, err := sessionScope(c)
	if !ok {
		return err
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	view, err := h.cartUC.RemoveLine(c.Request().Context(), operatorID, sessionID, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(view))
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	operatorID, sessionID, ok, err := sessionScope(c)
	if !ok {
		return err
	}

	view, err := h.cartUC.ClearCart(c.Request().Context(), operatorID, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(view))
}
