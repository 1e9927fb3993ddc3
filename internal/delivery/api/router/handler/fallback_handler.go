package handler

import (
	"net/http"

	"checkout/internal/delivery/api/response"
	"checkout/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FallbackHandler exposes the local fallback queue
type FallbackHandler struct {
	fallbackUC usecase.FallbackUsecase
}

// NewFallbackHandler is the constructor for FallbackHandler
func NewFallbackHandler(fallbackUC usecase.FallbackUsecase) *FallbackHandler {
	return &FallbackHandler{fallbackUC: fallbackUC}
}

// ListTransactions returns the transactions queued while the ledger was unreachable
func (h *FallbackHandler) ListTransactions(c echo.Context) error {
	txs, err := h.fallbackUC.ListQueuedTransactions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, txs)
}

// GetStockSnapshot returns the last saved local stock mirror
func (h *FallbackHandler) GetStockSnapshot(c echo.Context) error {
	levels, err := h.fallbackUC.GetStockSnapshot(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, levels)
}
