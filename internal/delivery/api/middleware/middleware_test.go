package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "checkout/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func handleError(t *testing.T, err error) (int, errorBody) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandleHTTPError(t *testing.T) {
	t.Run("wrapped app error", func(t *testing.T) {
		code, body := handleError(t, errors.Wrap(domainerrors.ErrCheckoutLocked, "commit selection"))

		assert.Equal(t, domainerrors.ErrCheckoutLocked.HTTPCode(), code)
		assert.Equal(t, domainerrors.ErrCheckoutLocked.ErrorCode(), body.Error.Code)
	})

	t.Run("insufficient stock details", func(t *testing.T) {
		code, body := handleError(t, domainerrors.NewInsufficientStockError("item-1", 5, 2))

		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "INSUFFICIENT_STOCK", body.Error.Code)
		assert.Equal(t, "item-1", body.Error.Details["item_id"])
		assert.EqualValues(t, 2, body.Error.Details["remaining"])
	})

	t.Run("echo http error", func(t *testing.T) {
		code, body := handleError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "HTTP_ERROR", body.Error.Code)
		assert.Equal(t, "Not Found", body.Error.Message)
	})

	t.Run("unknown error hides internals", func(t *testing.T) {
		code, body := handleError(t, errors.New("pebble: closed"))

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "pebble")
	})
}
