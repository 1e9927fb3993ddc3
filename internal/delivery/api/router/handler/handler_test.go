package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"checkout/internal/delivery/api/validator"
	deliverycontext "checkout/internal/delivery/context"
	"checkout/internal/domain/cart"
	"checkout/internal/domain/checkout"
	"checkout/internal/domain/entity"
	domainerrors "checkout/internal/domain/errors"
	mockusecase "checkout/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testOperatorID = uuid.MustParse("6f0d7f0e-1a1b-4c3d-9e8f-000000000001")
	testSessionID  = uuid.MustParse("6f0d7f0e-1a1b-4c3d-9e8f-000000000002")
	testItemID     = uuid.MustParse("6f0d7f0e-1a1b-4c3d-9e8f-000000000003")
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func asOperator(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deliverycontext.SetOperatorID(c, testOperatorID)

		return next(c)
	}
}

func serve(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func testView() *checkout.View {
	item := entity.PricedItem{
		CatalogItem: entity.CatalogItem{
			ID:        testItemID,
			Name:      "Coffee",
			Code:      "7501",
			Category:  "drinks",
			Stock:     10,
			UnitPrice: decimal.RequireFromString("2.50"),
		},
		DiscountedUnitPrice: decimal.RequireFromString("2.50"),
	}

	return &checkout.View{
		ID:         testSessionID,
		OperatorID: testOperatorID,
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Lines:      []entity.LineItem{{PricedItem: item, Quantity: 3, StockSnapshot: 10}},
		Pending:    &cart.Selection{Item: item, Quantity: 1},
		Totals: entity.Totals{
			Subtotal: decimal.RequireFromString("6.4655"),
			Tax:      decimal.RequireFromString("1.0345"),
			Total:    decimal.RequireFromString("7.5"),
		},
		Resolution: checkout.ResolutionView{State: checkout.ResolutionIdle},
	}
}

func TestSessionHandler_OpenSession(t *testing.T) {
	sessionUC := mockusecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, Logger: slog.Default()})
	e := newTestEcho()
	e.POST("/sessions", h.OpenSession, asOperator)

	sessionUC.EXPECT().OpenSession(mock.Anything, testOperatorID).Return(testView(), nil).Once()

	rec, env := serve(t, e, http.MethodPost, "/sessions", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	var session SessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, testSessionID, session.ID)
	require.Len(t, session.Lines, 1)
	assert.Equal(t, "7.5", session.Lines[0].LineTotal.String())
	assert.Equal(t, "6.47", session.Totals.Subtotal.String())
	assert.Equal(t, "1.03", session.Totals.Tax.String())
	require.NotNil(t, session.Pending)
	assert.Equal(t, checkout.ResolutionIdle, session.Resolution.State)
}

func TestSessionHandler_RequiresOperator(t *testing.T) {
	sessionUC := mockusecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, Logger: slog.Default()})
	e := newTestEcho()
	e.GET("/sessions", h.ListSessions)

	rec, env := serve(t, e, http.MethodGet, "/sessions", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
}

func TestSessionHandler_GetSession(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(uc *mockusecase.MockSessionUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid session id",
			path:       "/sessions/not-a-uuid",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name: "session of another operator",
			path: "/sessions/" + testSessionID.String(),
			setup: func(uc *mockusecase.MockSessionUsecase) {
				uc.EXPECT().GetSession(mock.Anything, testOperatorID, testSessionID).
					Return(nil, domainerrors.ErrSessionForbidden).Once()
			},
			wantStatus: domainerrors.ErrSessionForbidden.HTTPCode(),
			wantCode:   domainerrors.ErrSessionForbidden.ErrorCode(),
		},
		{
			name: "found",
			path: "/sessions/" + testSessionID.String(),
			setup: func(uc *mockusecase.MockSessionUsecase) {
				uc.EXPECT().GetSession(mock.Anything, testOperatorID, testSessionID).Return(testView(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionUC := mockusecase.NewMockSessionUsecase(t)
			if tt.setup != nil {
				tt.setup(sessionUC)
			}
			h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, Logger: slog.Default()})
			e := newTestEcho()
			e.GET("/sessions/:id", h.GetSession, asOperator)

			rec, env := serve(t, e, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
			}
		})
	}
}

func TestCartHandler_SelectItemValidation(t *testing.T) {
	cartUC := mockusecase.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: slog.Default()})
	e := newTestEcho()
	e.POST("/sessions/:id/selection", h.SelectItem, asOperator)

	rec, env := serve(t, e, http.MethodPost, "/sessions/"+testSessionID.String()+"/selection", `{"item_id":"abc"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestCartHandler_CommitSelectionInsufficientStock(t *testing.T) {
	cartUC := mockusecase.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: slog.Default()})
	e := newTestEcho()
	e.POST("/sessions/:id/selection/commit", h.CommitSelection, asOperator)

	cartUC.EXPECT().CommitSelection(mock.Anything, testOperatorID, testSessionID, 12).
		Return(nil, domainerrors.NewInsufficientStockError(testItemID.String(), 12, 10)).Once()

	rec, env := serve(t, e, http.MethodPost, "/sessions/"+testSessionID.String()+"/selection/commit", `{"quantity":12}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INSUFFICIENT_STOCK", env.Error.Code)

	var details struct {
		ItemID    string `json:"item_id"`
		Requested int    `json:"requested"`
		Remaining int    `json:"remaining"`
	}
	require.NoError(t, json.Unmarshal(env.Error.Details, &details))
	assert.Equal(t, testItemID.String(), details.ItemID)
	assert.Equal(t, 12, details.Requested)
	assert.Equal(t, 10, details.Remaining)
}

func TestCartHandler_SetQuantity(t *testing.T) {
	cartUC := mockusecase.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: slog.Default()})
	e := newTestEcho()
	e.PUT("/sessions/:id/lines/:itemId", h.SetQuantity, asOperator)
	path := "/sessions/" + testSessionID.String() + "/lines/" + testItemID.String()

	rec, env := serve(t, e, http.MethodPut, path, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	cartUC.EXPECT().SetQuantity(mock.Anything, testOperatorID, testSessionID, testItemID, 0).Return(testView(), nil).Once()

	rec, _ = serve(t, e, http.MethodPut, path, `{"quantity":0}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerHandler_ResolveCustomer(t *testing.T) {
	customerUC := mockusecase.NewMockCustomerUsecase(t)
	h := NewCustomerHandler(CustomerHandlerParams{CustomerUC: customerUC, Logger: slog.Default()})
	e := newTestEcho()
	e.POST("/sessions/:id/customer/resolve", h.ResolveCustomer, asOperator)

	customerUC.EXPECT().ResolveCustomer(mock.Anything, testOperatorID, testSessionID, "12345678").
		Return(&checkout.ResolutionView{
			State:      checkout.ResolutionFoundNew,
			NationalID: "12345678",
			Match:      entity.PendingRegistration{NationalID: "12345678", Name: "Ana Quispe"},
		}, nil).Once()

	rec, env := serve(t, e, http.MethodPost, "/sessions/"+testSessionID.String()+"/customer/resolve", `{"national_id":"12345678"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resolution ResolutionResponse
	require.NoError(t, json.Unmarshal(env.Data, &resolution))
	assert.Equal(t, checkout.ResolutionFoundNew, resolution.State)
	assert.Equal(t, "Ana Quispe", resolution.Name)
	assert.False(t, resolution.Registered)
}

func TestCheckoutHandler_Submit(t *testing.T) {
	submittedAt := time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC)

	tests := []struct {
		name          string
		outcome       entity.SubmissionOutcome
		wantOutcome   string
		wantReference string
	}{
		{
			name:          "delivered",
			outcome:       entity.Delivered{ServerCode: "TX-0042", SubmittedAt: submittedAt},
			wantOutcome:   "delivered",
			wantReference: "TX-0042",
		},
		{
			name:          "queued locally",
			outcome:       entity.QueuedLocally{LocalID: 7, QueuedAt: submittedAt},
			wantOutcome:   "queued_locally",
			wantReference: "L7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submissionUC := mockusecase.NewMockSubmissionUsecase(t)
			h := NewCheckoutHandler(CheckoutHandlerParams{
				SubmissionUC: submissionUC,
				ReceiptUC:    mockusecase.NewMockReceiptUsecase(t),
				Logger:       slog.Default(),
			})
			e := newTestEcho()
			e.POST("/sessions/:id/checkout", h.Submit, asOperator)

			submissionUC.EXPECT().Submit(mock.Anything, testOperatorID, testSessionID, entity.PaymentMethodCard).
				Return(&entity.SubmissionResult{
					Transaction: entity.Transaction{OperatorID: testOperatorID, PaymentMethod: entity.PaymentMethodCard},
					Outcome:     tt.outcome,
				}, nil).Once()

			rec, env := serve(t, e, http.MethodPost, "/sessions/"+testSessionID.String()+"/checkout", `{"payment_method":"card"}`)

			require.Equal(t, http.StatusCreated, rec.Code)
			var result SubmissionResponse
			require.NoError(t, json.Unmarshal(env.Data, &result))
			assert.Equal(t, "completed", result.Status)
			assert.Equal(t, tt.wantOutcome, result.Outcome)
			assert.Equal(t, tt.wantReference, result.Reference)
		})
	}
}

func TestCheckoutHandler_SubmitRejectsPaymentMethod(t *testing.T) {
	h := NewCheckoutHandler(CheckoutHandlerParams{
		SubmissionUC: mockusecase.NewMockSubmissionUsecase(t),
		ReceiptUC:    mockusecase.NewMockReceiptUsecase(t),
		Logger:       slog.Default(),
	})
	e := newTestEcho()
	e.POST("/sessions/:id/checkout", h.Submit, asOperator)

	rec, env := serve(t, e, http.MethodPost, "/sessions/"+testSessionID.String()+"/checkout", `{"payment_method":"crypto"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestCheckoutHandler_FallbackPersistFailureHidesDetails(t *testing.T) {
	submissionUC := mockusecase.NewMockSubmissionUsecase(t)
	h := NewCheckoutHandler(CheckoutHandlerParams{
		SubmissionUC: submissionUC,
		ReceiptUC:    mockusecase.NewMockReceiptUsecase(t),
		Logger:       slog.Default(),
	})
	e := newTestEcho()
	e.POST("/sessions/:id/checkout", h.Submit, asOperator)

	submissionUC.EXPECT().Submit(mock.Anything, testOperatorID, testSessionID, entity.PaymentMethodCash).
		Return(nil, domainerrors.ErrFallbackPersistFailed.WithDetails("disk full")).Once()

	rec, env := serve(t, e, http.MethodPost, "/sessions/"+testSessionID.String()+"/checkout", `{"payment_method":"cash"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrFallbackPersistFailed.ErrorCode(), env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestFallbackHandler_ListTransactions(t *testing.T) {
	fallbackUC := mockusecase.NewMockFallbackUsecase(t)
	h := NewFallbackHandler(fallbackUC)
	e := newTestEcho()
	e.GET("/fallback/transactions", h.ListTransactions)

	fallbackUC.EXPECT().ListQueuedTransactions(mock.Anything).
		Return([]entity.Transaction{{LocalID: 1}, {LocalID: 2}}, nil).Once()

	rec, env := serve(t, e, http.MethodGet, "/fallback/transactions", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var txs []entity.Transaction
	require.NoError(t, json.Unmarshal(env.Data, &txs))
	assert.Len(t, txs, 2)
}
