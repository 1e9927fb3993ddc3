package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"checkout/config"
	apimiddleware "checkout/internal/delivery/api/middleware"
	"checkout/internal/delivery/api/router"
	"checkout/internal/delivery/api/router/handler"
	"checkout/internal/domain/checkout"
	"checkout/internal/domain/service"
	"checkout/internal/infra/metrics"
	mockservice "checkout/internal/mocks/service"
	mockusecase "checkout/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e         *echo.Echo
	tokens    *mockservice.MockTokenService
	sessionUC *mockusecase.MockSessionUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens := mockservice.NewMockTokenService(t)
	sessionUC := mockusecase.NewMockSessionUsecase(t)

	params := router.RouterParams{
		SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: sessionUC, Logger: logger}),
		CartHandler:    handler.NewCartHandler(handler.CartHandlerParams{CartUC: mockusecase.NewMockCartUsecase(t), Logger: logger}),
		CustomerHandler: handler.NewCustomerHandler(handler.CustomerHandlerParams{
			CustomerUC: mockusecase.NewMockCustomerUsecase(t),
			Logger:     logger,
		}),
		CheckoutHandler: handler.NewCheckoutHandler(handler.CheckoutHandlerParams{
			SubmissionUC: mockusecase.NewMockSubmissionUsecase(t),
			ReceiptUC:    mockusecase.NewMockReceiptUsecase(t),
			Logger:       logger,
		}),
		FallbackHandler: handler.NewFallbackHandler(mockusecase.NewMockFallbackUsecase(t)),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(tokens, logger),
		Metrics:         metrics.NewRegistry(),
		Config:          cfg,
	}

	return &testServer{
		e:         newEcho(cfg, logger, params),
		tokens:    tokens,
		sessionUC: sessionUC,
	}
}

func (s *testServer) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthIsPublic(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_APIRequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/sessions", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")

	s.tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()

	rec = s.do(http.MethodGet, "/api/v1/sessions", "expired")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestServer_OperatorFromToken(t *testing.T) {
	s := newTestServer(t)
	operatorID := uuid.New()

	s.tokens.EXPECT().ValidateToken("good").Return(&service.Claims{OperatorID: operatorID}, nil).Once()
	s.sessionUC.EXPECT().ListSessions(mock.Anything, operatorID).Return([]checkout.View{}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/sessions", "good")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	s.do(http.MethodGet, "/health", "")
	rec := s.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `checkout_http_requests_total{method="GET",route="/health",status="200"} 1`))
}
