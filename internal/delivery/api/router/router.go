// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"checkout/config"
	"checkout/internal/delivery/api/middleware"
	"checkout/internal/delivery/api/router/handler"
	"checkout/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	CartHandler     *handler.CartHandler
	CustomerHandler *handler.CustomerHandler
	CheckoutHandler *handler.CheckoutHandler
	FallbackHandler *handler.FallbackHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Registry
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler  *handler.SessionHandler
	cartHandler     *handler.CartHandler
	customerHandler *handler.CustomerHandler
	checkoutHandler *handler.CheckoutHandler
	fallbackHandler *handler.FallbackHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Registry
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:  params.SessionHandler,
		cartHandler:     params.CartHandler,
		customerHandler: params.CustomerHandler,
		checkoutHandler: params.CheckoutHandler,
		fallbackHandler: params.FallbackHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require an operator token

	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.POST("", r.sessionHandler.OpenSession)
		sessionsGroup.GET("", r.sessionHandler.ListSessions)
		sessionsGroup.GET("/:id", r.sessionHandler.GetSession)
		sessionsGroup.DELETE("/:id", r.sessionHandler.CloseSession)

		// Cart
		sessionsGroup.POST("/:id/selection", r.cartHandler.SelectItem)
		sessionsGroup.POST("/:id/selection/commit", r.cartHandler.CommitSelection)
		sessionsGroup.PUT("/:id/lines/:itemId", r.cartHandler.SetQuantity)
		sessionsGroup.DELETE("/:id/lines/:itemId", r.cartHandler.RemoveLine)
		sessionsGroup.DELETE("/:id/lines", r.cartHandler.ClearCart)

		// Customer
		sessionsGroup.POST("/:id/customer/resolve", r.customerHandler.ResolveCustomer)
		sessionsGroup.POST("/:id/customer/confirm", r.customerHandler.ConfirmCustomer)
		sessionsGroup.DELETE("/:id/customer", r.customerHandler.CancelCustomer)

		// Submission
		sessionsGroup.POST("/:id/checkout", r.checkoutHandler.Submit)
		sessionsGroup.POST("/:id/dismiss", r.checkoutHandler.Dismiss)
		sessionsGroup.GET("/:id/receipt", r.checkoutHandler.GetReceipt)
	}

	// Local fallback queue diagnostics
	fallbackGroup := apiV1.Group("/fallback")
	{
		fallbackGroup.GET("/transactions", r.fallbackHandler.ListTransactions)
		fallbackGroup.GET("/stock", r.fallbackHandler.GetStockSnapshot)
	}
}
