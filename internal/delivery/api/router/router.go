// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"devicequote/internal/delivery/api/middleware"
	"devicequote/internal/delivery/api/router/handler"
	"devicequote/internal/domain/constants"
	"devicequote/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	QuoteHandler     *handler.QuoteHandler
	ValuationHandler *handler.ValuationHandler
	RecoveryHandler  *handler.RecoveryHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	quoteHandler     *handler.QuoteHandler
	valuationHandler *handler.ValuationHandler
	recoveryHandler  *handler.RecoveryHandler
	adminHandler     *handler.AdminHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          *metrics.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		quoteHandler:     params.QuoteHandler,
		valuationHandler: params.ValuationHandler,
		recoveryHandler:  params.RecoveryHandler,
		adminHandler:     params.AdminHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Public quote API
	apiV1 := e.Group("/api/v1")
	{
		apiV1.POST("/quotes", r.quoteHandler.ResolveQuote)
		apiV1.GET("/devices/:id/quote", r.quoteHandler.GetDeviceQuote)
		apiV1.POST("/valuations", r.valuationHandler.Value)
	}

	recoveryGroup := apiV1.Group("/recovery")
	{
		recoveryGroup.POST("", r.recoveryHandler.SaveSession)
		recoveryGroup.GET("/:token", r.recoveryHandler.LoadSession)
		recoveryGroup.GET("/:token/resume", r.recoveryHandler.ResumeSession)
		recoveryGroup.GET("/:token/qr", r.recoveryHandler.ResumeQR)
	}

	// Pricing admin routes require a token with the pricing-admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RolePricingAdmin))
	{
		adminGroup.PUT("/prices", r.adminHandler.UpdatePrice)
		adminGroup.POST("/feeds", r.adminHandler.GenerateFeed)
	}
}
