// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/Vets4Warriors/backend/internal/delivery/http/middleware"
	"github.com/Vets4Warriors/backend/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler     *handler.LocationHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler     *handler.LocationHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:     params.LocationHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Location catalog routes
	locationGroup := e.Group("/locations")
	{
		locationGroup.GET("", r.locationHandler.List)
		locationGroup.POST("", r.locationHandler.Create)
		locationGroup.GET("/:id", r.locationHandler.Get)
		locationGroup.PUT("/:id", r.locationHandler.Update)
		locationGroup.DELETE("/:id", r.locationHandler.Delete)
		locationGroup.POST("/rate/:id", r.locationHandler.Rate)
	}
}
