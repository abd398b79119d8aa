// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"weighter/internal/delivery/http/middleware"
	"weighter/internal/delivery/http/router/handler"
	"weighter/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	WeightHandler  *handler.WeightHandler
	ReportHandler  *handler.ReportHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	weightHandler  *handler.WeightHandler
	reportHandler  *handler.ReportHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		weightHandler:  params.WeightHandler,
		reportHandler:  params.ReportHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Weight record routes, all scoped to the authenticated user
	weightGroup := e.Group("/weights")
	weightGroup.Use(r.authMiddleware.Authenticate)
	{
		weightGroup.GET("", r.weightHandler.List)
		weightGroup.POST("", r.weightHandler.Create)
		weightGroup.GET("/statistics", r.weightHandler.Statistics)
		weightGroup.GET("/:id", r.weightHandler.Get)
		weightGroup.PUT("/:id", r.weightHandler.Update)
		weightGroup.DELETE("/:id", r.weightHandler.Delete)
	}

	// Admin view over every user's records
	weightAdminGroup := e.Group("/weights/admin")
	weightAdminGroup.Use(r.authMiddleware.Authenticate)
	weightAdminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		weightAdminGroup.GET("/all", r.weightHandler.ListAll)
	}

	// Report routes
	reportGroup := e.Group("/reports")
	reportGroup.Use(r.authMiddleware.Authenticate)
	{
		reportGroup.GET("", r.reportHandler.List)
		reportGroup.POST("", r.reportHandler.Create)
		reportGroup.GET("/:id", r.reportHandler.Get)
		reportGroup.PUT("/:id", r.reportHandler.Update)
		reportGroup.DELETE("/:id", r.reportHandler.Delete)
	}

	// Administrative user management
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	userGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		userGroup.GET("", r.userHandler.List)
		userGroup.GET("/:id", r.userHandler.Get)
		userGroup.PUT("/:id", r.userHandler.Update)
		userGroup.DELETE("/:id", r.userHandler.Delete)
	}
}
