// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"addressbook/internal/delivery/http/middleware"
	"addressbook/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ContactHandler *handler.ContactHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	contactHandler *handler.ContactHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		contactHandler: params.ContactHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// Address-book routes. These are intentionally open: any caller may read
	// and write entries. A valid bearer token, when present, only stamps the
	// caller as owner of entries it creates.
	bookGroup := e.Group("/api/addressbook")
	bookGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		bookGroup.GET("", r.contactHandler.GetAll)
		bookGroup.GET("/:id", r.contactHandler.GetByID)
		bookGroup.POST("", r.contactHandler.Add)
		bookGroup.PUT("/:id", r.contactHandler.Update)
		bookGroup.DELETE("/:id", r.contactHandler.Delete)
	}
}
