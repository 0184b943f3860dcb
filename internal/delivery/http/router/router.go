// Package router contains routing setup for the HTTP delivery.
package router

import (
	"stylus/internal/delivery/http/middleware"
	"stylus/internal/delivery/http/router/handler"
	"stylus/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all the handlers that need to be registered.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	ShellHandler   *handler.ShellHandler
	StylusHandler  *handler.StylusHandler
	AuthMiddleware *middleware.AuthMiddleware
}

type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	shellHandler   *handler.ShellHandler
	stylusHandler  *handler.StylusHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		shellHandler:   params.ShellHandler,
		stylusHandler:  params.StylusHandler,
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
		authGroup.POST("/login/google", r.authHandler.GoogleSignIn)
		authGroup.POST("/login/remembered", r.authHandler.RememberedLogin)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Profile routes require a valid login
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.profileHandler.GetProfile)
		userGroup.PUT("/profile/dark-mode", r.profileHandler.SetDarkMode)
	}

	// Application shell navigation
	appGroup := e.Group("/app")
	appGroup.Use(r.authMiddleware.Authenticate)
	{
		appGroup.GET("/shell", r.shellHandler.GetState)
		appGroup.POST("/shell/navigate", r.shellHandler.Navigate)
	}

	// The stylus feature area needs the baseline permission on top of a login
	stylusGroup := e.Group("/stylus")
	stylusGroup.Use(r.authMiddleware.Authenticate)
	stylusGroup.Use(r.authMiddleware.RequirePermission(entity.PermissionStylus))
	{
		stylusGroup.GET("", r.stylusHandler.GetWorkspace)
	}
}
