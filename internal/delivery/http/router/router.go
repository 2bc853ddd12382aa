// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gamevault/internal/delivery/http/middleware"
	"gamevault/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	GameHandler         *handler.GameHandler
	LibraryHandler      *handler.LibraryHandler
	GameConfigHandler   *handler.GameConfigHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	gameHandler         *handler.GameHandler
	libraryHandler      *handler.LibraryHandler
	gameConfigHandler   *handler.GameConfigHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		gameHandler:         params.GameHandler,
		libraryHandler:      params.LibraryHandler,
		gameConfigHandler:   params.GameConfigHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog
	e.GET("/games", r.gameHandler.List)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	// Per-user resources require authentication; the target user in the
	// path is resolved against the caller inside the use cases.
	usersGroup := e.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	{
		usersGroup.GET("/:id/games", r.libraryHandler.List)
		usersGroup.POST("/:id/games", r.libraryHandler.Add)
		usersGroup.DELETE("/:id/games/:gameId", r.libraryHandler.Remove)

		usersGroup.GET("/:id/configs", r.gameConfigHandler.List)
		usersGroup.GET("/:id/configs/:gameId", r.gameConfigHandler.Get)
		usersGroup.PUT("/:id/configs/:gameId", r.gameConfigHandler.Save)
		usersGroup.DELETE("/:id/configs/:gameId", r.gameConfigHandler.Remove)

		// Admin-only user management.
		usersGroup.PATCH("/:id/role", r.authMiddleware.RequireAdmin(r.userHandler.ChangeRole))
		usersGroup.DELETE("/:id", r.authMiddleware.RequireAdmin(r.userHandler.Delete))
	}
}
