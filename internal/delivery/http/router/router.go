// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	TaskHandler    *handler.TaskHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	taskHandler    *handler.TaskHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		taskHandler:    params.TaskHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public auth routes
	api.POST("/register", r.authHandler.Register)
	api.POST("/login", r.authHandler.Login)

	// Routes that require a valid bearer token
	authed := api.Group("", r.authMiddleware.Authenticate)
	{
		authed.POST("/logout", r.authHandler.Logout)
		authed.GET("/user", r.authHandler.Me)

		authed.GET("/tasks", r.taskHandler.List)
		authed.POST("/tasks", r.taskHandler.Create)
		authed.GET("/tasks/:id", r.taskHandler.Get)
		authed.PUT("/tasks/:id", r.taskHandler.Update)
		authed.PATCH("/tasks/:id", r.taskHandler.Update)
		authed.DELETE("/tasks/:id", r.taskHandler.Delete)
	}
}
