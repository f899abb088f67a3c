// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bloom/internal/delivery/http/middleware"
	"bloom/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	FlowerHandler       *handler.FlowerHandler
	CartHandler         *handler.CartHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	flowerHandler       *handler.FlowerHandler
	cartHandler         *handler.CartHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		flowerHandler:       params.FlowerHandler,
		cartHandler:         params.CartHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	e.POST("/signup", r.accountHandler.Signup)
	e.POST("/login", r.accountHandler.Login)

	// Everything below requires a valid session token
	authed := e.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/profile", r.accountHandler.Profile)

		authed.GET("/flowers", r.flowerHandler.List)
		authed.POST("/flowers", r.flowerHandler.Create)
		authed.PATCH("/flowers/:id", r.flowerHandler.Patch)
		authed.DELETE("/flowers/:id", r.flowerHandler.Delete)

		authed.POST("/cart/items", r.cartHandler.AddItem)
		authed.GET("/cart/items", r.cartHandler.GetItems)
	}
}
