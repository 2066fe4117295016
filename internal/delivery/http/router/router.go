// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	productHandler  *handler.ProductHandler
	categoryHandler *handler.CategoryHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		productHandler:  params.ProductHandler,
		categoryHandler: params.CategoryHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Catalog routes: reads are anonymous, mutations require a bearer token.
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.GetByID)
		productGroup.POST("", r.productHandler.Create, r.authMiddleware.Authenticate)
		productGroup.PUT("/:id", r.productHandler.Update, r.authMiddleware.Authenticate)
		productGroup.DELETE("/:id", r.productHandler.Delete, r.authMiddleware.Authenticate)
	}

	// Category routes follow the same split as products.
	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.POST("", r.categoryHandler.Create, r.authMiddleware.Authenticate)
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete, r.authMiddleware.Authenticate)
	}

	// Order routes are fully private to the authenticated caller.
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Place)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.GetByID)
	}
}
