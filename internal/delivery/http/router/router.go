// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"boutique/internal/delivery/http/middleware"
	"boutique/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	CatalogueHandler *handler.CatalogueHandler
	CheckoutHandler  *handler.CheckoutHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	catalogueHandler *handler.CatalogueHandler
	checkoutHandler  *handler.CheckoutHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		catalogueHandler: params.CatalogueHandler,
		checkoutHandler:  params.CheckoutHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalogue routes
	e.GET("/catalogue", r.catalogueHandler.ListCatalogue)
	e.POST("/produit", r.catalogueHandler.CreateProduct)
	e.GET("/produit/:id", r.catalogueHandler.GetProduct)
	e.POST("/fixtures", r.catalogueHandler.LoadFixtures)

	// Account routes
	e.POST("/users/new", r.userHandler.Register)
	e.POST("/token", r.userHandler.Login)
	e.GET("/users", r.userHandler.ListUsers)
	e.GET("/users/:id", r.userHandler.GetUser)

	// Routes that require a valid bearer token
	e.GET("/users/me", r.userHandler.Me, r.authMiddleware.Authenticate)

	venteGroup := e.Group("/vente")
	venteGroup.Use(r.authMiddleware.Authenticate)
	{
		venteGroup.POST("", r.checkoutHandler.PlaceOrder)
		venteGroup.GET("/:id", r.checkoutHandler.GetOrder)
	}
}
