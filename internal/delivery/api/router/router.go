// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"estatex/internal/delivery/api/middleware"
	"estatex/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	PropertyHandler     *handler.PropertyHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AdminHandler        *handler.AdminHandler
	LocationHandler     *handler.LocationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	propertyHandler     *handler.PropertyHandler
	subscriptionHandler *handler.SubscriptionHandler
	adminHandler        *handler.AdminHandler
	locationHandler     *handler.LocationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		propertyHandler:     params.PropertyHandler,
		subscriptionHandler: params.SubscriptionHandler,
		adminHandler:        params.AdminHandler,
		locationHandler:     params.LocationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	auth := r.authMiddleware.Authenticate
	admin := r.authMiddleware.RequireAdmin
	subscribed := r.authMiddleware.RequireActiveSubscription
	located := r.authMiddleware.RequireLocationAccess

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/profile", r.authHandler.Profile, auth)
		authGroup.PUT("/profile", r.authHandler.UpdateProfile, auth)
		// Region lookups used by the signup form
		authGroup.GET("/states", r.locationHandler.States)
		authGroup.GET("/cities/:stateCode", r.locationHandler.Cities)
	}

	propertiesGroup := api.Group("/properties")
	propertiesGroup.Use(auth)
	{
		propertiesGroup.GET("", r.propertyHandler.List, subscribed)
		propertiesGroup.POST("", r.propertyHandler.Create)
		propertiesGroup.GET("/my-inventory", r.propertyHandler.ListMine)
		propertiesGroup.GET("/pending", r.propertyHandler.ListPending, admin)
		propertiesGroup.GET("/:id", r.propertyHandler.Get)
		propertiesGroup.PUT("/:id", r.propertyHandler.Update)
		propertiesGroup.DELETE("/:id", r.propertyHandler.Delete)
		propertiesGroup.PATCH("/:id/status", r.propertyHandler.Review, admin)
	}

	locationGroup := api.Group("/location")
	{
		locationGroup.GET("/states", r.locationHandler.States)
		locationGroup.GET("/cities/:stateCode", r.locationHandler.Cities)
		locationGroup.GET("/stations", r.locationHandler.Stations, auth)
		locationGroup.GET("/sub-locations/:station", r.locationHandler.SubLocations, auth)
		locationGroup.GET("/search", r.locationHandler.Search, auth)
		locationGroup.GET("/banners", r.locationHandler.Banners)
		// Route middleware runs left to right
		locationGroup.GET("/nearby", r.propertyHandler.Nearby, auth, subscribed, located)
	}

	subscriptionsGroup := api.Group("/subscriptions")
	{
		subscriptionsGroup.GET("/pricing", r.subscriptionHandler.Pricing)
		subscriptionsGroup.GET("/my-subscription", r.subscriptionHandler.Mine, auth)
		subscriptionsGroup.POST("", r.subscriptionHandler.Upsert, auth)
		subscriptionsGroup.POST("/complete-payment", r.subscriptionHandler.CompletePayment, auth)
		subscriptionsGroup.GET("", r.subscriptionHandler.List, auth, admin)
		subscriptionsGroup.PATCH("/:id/status", r.subscriptionHandler.SetStatus, auth, admin)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(auth, admin)
	{
		adminGroup.GET("/stats", r.adminHandler.Stats)
		adminGroup.GET("/brokers", r.adminHandler.ListBrokers)
		adminGroup.GET("/brokers/:id", r.adminHandler.GetBroker)
		adminGroup.PATCH("/brokers/:id/status", r.adminHandler.SetBrokerStatus)
		adminGroup.GET("/pending-properties", r.propertyHandler.ListPending)
		adminGroup.PATCH("/properties/:id/review", r.propertyHandler.Review)
		adminGroup.GET("/subscription-analytics", r.adminHandler.SubscriptionAnalytics)
		adminGroup.GET("/property-analytics", r.adminHandler.PropertyAnalytics)
	}
}
