// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mealkit/internal/delivery/http/middleware"
	"mealkit/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	PackageHandler      *handler.PackageHandler
	OrderHandler        *handler.OrderHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AddressHandler      *handler.AddressHandler
	DietProfileHandler  *handler.DietProfileHandler
	UploadHandler       *handler.UploadHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	packageHandler      *handler.PackageHandler
	orderHandler        *handler.OrderHandler
	subscriptionHandler *handler.SubscriptionHandler
	addressHandler      *handler.AddressHandler
	dietProfileHandler  *handler.DietProfileHandler
	uploadHandler       *handler.UploadHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		packageHandler:      params.PackageHandler,
		orderHandler:        params.OrderHandler,
		subscriptionHandler: params.SubscriptionHandler,
		addressHandler:      params.AddressHandler,
		dietProfileHandler:  params.DietProfileHandler,
		uploadHandler:       params.UploadHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.requestIDMiddleware.Process)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.GET("/profile", r.userHandler.GetProfile, r.authMiddleware.Authenticate)
		authGroup.PUT("/profile", r.userHandler.UpdateProfile, r.authMiddleware.Authenticate)
	}

	// Catalog routes; reads are public, writes need a merchant or admin
	packageGroup := api.Group("/food-packages")
	{
		packageGroup.GET("", r.packageHandler.List)
		packageGroup.GET("/:id", r.packageHandler.Get)

		manage := packageGroup.Group("")
		manage.Use(r.authMiddleware.Authenticate)
		manage.Use(r.authMiddleware.RequireAnyRole("merchant", "admin"))
		{
			manage.POST("", r.packageHandler.Create)
			manage.PUT("/:id", r.packageHandler.Update)
			manage.DELETE("/:id", r.packageHandler.Delete)
			manage.POST("/:id/inventory", r.packageHandler.AdjustInventory)
			manage.GET("/:id/inventory-logs", r.packageHandler.ListInventoryLogs)
			manage.GET("/merchant/orders", r.packageHandler.ListMerchantOrders)
		}
	}

	// Order routes that require authentication
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.POST("/:id/pay", r.orderHandler.Pay)
		orderGroup.POST("/:id/cancel", r.orderHandler.Cancel)
		orderGroup.GET("/:id/qrcode", r.orderHandler.PaymentQR)
	}

	// Subscription routes that require authentication
	subscriptionGroup := api.Group("/subscriptions")
	subscriptionGroup.Use(r.authMiddleware.Authenticate)
	{
		subscriptionGroup.POST("", r.subscriptionHandler.Create)
		subscriptionGroup.GET("", r.subscriptionHandler.List)
		subscriptionGroup.GET("/:id", r.subscriptionHandler.Get)
		subscriptionGroup.POST("/:id/pause", r.subscriptionHandler.Pause)
		subscriptionGroup.POST("/:id/resume", r.subscriptionHandler.Resume)
		subscriptionGroup.POST("/:id/cancel", r.subscriptionHandler.Cancel)
	}

	// Address book routes that require authentication
	addressGroup := api.Group("/addresses")
	addressGroup.Use(r.authMiddleware.Authenticate)
	{
		addressGroup.GET("", r.addressHandler.List)
		addressGroup.GET("/:id", r.addressHandler.Get)
		addressGroup.POST("", r.addressHandler.Create)
		addressGroup.PUT("/:id", r.addressHandler.Update)
		addressGroup.DELETE("/:id", r.addressHandler.Delete)
		addressGroup.POST("/:id/set-default", r.addressHandler.SetDefault)
	}

	// Diet profile routes that require authentication
	dietGroup := api.Group("/diet-profile")
	dietGroup.Use(r.authMiddleware.Authenticate)
	{
		dietGroup.GET("", r.dietProfileHandler.Get)
		dietGroup.POST("", r.dietProfileHandler.Save)
		dietGroup.DELETE("", r.dietProfileHandler.Delete)
	}

	// Upload routes that require authentication
	uploadGroup := api.Group("/upload")
	uploadGroup.Use(r.authMiddleware.Authenticate)
	{
		uploadGroup.POST("/image", r.uploadHandler.UploadImage)
		uploadGroup.GET("/list", r.uploadHandler.List)
		uploadGroup.DELETE("/:id", r.uploadHandler.Delete)
	}

	// Admin routes that require authentication and "admin" role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.PUT("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
		adminGroup.GET("/subscriptions", r.adminHandler.ListSubscriptions)
		adminGroup.GET("/statistics", r.adminHandler.Statistics)
	}
}
