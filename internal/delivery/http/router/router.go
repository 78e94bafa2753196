// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	ReviewHandler   *handler.ReviewHandler
	OrderHandler    *handler.OrderHandler
	MessageHandler  *handler.MessageHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	reviewHandler   *handler.ReviewHandler
	orderHandler    *handler.OrderHandler
	messageHandler  *handler.MessageHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		reviewHandler:   params.ReviewHandler,
		orderHandler:    params.OrderHandler,
		messageHandler:  params.MessageHandler,
		adminHandler:    params.AdminHandler,
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
		authGroup.POST("/verify-token", r.authHandler.VerifyToken)

		authed := authGroup.Group("")
		authed.Use(r.authMiddleware.Authenticate)
		{
			authed.POST("/refresh-token", r.authHandler.RefreshToken)
			authed.POST("/logout", r.authHandler.Logout)
			authed.GET("/profile", r.authHandler.GetProfile)
			authed.PUT("/profile", r.authHandler.UpdateProfile)
			authed.PUT("/change-password", r.authHandler.ChangePassword)
		}
	}

	// User routes
	userGroup := api.Group("/users")
	{
		// Public profile, enriched when the viewer is the owner or an admin.
		userGroup.GET("/:id", r.userHandler.GetUser, r.authMiddleware.OptionalAuthenticate)

		authed := userGroup.Group("")
		authed.Use(r.authMiddleware.Authenticate)
		{
			authed.GET("/me/stats", r.userHandler.GetStats)
		}

		admin := userGroup.Group("")
		admin.Use(r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
		{
			admin.GET("", r.userHandler.ListUsers)
			admin.PUT("/:id", r.userHandler.UpdateUser)
			admin.DELETE("/:id", r.userHandler.DeleteUser)
			admin.PUT("/:id/toggle-status", r.userHandler.ToggleUserStatus)
		}
	}

	// Category routes
	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.ListCategories)
		categoryGroup.GET("/:id", r.categoryHandler.GetCategory)
		categoryGroup.GET("/:id/products", r.productHandler.ListProductsByCategory)

		admin := categoryGroup.Group("")
		admin.Use(r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
		{
			admin.POST("", r.categoryHandler.CreateCategory)
			admin.PUT("/:id", r.categoryHandler.UpdateCategory)
			admin.DELETE("/:id", r.categoryHandler.DeleteCategory)
		}
	}

	// Product routes
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/search", r.productHandler.SearchProducts)
		productGroup.GET("/category/:id", r.productHandler.ListProductsByCategory)
		productGroup.GET("/:id", r.productHandler.GetProduct, r.authMiddleware.OptionalAuthenticate)

		seller := productGroup.Group("")
		seller.Use(r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleSeller, entity.RoleAdmin))
		{
			seller.GET("/user/me", r.productHandler.ListMyProducts)
			seller.POST("", r.productHandler.CreateProduct)
			seller.PUT("/:id", r.productHandler.UpdateProduct)
			seller.DELETE("/:id", r.productHandler.DeleteProduct)
		}
	}

	// Review routes
	reviewGroup := api.Group("/reviews")
	{
		reviewGroup.GET("/product/:productId", r.reviewHandler.ListProductReviews)

		authed := reviewGroup.Group("")
		authed.Use(r.authMiddleware.Authenticate)
		{
			authed.GET("/user/me", r.reviewHandler.ListMyReviews)
			authed.PUT("/:id", r.reviewHandler.UpdateReview)
			authed.DELETE("/:id", r.reviewHandler.DeleteReview)
		}

		buyer := reviewGroup.Group("")
		buyer.Use(r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleBuyer, entity.RoleAdmin))
		{
			buyer.POST("/product/:productId", r.reviewHandler.CreateReview)
		}
	}

	// Order routes
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListMyOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PUT("/:id/cancel", r.orderHandler.CancelOrder)

		buyer := orderGroup.Group("")
		buyer.Use(r.authMiddleware.RequireRole(entity.RoleBuyer, entity.RoleAdmin))
		{
			buyer.POST("", r.orderHandler.CreateOrder)
		}

		seller := orderGroup.Group("")
		seller.Use(r.authMiddleware.RequireRole(entity.RoleSeller, entity.RoleAdmin))
		{
			seller.PUT("/:id/status", r.orderHandler.UpdateOrderStatus)
		}

		admin := orderGroup.Group("")
		admin.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
		{
			admin.GET("/all", r.orderHandler.ListAllOrders)
		}
	}

	// Contact message routes
	messageGroup := api.Group("/messages")
	messageGroup.Use(r.authMiddleware.Authenticate)
	{
		messageGroup.POST("", r.messageHandler.SendMessage)
		messageGroup.GET("/inbox", r.messageHandler.ListInbox)
		messageGroup.GET("/sent", r.messageHandler.ListSent)
		messageGroup.GET("/:id", r.messageHandler.GetMessage)
		messageGroup.DELETE("/:id", r.messageHandler.DeleteMessage)
	}

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)
		adminGroup.GET("/products", r.adminHandler.ListAllProducts)
		adminGroup.PUT("/products/:id/moderate", r.adminHandler.ModerateProduct)
		adminGroup.GET("/categories", r.categoryHandler.ListCategoriesAdmin)
	}
}
