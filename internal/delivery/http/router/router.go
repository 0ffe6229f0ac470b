// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"capsule/config"
	"capsule/internal/delivery/http/middleware"
	"capsule/internal/delivery/http/router/handler"
	"capsule/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	UserHandler     *handler.UserHandler
	ProductHandler  *handler.ProductHandler
	DropHandler     *handler.DropHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	WishlistHandler *handler.WishlistHandler
	AddressHandler  *handler.AddressHandler
	BannerHandler   *handler.BannerHandler
	UploadHandler   *handler.UploadHandler
	SeedHandler     *handler.SeedHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware
	requireAdmin := auth.RequireRole(entity.RoleAdmin)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Account routes
	userGroup := api.Group("/user")
	{
		userGroup.POST("/register", r.params.UserHandler.Register)
		userGroup.POST("/login", r.params.UserHandler.Login)
		userGroup.POST("/refresh", r.params.UserHandler.RefreshToken)
		userGroup.GET("/profile", r.params.UserHandler.GetProfile, auth.Authenticate)
	}

	// Catalog routes; browsing is public, management is admin-only
	productGroup := api.Group("/product")
	{
		productGroup.GET("", r.params.ProductHandler.List)
		productGroup.GET("/:slug", r.params.ProductHandler.GetBySlug)
		productGroup.POST("", r.params.ProductHandler.Create, auth.Authenticate, requireAdmin)
		productGroup.PUT("/:id", r.params.ProductHandler.Update, auth.Authenticate, requireAdmin)
		productGroup.DELETE("/:id", r.params.ProductHandler.Delete, auth.Authenticate, requireAdmin)
	}

	// Drop routes
	dropGroup := api.Group("/drop")
	{
		dropGroup.GET("", r.params.DropHandler.List)
		dropGroup.GET("/current", r.params.DropHandler.GetCurrent)
		dropGroup.POST("", r.params.DropHandler.Create, auth.Authenticate, requireAdmin)
		dropGroup.PUT("/:id", r.params.DropHandler.Update, auth.Authenticate, requireAdmin)
		dropGroup.PUT("/:id/current", r.params.DropHandler.SetCurrent, auth.Authenticate, requireAdmin)
	}

	// Cart routes require authentication
	cartGroup := api.Group("/cart")
	cartGroup.Use(auth.Authenticate)
	{
		cartGroup.GET("", r.params.CartHandler.Get)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.PUT("/items/:itemId", r.params.CartHandler.UpdateItem)
		cartGroup.DELETE("/items/:itemId", r.params.CartHandler.RemoveItem)
		cartGroup.DELETE("", r.params.CartHandler.Clear)
	}

	// Order routes require authentication; listing every order and status
	// transitions are admin-only
	orderGroup := api.Group("/order")
	orderGroup.Use(auth.Authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.Place)
		orderGroup.POST("/verify/stripe", r.params.OrderHandler.VerifyStripe)
		orderGroup.POST("/verify/razorpay", r.params.OrderHandler.VerifyRazorpay)
		orderGroup.GET("/mine", r.params.OrderHandler.ListMine)
		orderGroup.GET("/:id", r.params.OrderHandler.Get)
		orderGroup.GET("", r.params.OrderHandler.ListAll, requireAdmin)
		orderGroup.PUT("/:id/status", r.params.OrderHandler.UpdateStatus, requireAdmin)
	}

	// Wishlist routes require authentication
	wishlistGroup := api.Group("/wishlist")
	wishlistGroup.Use(auth.Authenticate)
	{
		wishlistGroup.GET("", r.params.WishlistHandler.List)
		wishlistGroup.POST("/:productId", r.params.WishlistHandler.Add)
		wishlistGroup.DELETE("/:productId", r.params.WishlistHandler.Remove)
	}

	// Address book routes require authentication
	addressGroup := api.Group("/address")
	addressGroup.Use(auth.Authenticate)
	{
		addressGroup.GET("", r.params.AddressHandler.List)
		addressGroup.POST("", r.params.AddressHandler.Create)
		addressGroup.PUT("/:id", r.params.AddressHandler.Update)
		addressGroup.DELETE("/:id", r.params.AddressHandler.Delete)
		addressGroup.PUT("/:id/default", r.params.AddressHandler.SetDefault)
	}

	// Banner routes; active banners are public, management is admin-only
	bannerGroup := api.Group("/banner")
	{
		bannerGroup.GET("", r.params.BannerHandler.ListActive)
		bannerGroup.GET("/all", r.params.BannerHandler.ListAll, auth.Authenticate, requireAdmin)
		bannerGroup.POST("", r.params.BannerHandler.Create, auth.Authenticate, requireAdmin)
		bannerGroup.PUT("/:id", r.params.BannerHandler.Update, auth.Authenticate, requireAdmin)
		bannerGroup.DELETE("/:id", r.params.BannerHandler.Delete, auth.Authenticate, requireAdmin)
	}

	// Media uploads are admin-only
	api.POST("/upload", r.params.UploadHandler.Upload, auth.Authenticate, requireAdmin)

	// Dev-only seed endpoint, registered only when explicitly enabled
	if r.params.Config.SeedRoutes != nil && r.params.Config.SeedRoutes.Enabled {
		api.POST("/seed", r.params.SeedHandler.Seed)
	}
}
