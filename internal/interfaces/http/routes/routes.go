// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/invoice"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"github.com/your-org/storefront-backend/internal/infrastructure/database/redis"
	"github.com/your-org/storefront-backend/internal/infrastructure/store"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// SetupRoutes wires every endpoint group onto the router
func SetupRoutes(rg *gin.RouterGroup, st store.Store, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	userService := user.NewService(st, cfg, redisClient)
	productService := product.NewService(st, cfg)
	cartService := cart.NewService(st, cfg)
	checkoutService := checkout.NewService(st, cfg, logger)
	orderService := order.NewService(st, cfg)
	invoiceService := invoice.NewService(st, cfg)

	authHandler := handlers.NewAuthHandler(userService, cfg)
	productHandler := handlers.NewProductHandler(productService, cfg)
	cartHandler := handlers.NewCartHandler(cartService, cfg)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cartService, cfg)
	orderHandler := handlers.NewOrderHandler(orderService, cfg)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, cfg)

	requireAuth := middleware.AuthMiddleware(cfg, userService)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		protected := auth.Group("")
		protected.Use(requireAuth)
		{
			protected.POST("/logout", authHandler.Logout)
		}
	}

	// Catalog browsing is public
	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	cartGroup := rg.Group("/cart")
	cartGroup.Use(requireAuth)
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
	}

	checkoutGroup := rg.Group("/checkout")
	checkoutGroup.Use(requireAuth)
	{
		checkoutGroup.POST("", checkoutHandler.PlaceOrder)
	}

	orders := rg.Group("/orders")
	orders.Use(requireAuth)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
	}

	invoices := rg.Group("/invoices")
	invoices.Use(requireAuth)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:number", invoiceHandler.GetInvoice)
		invoices.GET("/:number/pdf", invoiceHandler.DownloadInvoice)
	}
}
