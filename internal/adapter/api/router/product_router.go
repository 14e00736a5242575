package router

import (
	"github.com/labstack/echo/v4"

	"smartethnic/internal/adapter/api/handler"
)

// SetupProductRouter sets up the public catalog routes
func SetupProductRouter(e *echo.Echo, productHandler *handler.ProductHandler) {
	e.GET("/v1/collections", productHandler.ListCollections)           // GET /v1/collections
	e.GET("/v1/collections/:id/products", productHandler.ListProducts) // GET /v1/collections/:id/products
	e.GET("/v1/products/featured", productHandler.FeaturedProducts)    // GET /v1/products/featured
	e.GET("/v1/products/:id", productHandler.GetProduct)               // GET /v1/products/:id
}
