package router

import (
	"github.com/labstack/echo/v4"

	"smartethnic/internal/adapter/api/handler"
	"smartethnic/internal/adapter/api/middleware"
)

// SetupCartRouter sets up cart routes; every endpoint requires a session
func SetupCartRouter(e *echo.Echo, cartHandler *handler.CartHandler, sessionMiddleware *middleware.SessionMiddleware) {
	cartGroup := e.Group("/v1/cart")
	cartGroup.Use(sessionMiddleware.Authenticate)

	cartGroup.GET("", cartHandler.GetCart)             // GET /v1/cart - Current cart contents
	cartGroup.POST("/items", cartHandler.AddItem)      // POST /v1/cart/items - Add one unit of a product
	cartGroup.PUT("/items", cartHandler.SetQuantity)   // PUT /v1/cart/items - Set line quantity
	cartGroup.DELETE("/items", cartHandler.RemoveItem) // DELETE /v1/cart/items - Remove a line
	cartGroup.DELETE("", cartHandler.ClearCart)        // DELETE /v1/cart - Empty the cart
}
