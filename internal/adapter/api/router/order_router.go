package router

import (
	"github.com/labstack/echo/v4"

	"smartethnic/internal/adapter/api/handler"
	"smartethnic/internal/adapter/api/middleware"
)

// SetupOrderRouter sets up checkout and order history routes
func SetupOrderRouter(e *echo.Echo, orderHandler *handler.OrderHandler, sessionMiddleware *middleware.SessionMiddleware) {
	orderGroup := e.Group("/v1/orders")
	orderGroup.Use(sessionMiddleware.Authenticate)

	orderGroup.POST("", orderHandler.PlaceOrder)  // POST /v1/orders - Place order from current cart
	orderGroup.GET("", orderHandler.ListOrders)   // GET /v1/orders - Order history, newest first
	orderGroup.GET("/:id", orderHandler.GetOrder) // GET /v1/orders/:id - Single order
}
