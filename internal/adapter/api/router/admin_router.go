package router

import (
	"github.com/labstack/echo/v4"

	"smartethnic/internal/adapter/api/handler"
	"smartethnic/internal/adapter/api/middleware"
)

// SetupAdminRouter sets up order management routes guarded by the API key
func SetupAdminRouter(e *echo.Echo, adminHandler *handler.AdminHandler, adminMiddleware *middleware.AdminMiddleware) {
	adminGroup := e.Group("/v1/admin")
	adminGroup.Use(adminMiddleware.RequireAPIKey)

	adminGroup.GET("/orders/:id", adminHandler.GetOrder)                 // GET /v1/admin/orders/:id
	adminGroup.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus) // PUT /v1/admin/orders/:id/status
}
