package router

import (
	"github.com/labstack/echo/v4"

	"smartethnic/internal/adapter/api/handler"
	"smartethnic/internal/adapter/api/middleware"
)

// SetupUserRouter sets up profile routes
func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler, sessionMiddleware *middleware.SessionMiddleware) {
	userGroup := e.Group("/v1/users")
	userGroup.Use(sessionMiddleware.Authenticate)

	userGroup.PUT("/me", userHandler.UpdateProfile) // PUT /v1/users/me - Update profile fields
}
