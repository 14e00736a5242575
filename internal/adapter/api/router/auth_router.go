package router

import (
	"github.com/labstack/echo/v4"

	"smartethnic/internal/adapter/api/handler"
	"smartethnic/internal/adapter/api/middleware"
)

// SetupAuthRouter sets up OTP login, signup and session routes
func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler, sessionMiddleware *middleware.SessionMiddleware) {
	authGroup := e.Group("/v1/auth")

	authGroup.POST("/otp/send", authHandler.SendOTP)     // POST /v1/auth/otp/send - Request a login code
	authGroup.POST("/otp/verify", authHandler.VerifyOTP) // POST /v1/auth/otp/verify - Exchange code for a session
	authGroup.POST("/signup", authHandler.Signup)        // POST /v1/auth/signup - Complete profile for new accounts

	protected := authGroup.Group("")
	protected.Use(sessionMiddleware.Authenticate)

	protected.GET("/me", authHandler.Me)          // GET /v1/auth/me - Current session user
	protected.POST("/logout", authHandler.Logout) // POST /v1/auth/logout - Drop the session
}
