package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"smartethnic/pkg/errors"
	"smartethnic/pkg/response"
)

type AdminMiddleware struct {
	apiKey string
}

func NewAdminMiddleware(apiKey string) *AdminMiddleware {
	return &AdminMiddleware{
		apiKey: apiKey,
	}
}

// RequireAPIKey guards the admin surface with a shared X-API-Key header.
func (m *AdminMiddleware) RequireAPIKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.apiKey == "" {
			return response.Error(c, errors.Forbidden("Admin API is disabled", nil))
		}

		key := c.Request().Header.Get("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
			return response.Error(c, errors.Unauthorized("Invalid or missing API key", nil))
		}
		return next(c)
	}
}
