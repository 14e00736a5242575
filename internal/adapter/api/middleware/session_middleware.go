package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"smartethnic/internal/domain/entity"
	"smartethnic/internal/usecase"
	"smartethnic/pkg/errors"
	"smartethnic/pkg/response"
)

const sessionContextKey = "session"

type SessionMiddleware struct {
	auth *usecase.AuthUseCase
}

func NewSessionMiddleware(auth *usecase.AuthUseCase) *SessionMiddleware {
	return &SessionMiddleware{
		auth: auth,
	}
}

// Authenticate resolves the bearer token into the stored identity snapshot
// and attaches it to the request context.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header required", nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		sess, err := m.auth.Current(c.Request().Context(), parts[1])
		if err != nil {
			return response.Error(c, err)
		}

		c.Set(sessionContextKey, sess)
		return next(c)
	}
}

// SessionFromContext returns the session attached by Authenticate, or nil.
func SessionFromContext(c echo.Context) *entity.Session {
	sess, _ := c.Get(sessionContextKey).(*entity.Session)
	return sess
}
