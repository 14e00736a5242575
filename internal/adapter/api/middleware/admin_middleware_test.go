package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callAdmin(t *testing.T, m *AdminMiddleware, key string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/orders/X", nil)
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.RequireAPIKey(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireAPIKey(t *testing.T) {
	m := NewAdminMiddleware("secret-key")

	rec := callAdmin(t, m, "secret-key")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = callAdmin(t, m, "wrong-key")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = callAdmin(t, m, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAPIKeyDisabledWithoutKey(t *testing.T) {
	m := NewAdminMiddleware("")

	rec := callAdmin(t, m, "anything")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
