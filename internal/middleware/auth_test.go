package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightbnb/lightbnb/internal/config"
	"github.com/lightbnb/lightbnb/internal/errs"
	"github.com/lightbnb/lightbnb/internal/lib/token"
	"github.com/lightbnb/lightbnb/internal/server"
)

const testSecret = "test-secret"

func newAuthTestMiddleware() *AuthMiddleware {
	return NewAuthMiddleware(&server.Server{
		Config: &config.Config{
			Auth: config.AuthConfig{SecretKey: testSecret, TokenTTLHours: 1},
		},
	})
}

func runRequireAuth(t *testing.T, authorization string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	handler := newAuthTestMiddleware().RequireAuth(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	sessionToken, err := token.Generate(testSecret, 42, time.Hour)
	require.NoError(t, err)

	c, err := runRequireAuth(t, "Bearer "+sessionToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), GetAuthenticatedUserID(c))
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	_, err := runRequireAuth(t, "")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

func TestRequireAuthRejectsNonBearerScheme(t *testing.T) {
	_, err := runRequireAuth(t, "Basic dXNlcjpwYXNz")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

func TestRequireAuthRejectsTokenSignedWithWrongSecret(t *testing.T) {
	sessionToken, err := token.Generate("other-secret", 42, time.Hour)
	require.NoError(t, err)

	_, err = runRequireAuth(t, "Bearer "+sessionToken)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

func TestGetAuthenticatedUserIDWithoutAuth(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, int64(0), GetAuthenticatedUserID(c))
}
