package middleware

import (
	"strconv"
	"strings"

	"github.com/lightbnb/lightbnb/internal/errs"
	"github.com/lightbnb/lightbnb/internal/lib/token"
	"github.com/lightbnb/lightbnb/internal/server"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware enforces session-token authentication on protected routes.
type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// RequireAuth validates the Authorization bearer token and stores the
// authenticated user id in the echo context under UserIDKey. Missing or
// invalid tokens short-circuit with 401.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return errs.NewUnauthorizedError("Missing authorization header", false)
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return errs.NewUnauthorizedError("Authorization header must be a bearer token", false)
		}

		userID, err := token.Parse(auth.server.Config.Auth.SecretKey, tokenString)
		if err != nil {
			return errs.NewUnauthorizedError("Invalid or expired session token", false)
		}

		// Stored as a string: correlation fields (logs, traces) consume it
		// as text, handlers parse it back when querying.
		c.Set(UserIDKey, strconv.FormatInt(userID, 10))

		return next(c)
	}
}

// GetAuthenticatedUserID returns the user id set by RequireAuth, or 0 when
// the request is unauthenticated.
func GetAuthenticatedUserID(c echo.Context) int64 {
	raw, ok := c.Get(UserIDKey).(string)
	if !ok || raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
