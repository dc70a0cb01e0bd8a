package middleware

import (
	"net/http"
	"strings"

	"github.com/chatup/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// AuthTokenCookie is the cookie web clients carry the bearer token in.
// Non-web clients send the same value in an AuthToken header or a standard
// Authorization bearer header.
const AuthTokenCookie = "AuthToken"

// UserContextKey is where the middleware stores the resolved user
const UserContextKey = "user"

// SessionAuthMiddleware resolves the request's bearer token to a user via
// the auth service and stores it in the echo context. Requests without a
// valid, unexpired session are rejected with a uniform 401.
func SessionAuthMiddleware(authService *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			user, err := authService.Validate(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to validate session")
			}
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// ExtractToken pulls the bearer token from the AuthToken cookie, the
// AuthToken header, or an "Authorization: Bearer" header, in that order.
func ExtractToken(c echo.Context) string {
	if cookie, err := c.Cookie(AuthTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := c.Request().Header.Get(AuthTokenCookie); header != "" {
		return header
	}
	authHeader := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[len("bearer "):])
	}
	return ""
}
