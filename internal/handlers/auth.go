package handlers

import (
	"net/http"
	"time"

	"github.com/chatup/backend/internal/middleware"
	"github.com/chatup/backend/internal/models"
	"github.com/chatup/backend/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RefreshTokenCookie carries the refresh token for web clients
const RefreshTokenCookie = "RefreshToken"

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *services.AuthService
	tokenTTL    time.Duration
	refreshTTL  time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AuthService, tokenTTL, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokenTTL:    tokenTTL,
		refreshTTL:  refreshTTL,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.SignUp)
	g.POST("/signin", h.SignIn)
	g.POST("/refresh", h.Refresh)
	g.POST("/signout", h.SignOut)
}

// SignUp handles user registration with email and password
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req models.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ok, err := h.authService.SignUp(req.Name, req.Email, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Email already registered")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "User registered successfully"})
}

// SignIn authenticates the credentials, persists a session and returns the
// token pair. Web clients additionally get HttpOnly cookies.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SignInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.authService.SignIn(req.Email, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if pair == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	h.setAuthCookies(c, pair)
	return c.JSON(http.StatusOK, pair)
}

// Refresh rotates the token pair of the session identified by the refresh
// token, taken from the request body or the RefreshToken cookie.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req models.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		if cookie, err := c.Cookie(RefreshTokenCookie); err == nil {
			refreshToken = cookie.Value
		}
	}
	if refreshToken == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Refresh token is missing")
	}

	pair, err := h.authService.Refresh(refreshToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if pair == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired refresh token")
	}

	h.setAuthCookies(c, pair)
	return c.JSON(http.StatusOK, pair)
}

// SignOut deletes the session behind the presented token and clears the
// auth cookies.
func (h *AuthHandler) SignOut(c echo.Context) error {
	token := middleware.ExtractToken(c)
	if token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing token")
	}

	ok, err := h.authService.SignOut(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Session not found")
	}

	h.clearAuthCookies(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "Signed out"})
}

func (h *AuthHandler) setAuthCookies(c echo.Context, pair *services.TokenPair) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AuthTokenCookie,
		Value:    pair.Token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenTTL),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    pair.RefreshToken,
		Path:     "/",
		Expires:  time.Now().Add(h.refreshTTL),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearAuthCookies(c echo.Context) {
	for _, name := range []string{middleware.AuthTokenCookie, RefreshTokenCookie} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteStrictMode,
		})
	}
}
