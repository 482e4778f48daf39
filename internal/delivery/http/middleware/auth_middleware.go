package middleware

import (
	"strings"

	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUserID is the echo.Context key for the authenticated user's id.
	ContextKeyUserID = "userID"

	// ContextKeyToken is the echo.Context key for the raw bearer token that
	// authenticated the request. Logout revokes exactly this value.
	ContextKeyToken = "authToken"
)

// AuthMiddleware validates opaque bearer tokens against the token store.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate resolves the presented bearer token to a user id. Any failure
// (missing header, malformed scheme, unknown or revoked token) yields 401 via
// the central error handler; a revoked token fails exactly like one that
// never existed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header is missing")
		}

		rawToken := strings.TrimPrefix(authHeader, "Bearer ")
		if rawToken == authHeader || rawToken == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("invalid token format, must be Bearer token")
		}

		userID, err := m.tokenSvc.Resolve(c.Request().Context(), rawToken)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WithDetails("invalid or revoked token")
		}

		// Expose identity and the presenting token to downstream handlers.
		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyToken, rawToken)

		return next(c)
	}
}
