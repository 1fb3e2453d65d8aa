package middleware

import (
	"strings"

	"boutique/internal/delivery/http/response"
	"boutique/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserEmail is the echo context key holding the authenticated
// customer's email, set by Authenticate.
const ContextKeyUserEmail = "userEmail"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the token subject on the
// request context. A request without a valid token never reaches the handler;
// there is no anonymous fallback.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		// Set the subject on the context for handlers to use
		c.Set(ContextKeyUserEmail, claims.Subject)

		return next(c)
	}
}

// AuthenticatedEmail extracts the token subject set by Authenticate.
func AuthenticatedEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(ContextKeyUserEmail).(string)

	return email, ok && email != ""
}
