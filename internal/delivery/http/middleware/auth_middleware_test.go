package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/service"
	mockSvc "boutique/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performAuthRequest(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, bool, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var reached bool
	var email string
	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		reached = true
		email, _ = AuthenticatedEmail(c)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, reached, email
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("good.token").Return(&service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice@example.com"},
	}, nil)

	rec, reached, email := performAuthRequest(t, tokenSvc, "Bearer good.token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.Equal(t, "alice@example.com", email)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, reached, _ := performAuthRequest(t, tokenSvc, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_NotBearerScheme(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, reached, _ := performAuthRequest(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_InvalidTokenNeverFallsBackToGuest(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		Validate("bad.token").
		Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("token validation failed"))

	rec, reached, _ := performAuthRequest(t, tokenSvc, "Bearer bad.token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}
