// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"boutique/config"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/service"
)

const (
	defaultTokenTTL = 15 * time.Minute
	loginTokenTTL   = 30 * time.Minute
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It holds the single process-lifetime signing secret; everything else lives in the token.
type jwtService struct {
	secret     string
	defaultTTL time.Duration
	loginTTL   time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	svc := &jwtService{
		secret:     cfg.SecretKey.Access,
		defaultTTL: defaultTokenTTL,
		loginTTL:   loginTokenTTL,
	}
	if cfg.Auth != nil {
		if cfg.Auth.DefaultTokenTTL > 0 {
			svc.defaultTTL = cfg.Auth.DefaultTokenTTL
		}
		if cfg.Auth.LoginTokenTTL > 0 {
			svc.loginTTL = cfg.Auth.LoginTokenTTL
		}
	}

	return svc, nil
}

// Issue creates a signed HS256 token asserting the given subject. A
// non-positive ttl falls back to the service default.
func (s *jwtService) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := time.Now()
	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the signature and expiry of a token string.
// Every failure mode (bad signature, expired, missing subject) collapses into
// the same ErrTokenInvalid so the endpoint cannot be used as an oracle for
// which check failed.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token validation failed")
	}

	return claims, nil
}

// LoginTokenDuration returns the configured lifetime for login-issued tokens.
func (s *jwtService) LoginTokenDuration() time.Duration {
	return s.loginTTL
}
