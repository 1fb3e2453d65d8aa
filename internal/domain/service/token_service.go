package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by the bearer tokens.
// The subject is the user's canonical identity (email).
type Claims struct {
	jwt.RegisteredClaims
}

// Email returns the token subject, the user's canonical identity.
func (c *Claims) Email() string {
	return c.Subject
}

// TokenService defines the interface for issuing and validating signed,
// time-limited bearer tokens. All state lives inside the token itself; the
// implementation holds only the process-lifetime signing secret.
type TokenService interface {
	// Issue creates a signed token asserting the given subject with an absolute
	// expiry of now+ttl. A non-positive ttl falls back to the service default.
	Issue(subject string, ttl time.Duration) (string, error)

	// Validate checks signature, expiry and subject presence. Every failure
	// collapses into the same authentication error so callers cannot be used
	// as an oracle for which check failed.
	Validate(tokenString string) (*Claims, error)

	// LoginTokenDuration returns the configured lifetime for tokens issued by
	// the login flow.
	LoginTokenDuration() time.Duration
}
