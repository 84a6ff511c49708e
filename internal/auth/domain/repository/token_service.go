package repository

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for token operations
type TokenService interface {
	GenerateToken(ctx context.Context, subject string) (string, error)
	IssueToken(ctx context.Context, subject string, ttl time.Duration) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents JWT claims. The subject is the username.
type Claims struct {
	jwt.RegisteredClaims
}

// Username returns the subject claim
func (c *Claims) Username() string {
	return c.Subject
}

// ExpiresAtTime returns the expiry, or the zero time when absent
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}
