package repository

import (
	"context"
	"time"
)

// RevocationStore remembers token IDs revoked at logout until their natural expiry
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Ping(ctx context.Context) error
}
