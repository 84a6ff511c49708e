package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"summary-generator/internal/auth/config"
	"summary-generator/internal/auth/domain/repository"
	"summary-generator/internal/shared/logger"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "revoked_token:"

// NewClient creates a Redis client from the auth configuration
func NewClient(cfg *config.Config) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
	})
}

// RevocationStore keeps revoked token IDs in Redis with a TTL equal to the token's
// remaining lifetime, so entries disappear once the token would be rejected anyway.
type RevocationStore struct {
	client *goredis.Client
	logger logger.Logger
	now    func() time.Time
}

// NewRevocationStore creates a Redis-backed revocation store
func NewRevocationStore(client *goredis.Client, log logger.Logger) *RevocationStore {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &RevocationStore{
		client: client,
		logger: log.WithComponent("revocation_store"),
		now:    time.Now,
	}
}

// Revoke marks tokenID as revoked until expiresAt. Already expired tokens are ignored.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return errors.New("token ID cannot be empty")
	}

	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, keyPrefix+tokenID, expiresAt.Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.logger.WithContext(ctx).Debugf("Token %s revoked for %s", tokenID, ttl)
	return nil
}

// IsRevoked reports whether tokenID was revoked and has not expired yet
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	n, err := s.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}

// Ping checks connectivity
func (s *RevocationStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

var _ repository.RevocationStore = (*RevocationStore)(nil)
