package redis

import (
	"context"
	"testing"
	"time"

	"summary-generator/internal/shared/logger"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestRedisClient creates a Redis client for testing
func createTestRedisClient() *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:         "localhost:6379",
		DB:           15, // Use a test database
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

func setupStore(t *testing.T) (*RevocationStore, *goredis.Client) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := createTestRedisClient()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skip("Redis not available for testing:", err)
	}
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		_ = client.Close()
	})

	return NewRevocationStore(client, logger.NewNopLogger()), client
}

func TestRevocationStore_RevokeAndCheck(t *testing.T) {
	store, client := setupStore(t)
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Now().Add(10*time.Minute)))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := client.TTL(ctx, keyPrefix+"jti-1").Result()
	require.NoError(t, err)
	assert.InDelta(t, (10 * time.Minute).Seconds(), ttl.Seconds(), 5)
}

func TestRevocationStore_ExpiredTokenIsNotStored(t *testing.T) {
	store, client := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti-old", time.Now().Add(-time.Minute)))

	n, err := client.Exists(ctx, keyPrefix+"jti-old").Result()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRevocationStore_EmptyTokenID(t *testing.T) {
	store := NewRevocationStore(createTestRedisClient(), nil)

	assert.Error(t, store.Revoke(context.Background(), "", time.Now().Add(time.Minute)))

	revoked, err := store.IsRevoked(context.Background(), "")
	assert.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationStore_Ping(t *testing.T) {
	store, _ := setupStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}
