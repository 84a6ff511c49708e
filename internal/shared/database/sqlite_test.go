package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, Config{Path: filepath.Join(t.TempDir(), "app.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var n int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, "users").Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOpen_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.db")

	db, err := Open(ctx, Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(ctx, Config{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db))
}

func TestOpen_InMemory(t *testing.T) {
	db, err := Open(context.Background(), Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO users (username, email, hashed_password) VALUES ('a', 'a@example.com', 'x')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO users (username, email, hashed_password) VALUES ('a', 'b@example.com', 'x')`)
	assert.Error(t, err, "username must be unique")
}

func TestOpen_EmptyPath(t *testing.T) {
	db, err := Open(context.Background(), Config{})
	assert.Error(t, err)
	assert.Nil(t, db)
}
