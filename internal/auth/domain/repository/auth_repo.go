package repository

import (
	"context"

	"summary-generator/internal/auth/domain/model"
)

// UserRepository is the credential store: user records looked up by username
type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	CountUsers(ctx context.Context) (int, error)
}

// PasswordHasher verifies plaintext passwords against stored salted hashes
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
