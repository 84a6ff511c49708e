package testutil

import (
	"time"

	"summary-generator/internal/auth/config"
	"summary-generator/internal/auth/domain/model"
	"summary-generator/internal/shared/database"

	"golang.org/x/crypto/bcrypt"
)

// Seed credentials used across tests
const (
	SeedUsername = "testuser"
	SeedEmail    = "test@example.com"
	SeedPassword = "secret"
	TestSecret   = "integration-secret-key-that-is-at-least-32-chars-long"
)

// UserFixture provides test data for User model
type UserFixture struct{}

// NewUserFixture creates a new UserFixture instance
func NewUserFixture() *UserFixture {
	return &UserFixture{}
}

// ValidUser returns an active user whose password is SeedPassword
func (f *UserFixture) ValidUser() *model.User {
	return f.UserWithPassword(SeedUsername, SeedPassword)
}

// InactiveUser returns a user with IsActive false
func (f *UserFixture) InactiveUser(username string) *model.User {
	u := f.UserWithPassword(username, SeedPassword)
	u.IsActive = false
	return u
}

// UserWithPassword returns an active user with a specific password
func (f *UserFixture) UserWithPassword(username, password string) *model.User {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hashedPassword),
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
}

// TestConfig returns an auth configuration backed by an in-memory database
func TestConfig() *config.Config {
	return &config.Config{
		Database:       database.Config{Path: ":memory:"},
		SecretKey:      TestSecret,
		JWTIssuer:      "integration-test",
		AccessTokenTTL: 30 * time.Minute,
		CookieName:     "token",
		CookiePath:     "/",
		CookieSecure:   false,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		BcryptCost:     bcrypt.MinCost,
		SeedEnabled:    true,
		SeedUsername:   SeedUsername,
		SeedEmail:      SeedEmail,
		SeedPassword:   SeedPassword,
	}
}

// TestData provides all fixtures
type TestData struct {
	Users *UserFixture
}

// NewTestData creates a new TestData instance with all fixtures
func NewTestData() *TestData {
	return &TestData{
		Users: NewUserFixture(),
	}
}
