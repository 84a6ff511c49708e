package auth_test

import (
	"context"
	"testing"
	"time"

	"summary-generator/internal/auth/adapter/security"
	"summary-generator/internal/auth/config"
	"summary-generator/internal/auth/domain/model"

	"golang.org/x/crypto/bcrypt"
)

func BenchmarkPasswordVerify(b *testing.B) {
	hasher := security.NewBcryptPasswordHasher(bcrypt.DefaultCost)
	hash, err := hasher.Hash("SuperSecurePassword123!")
	if err != nil {
		b.Fatalf("bcrypt error: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !hasher.Verify("SuperSecurePassword123!", hash) {
			b.Fatal("password did not verify")
		}
	}
}

func BenchmarkTokenRoundTrip(b *testing.B) {
	svc, err := security.NewJWTokenService(&config.Config{
		SecretKey:      "bench-secret",
		JWTIssuer:      "bench",
		AccessTokenTTL: 30 * time.Minute,
	})
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		token, err := svc.GenerateToken(ctx, "testuser")
		if err != nil {
			b.Fatal(err)
		}
		if _, err := svc.ValidateToken(ctx, token); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUserSanitized(b *testing.B) {
	user := &model.User{
		ID:           1,
		Username:     "testuser",
		PasswordHash: "$2a$10$hash",
	}
	for i := 0; i < b.N; i++ {
		_ = user.Sanitized()
	}
}
