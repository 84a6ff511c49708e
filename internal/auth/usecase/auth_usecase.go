package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"summary-generator/internal/auth/config"
	"summary-generator/internal/auth/domain/model"
	"summary-generator/internal/auth/domain/repository"
	"summary-generator/internal/shared/logger"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("could not validate credentials")
)

// AuthUsecaseInterface defines the contract for authentication use cases.
type AuthUsecaseInterface interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Logout(ctx context.Context, tokenString string) error
	Authenticate(ctx context.Context, tokenString string) (*model.User, error)
	EnsureSeedUser(ctx context.Context) (bool, error)
}

// LoginRequest carries the form fields of POST /token
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// AuthResponse is the outcome of a successful login
type AuthResponse struct {
	User        *model.User
	AccessToken string
}

// AuthUsecase implements the authentication logic.
type AuthUsecase struct {
	repo       repository.UserRepository
	tokenSvc   repository.TokenService
	hasher     repository.PasswordHasher
	revocation repository.RevocationStore
	config     *config.Config
	log        logger.Logger
}

// NewAuthUsecase creates a new instance of AuthUsecase. A nil revocation store disables
// server-side revocation at logout.
func NewAuthUsecase(
	repo repository.UserRepository,
	tokenSvc repository.TokenService,
	hasher repository.PasswordHasher,
	revocation repository.RevocationStore,
	cfg *config.Config,
	log logger.Logger,
) *AuthUsecase {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &AuthUsecase{
		repo:       repo,
		tokenSvc:   tokenSvc,
		hasher:     hasher,
		revocation: revocation,
		config:     cfg,
		log:        log.WithComponent("auth_usecase"),
	}
}

// Login verifies username and password and issues an access token. Unknown users, wrong
// passwords and (when enforced) inactive users all fail with ErrInvalidCredentials.
func (uc *AuthUsecase) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := uc.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !uc.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if uc.config.EnforceActiveUsers && !user.IsActive {
		uc.log.WithContext(ctx).WithFields(map[string]interface{}{"username": user.Username}).Info("Login rejected for inactive user")
		return nil, ErrInvalidCredentials
	}

	token, err := uc.tokenSvc.GenerateToken(ctx, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{
		User:        user.Sanitized(),
		AccessToken: token,
	}, nil
}

// Logout never fails. With a revocation store configured, a valid token's ID is revoked
// until it would have expired anyway.
func (uc *AuthUsecase) Logout(ctx context.Context, tokenString string) error {
	if uc.revocation == nil || tokenString == "" {
		return nil
	}

	claims, err := uc.tokenSvc.ValidateToken(ctx, tokenString)
	if err != nil || claims.ID == "" {
		return nil
	}

	if err := uc.revocation.Revoke(ctx, claims.ID, claims.ExpiresAtTime()); err != nil {
		uc.log.WithContext(ctx).WithFields(map[string]interface{}{"error": err.Error()}).Warn("Failed to revoke token at logout")
	}
	return nil
}

// Authenticate resolves the user behind a session token. Every failure is ErrUnauthenticated.
func (uc *AuthUsecase) Authenticate(ctx context.Context, tokenString string) (*model.User, error) {
	if tokenString == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := uc.tokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		uc.log.WithContext(ctx).WithFields(map[string]interface{}{"error": err.Error()}).Debug("Token validation failed")
		return nil, ErrUnauthenticated
	}

	if uc.revocation != nil && claims.ID != "" {
		revoked, err := uc.revocation.IsRevoked(ctx, claims.ID)
		if err != nil {
			uc.log.WithContext(ctx).WithFields(map[string]interface{}{"error": err.Error()}).Error("Failed to check token revocation")
			return nil, ErrUnauthenticated
		}
		if revoked {
			return nil, ErrUnauthenticated
		}
	}

	user, err := uc.repo.GetUserByUsername(ctx, claims.Username())
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			uc.log.WithContext(ctx).WithFields(map[string]interface{}{"error": err.Error()}).Error("Failed to load user for token")
		}
		return nil, ErrUnauthenticated
	}

	return user.Sanitized(), nil
}

// EnsureSeedUser creates the configured seed user when it does not exist yet. It reports
// whether a user was created.
func (uc *AuthUsecase) EnsureSeedUser(ctx context.Context) (bool, error) {
	if !uc.config.SeedEnabled {
		return false, nil
	}

	_, err := uc.repo.GetUserByUsername(ctx, uc.config.SeedUsername)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return false, fmt.Errorf("failed to look up seed user: %w", err)
	}

	hash, err := uc.hasher.Hash(uc.config.SeedPassword)
	if err != nil {
		return false, fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := &model.User{
		Username:     uc.config.SeedUsername,
		Email:        uc.config.SeedEmail,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrUserExists) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create seed user: %w", err)
	}

	uc.log.WithContext(ctx).WithFields(map[string]interface{}{"username": user.Username}).Info("Seed user created")
	return true, nil
}

// Ensure AuthUsecase implements AuthUsecaseInterface
var _ AuthUsecaseInterface = (*AuthUsecase)(nil)
