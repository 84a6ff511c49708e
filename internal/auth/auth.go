package auth

import (
	"context"
	"database/sql"
	"fmt"

	authhttp "summary-generator/internal/auth/adapter/http"
	"summary-generator/internal/auth/adapter/persistence/sqlite"
	"summary-generator/internal/auth/adapter/security"
	"summary-generator/internal/auth/config"
	"summary-generator/internal/auth/domain/repository"
	"summary-generator/internal/auth/usecase"
	"summary-generator/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// AuthModule represents the complete authentication module
type AuthModule struct {
	repository repository.UserRepository
	tokenSvc   repository.TokenService
	usecase    usecase.AuthUsecaseInterface
	handler    *authhttp.AuthHTTPHandler
	middleware *authhttp.AuthMiddleware
	config     *config.Config
	log        logger.Logger
}

// NewAuthModule creates a new authentication module instance. revocation may be nil.
func NewAuthModule(db *sql.DB, cfg *config.Config, log logger.Logger, revocation repository.RevocationStore) (*AuthModule, error) {
	if log == nil {
		log = logger.NewNopLogger()
	}

	// Initialize repository
	userRepo, err := sqlite.NewUserRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	// Initialize token service
	tokenSvc, err := security.NewJWTokenService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	hasher := security.NewBcryptPasswordHasher(cfg.BcryptCost)

	// Initialize usecase
	authUsecase := usecase.NewAuthUsecase(userRepo, tokenSvc, hasher, revocation, cfg, log)

	// Initialize HTTP handler
	handler := authhttp.NewAuthHTTPHandler(authUsecase, authhttp.CookieConfig{
		Name:     cfg.CookieName,
		Path:     cfg.CookiePath,
		Domain:   cfg.CookieDomain,
		MaxAge:   cfg.CookieMaxAge(),
		Secure:   cfg.CookieSecure,
		HTTPOnly: cfg.CookieHTTPOnly,
		SameSite: cfg.CookieSameSite,
	}, log)

	return &AuthModule{
		repository: userRepo,
		tokenSvc:   tokenSvc,
		usecase:    authUsecase,
		handler:    handler,
		middleware: authhttp.NewAuthMiddleware(authUsecase, cfg.CookieName, log),
		config:     cfg,
		log:        log,
	}, nil
}

// RegisterRoutes registers authentication routes with the provided router
func (am *AuthModule) RegisterRoutes(router fiber.Router) {
	am.handler.SetupAuthRoutes(router)
}

// Seed creates the configured seed user when missing
func (am *AuthModule) Seed(ctx context.Context) error {
	created, err := am.usecase.EnsureSeedUser(ctx)
	if err != nil {
		return err
	}
	if !created {
		am.log.Debug("Seed user already present or seeding disabled")
	}
	return nil
}

// GetUsecase returns the auth usecase for external access
func (am *AuthModule) GetUsecase() usecase.AuthUsecaseInterface {
	return am.usecase
}

// GetTokenService returns the token issuer/validator
func (am *AuthModule) GetTokenService() repository.TokenService {
	return am.tokenSvc
}

// GetMiddleware returns the auth middleware
func (am *AuthModule) GetMiddleware() *authhttp.AuthMiddleware {
	return am.middleware
}

// Stop performs cleanup when the module is shut down. The database handle belongs to the caller.
func (am *AuthModule) Stop() error {
	return nil
}
