package di

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"summary-generator/internal/auth"
	authredis "summary-generator/internal/auth/adapter/persistence/redis"
	authconfig "summary-generator/internal/auth/config"
	"summary-generator/internal/auth/domain/repository"
	"summary-generator/internal/shared/database"
	"summary-generator/internal/shared/logger"
	"summary-generator/internal/summarizer"
	summarizerconfig "summary-generator/internal/summarizer/config"
	summarizerrepo "summary-generator/internal/summarizer/domain/repository"

	goredis "github.com/redis/go-redis/v9"
)

// Container owns the process-wide handles and the modules built on them
type Container struct {
	mu sync.RWMutex
	// Module instances
	AuthModule       *auth.AuthModule
	SummarizerModule *summarizer.SummarizerModule
	// Connections
	DB    *sql.DB
	Redis *goredis.Client
	// Configuration
	AuthConfig       *authconfig.Config
	SummarizerConfig *summarizerconfig.Config
	// Logger
	Logger logger.Logger
}

// NewContainer creates a new DI container
func NewContainer(log logger.Logger) *Container {
	if log == nil {
		log = logger.NewLogger()
	}
	return &Container{Logger: log}
}

// InitializeAuth opens the credential store, the optional revocation store and the auth
// module, then seeds the default user.
func (c *Container) InitializeAuth(ctx context.Context, authConfig *authconfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.AuthConfig = authConfig

	db, err := database.Open(ctx, authConfig.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.DB = db

	var revocation repository.RevocationStore
	if authConfig.RevocationEnabled() {
		client := authredis.NewClient(authConfig)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return fmt.Errorf("failed to connect to Redis at %s: %w", authConfig.RedisAddr, err)
		}
		c.Redis = client
		revocation = authredis.NewRevocationStore(client, c.Logger)
		c.Logger.Infof("Token revocation enabled (redis %s)", authConfig.RedisAddr)
	}

	authModule, err := auth.NewAuthModule(db, authConfig, c.Logger, revocation)
	if err != nil {
		return fmt.Errorf("failed to create auth module: %w", err)
	}

	if err := authModule.Seed(ctx); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	c.AuthModule = authModule
	return nil
}

// InitializeSummarizer creates the summarizer module backed by the Groq gateway
func (c *Container) InitializeSummarizer(cfg *summarizerconfig.Config, httpClient *http.Client) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	module, err := summarizer.NewSummarizerModule(cfg, httpClient, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create summarizer module: %w", err)
	}

	c.SummarizerConfig = cfg
	c.SummarizerModule = module
	return nil
}

// InitializeSummarizerWithGenerator creates the summarizer module over a given generator
func (c *Container) InitializeSummarizerWithGenerator(generator summarizerrepo.TextGenerator, cfg *summarizerconfig.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.SummarizerConfig = cfg
	c.SummarizerModule = summarizer.NewSummarizerModuleWithGenerator(generator, cfg, c.Logger)
}

// GetAuthModule returns the auth module instance
func (c *Container) GetAuthModule() *auth.AuthModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AuthModule
}

// GetSummarizerModule returns the summarizer module instance
func (c *Container) GetSummarizerModule() *summarizer.SummarizerModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.SummarizerModule
}

// HealthCheck pings the database and, when configured, Redis
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.DB == nil {
		return errors.New("database not initialized")
	}
	if err := c.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	if c.Redis != nil {
		if err := c.Redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis health check failed: %w", err)
		}
	}

	if c.SummarizerModule == nil {
		return errors.New("summarizer module not initialized")
	}
	return nil
}

// Cleanup releases modules and connections in reverse order of initialization
func (c *Container) Cleanup(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.SummarizerModule != nil {
		if err := c.SummarizerModule.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop summarizer module: %w", err))
		}
		c.SummarizerModule = nil
	}

	if c.AuthModule != nil {
		if err := c.AuthModule.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop auth module: %w", err))
		}
		c.AuthModule = nil
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis: %w", err))
		}
		c.Redis = nil
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
		c.DB = nil
	}

	return errors.Join(errs...)
}

// Close gracefully shuts down all services in the container with timeout
func (c *Container) Close() error {
	c.Logger.Info("Closing DI container resources...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.Cleanup(ctx); err != nil {
		c.Logger.Warnf("Cleanup errors occurred: %v", err)
		return err
	}

	c.Logger.Info("DI container resources closed")
	return nil
}
