// Package server assembles the fiber application from the container's modules.
package server

import (
	"context"
	"errors"
	"net"
	"time"

	"summary-generator/internal/di"
	apperrors "summary-generator/internal/shared/errors"

	"github.com/caarlos0/env/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// ServerConfig holds server configuration
type ServerConfig struct {
	Host             string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port             string        `env:"SERVER_PORT" envDefault:"8000"`
	CORSAllowOrigins string        `env:"CORS_ALLOW_ORIGINS" envDefault:"http://localhost:3000,http://localhost:3001"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	ReadTimeout      time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout     time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
}

// LoadConfig loads the server configuration from the environment
func LoadConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load server configuration: " + err.Error())
	}
	return cfg, nil
}

// Addr is the listen address
func (cfg *ServerConfig) Addr() string {
	return net.JoinHostPort(cfg.Host, cfg.Port)
}

// NewApp builds the HTTP application. The container's auth and summarizer modules must be
// initialized.
func NewApp(container *di.Container, cfg *ServerConfig) (*fiber.App, error) {
	authModule := container.GetAuthModule()
	summarizerModule := container.GetSummarizerModule()
	if authModule == nil || summarizerModule == nil {
		return nil, errors.New("auth and summarizer modules must be initialized")
	}

	appLogger := container.Logger

	app := fiber.New(fiber.Config{
		AppName:      "Summary Generator API",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: apperrors.FiberErrorHandler(appLogger),
	})

	middleware := authModule.GetMiddleware()

	// Add middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestContext())
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.CORS(cfg.CORSAllowOrigins))

	// Add health check endpoint with container health status
	app.Get("/health", func(c *fiber.Ctx) error {
		healthCtx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		if err := container.HealthCheck(healthCtx); err != nil {
			appLogger.WithContext(c.UserContext()).Errorf("Health check failed: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":  "UNHEALTHY",
				"error":   err.Error(),
				"message": "One or more services are unhealthy",
			})
		}

		return c.JSON(fiber.Map{
			"status":    "HEALTHY",
			"message":   "Summary Generator API is running",
			"timestamp": time.Now().UTC(),
			"modules": fiber.Map{
				"auth":       "initialized",
				"summarizer": "initialized",
			},
		})
	})

	// Register module routes
	authModule.RegisterRoutes(app)
	summarizerModule.RegisterRoutes(app, middleware.Protect())

	return app, nil
}
