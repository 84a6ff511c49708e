package config

import (
	"errors"
	"strings"
	"time"

	"summary-generator/internal/shared/database"

	"github.com/caarlos0/env/v6"
)

// InsecureDefaultSecretKey signs tokens when SECRET_KEY is not set. Development only.
const InsecureDefaultSecretKey = "your-secret-key-here"

// DefaultFallbackTokenTTL applies when a token is issued without a positive ttl.
const DefaultFallbackTokenTTL = 15 * time.Minute

// Config holds all configuration for the auth module.
type Config struct {
	// Relational store
	Database database.Config

	// JWT Configuration
	SecretKey      string        `env:"SECRET_KEY"`
	JWTIssuer      string        `env:"JWT_ISSUER" envDefault:"summary-generator"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"30m"`

	// Set by LoadConfig when SecretKey fell back to InsecureDefaultSecretKey
	InsecureSecretKey bool `env:"-"`

	// Cookie Configuration
	CookieName     string `env:"COOKIE_NAME" envDefault:"token"`
	CookiePath     string `env:"COOKIE_PATH" envDefault:"/"`
	CookieDomain   string `env:"COOKIE_DOMAIN" envDefault:""`
	CookieSecure   bool   `env:"COOKIE_SECURE" envDefault:"false"` // Set to true in production
	CookieHTTPOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	CookieSameSite string `env:"COOKIE_SAME_SITE" envDefault:"Lax"` // "Lax", "Strict", "None"

	// Password hashing
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// Seed user created at startup when missing
	SeedEnabled  bool   `env:"SEED_ENABLED" envDefault:"true"`
	SeedUsername string `env:"SEED_USERNAME" envDefault:"testuser"`
	SeedEmail    string `env:"SEED_EMAIL" envDefault:"test@example.com"`
	SeedPassword string `env:"SEED_PASSWORD" envDefault:"secret"`

	// The active flag is stored but not checked at login unless this is set
	EnforceActiveUsers bool `env:"ENFORCE_ACTIVE_USERS" envDefault:"false"`

	// Optional revocation store; disabled when RedisAddr is empty
	RedisAddr     string `env:"REDIS_ADDR" envDefault:""`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load auth configuration from environment: " + err.Error())
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize applies fallbacks and validates the loaded values
func (cfg *Config) normalize() error {
	if cfg.SecretKey == "" {
		cfg.SecretKey = InsecureDefaultSecretKey
		cfg.InsecureSecretKey = true
	}
	if cfg.AccessTokenTTL <= 0 {
		return errors.New("access_token_ttl must be positive")
	}
	if cfg.CookieName == "" {
		return errors.New("cookie_name is required")
	}

	switch strings.ToLower(cfg.CookieSameSite) {
	case "lax":
		cfg.CookieSameSite = "Lax"
	case "strict":
		cfg.CookieSameSite = "Strict"
	case "none":
		cfg.CookieSameSite = "None"
	default:
		return errors.New("cookie_same_site must be one of 'Lax', 'Strict', or 'None'")
	}

	if cfg.SeedEnabled && (cfg.SeedUsername == "" || cfg.SeedPassword == "") {
		return errors.New("seed_username and seed_password are required when seeding is enabled")
	}
	return nil
}

// RevocationEnabled reports whether logout should revoke tokens server-side
func (cfg *Config) RevocationEnabled() bool {
	return cfg.RedisAddr != ""
}

// CookieMaxAge is the cookie lifetime in seconds, equal to the token ttl
func (cfg *Config) CookieMaxAge() int {
	return int(cfg.AccessTokenTTL.Seconds())
}
