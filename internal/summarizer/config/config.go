package config

import (
	"errors"
	"strings"

	"github.com/caarlos0/env/v6"
)

// TextPlaceholder is replaced with the caller's input in user prompt templates
const TextPlaceholder = "{text}"

// Config holds all configuration for the summarizer module.
type Config struct {
	// Groq exposes an OpenAI-compatible API
	APIKey  string `env:"GROQ_API_KEY"`
	BaseURL string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	Model   string `env:"GENERATION_MODEL" envDefault:"llama-3.1-8b-instant"`

	Temperature           float32 `env:"GENERATION_TEMPERATURE" envDefault:"0.7"`
	SummaryMaxTokens      int     `env:"SUMMARY_MAX_TOKENS" envDefault:"150"`
	BulletPointsMaxTokens int     `env:"BULLET_POINTS_MAX_TOKENS" envDefault:"200"`

	SummarySystemPrompt      string `env:"SUMMARY_SYSTEM_PROMPT" envDefault:"You are a helpful assistant that creates concise and informative summaries."`
	SummaryUserPrompt        string `env:"SUMMARY_USER_PROMPT"`
	BulletPointsSystemPrompt string `env:"BULLET_POINTS_SYSTEM_PROMPT" envDefault:"You are a helpful assistant that creates clear and concise bullet points."`
	BulletPointsUserPrompt   string `env:"BULLET_POINTS_USER_PROMPT"`
}

// Default user prompt templates. They contain a newline, which env tags cannot express.
const (
	DefaultSummaryUserPrompt      = "Please provide a clear and concise summary of the following text:\n\n" + TextPlaceholder
	DefaultBulletPointsUserPrompt = "Please provide 3-5 key bullet points from the following text:\n\n" + TextPlaceholder
)

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load summarizer configuration from environment: " + err.Error())
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration with the given API key
func Default(apiKey string) *Config {
	cfg := &Config{
		APIKey:                   apiKey,
		BaseURL:                  "https://api.groq.com/openai/v1",
		Model:                    "llama-3.1-8b-instant",
		Temperature:              0.7,
		SummaryMaxTokens:         150,
		BulletPointsMaxTokens:    200,
		SummarySystemPrompt:      "You are a helpful assistant that creates concise and informative summaries.",
		BulletPointsSystemPrompt: "You are a helpful assistant that creates clear and concise bullet points.",
	}
	_ = cfg.normalize()
	return cfg
}

func (cfg *Config) normalize() error {
	if cfg.SummaryUserPrompt == "" {
		cfg.SummaryUserPrompt = DefaultSummaryUserPrompt
	}
	if cfg.BulletPointsUserPrompt == "" {
		cfg.BulletPointsUserPrompt = DefaultBulletPointsUserPrompt
	}
	if !strings.Contains(cfg.SummaryUserPrompt, TextPlaceholder) {
		return errors.New("summary_user_prompt must contain " + TextPlaceholder)
	}
	if !strings.Contains(cfg.BulletPointsUserPrompt, TextPlaceholder) {
		return errors.New("bullet_points_user_prompt must contain " + TextPlaceholder)
	}
	if cfg.Model == "" {
		return errors.New("generation_model is required")
	}
	if cfg.SummaryMaxTokens <= 0 || cfg.BulletPointsMaxTokens <= 0 {
		return errors.New("max token limits must be positive")
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return errors.New("generation_temperature must be between 0 and 2")
	}
	return nil
}
