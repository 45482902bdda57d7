package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	Debug       bool   `envconfig:"DEBUG" default:"false"`

	// FrontendOrigin is the only origin allowed to call the chat API
	FrontendOrigin string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`

	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`

	// Retrieval tunables. TopK and ScoreThreshold are the main levers
	// trading recall against prompt size.
	TopK           int     `envconfig:"TOP_K" default:"4"`
	ScoreThreshold float64 `envconfig:"SCORE_THRESHOLD" default:"0.2"`
	HistoryLimit   int     `envconfig:"HISTORY_LIMIT" default:"4"`

	RateLimitMax    int           `envconfig:"RATE_LIMIT_MAX" default:"10"`
	RateLimitWindow time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"15m"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("PORTFOLIO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
