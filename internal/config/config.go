package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the scout-server service.
//
// Backend credentials are optional on purpose: a missing GROQ_API_KEY
// degrades /chat to an explanatory payload and missing Google credentials
// degrade the structured search client to always-unavailable. Startup never
// fails because a secret is absent.
type Config struct {
	// Service settings
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"scout-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"PORT" envDefault:"5000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Chat relay (Groq)
	GroqAPIKey  string        `env:"GROQ_API_KEY"`
	GroqBaseURL string        `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	ChatModel   string        `env:"CHAT_MODEL" envDefault:"llama-3.3-70b-versatile"`
	ChatTimeout time.Duration `env:"CHAT_TIMEOUT" envDefault:"30s"`

	// Structured search (Google Custom Search)
	GoogleAPIKey   string        `env:"GOOGLE_API_KEY"`
	GoogleCXID     string        `env:"GOOGLE_CX_ID"`
	GoogleEndpoint string        `env:"GOOGLE_ENDPOINT" envDefault:"https://www.googleapis.com/customsearch/v1"`
	GoogleTimeout  time.Duration `env:"GOOGLE_TIMEOUT" envDefault:"5s"`

	// Scraping search (DuckDuckGo Lite)
	DDGEndpoint string        `env:"DDG_ENDPOINT" envDefault:"https://lite.duckduckgo.com/lite/"`
	DDGTimeout  time.Duration `env:"DDG_TIMEOUT" envDefault:"8s"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}

// Addr returns the HTTP server address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// HasGroqKey reports whether the chat relay credential is configured.
func (c *Config) HasGroqKey() bool {
	return strings.TrimSpace(c.GroqAPIKey) != ""
}

// HasGoogleKeys reports whether both structured-search credentials are
// configured.
func (c *Config) HasGoogleKeys() bool {
	return strings.TrimSpace(c.GoogleAPIKey) != "" && strings.TrimSpace(c.GoogleCXID) != ""
}
