package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// ErrMissingDiscordToken is returned when DISCORD_BOT_TOKEN is not set
var ErrMissingDiscordToken = errors.New("DISCORD_BOT_TOKEN is required")

// KeepAliveDisabled turns the liveness endpoint off when used as KEEPALIVE_ADDR
const KeepAliveDisabled = "off"

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string `env:"DISCORD_BOT_TOKEN"`
	DiscordGuildID string `env:"DISCORD_GUILD_ID"` // Optional: register commands to one guild

	// Fortnite API configuration
	FortniteAPIKey     string        `env:"FORTNITE_API_KEY"` // Missing key fails commands, not startup
	FortniteAPIBaseURL string        `env:"FORTNITE_API_BASE_URL" envDefault:"https://fortnite-api.com/v2"`
	FortniteAPITimeout time.Duration `env:"FORTNITE_API_TIMEOUT" envDefault:"10s"`

	// Liveness endpoint for external uptime monitors
	KeepAliveAddr string `env:"KEEPALIVE_ADDR" envDefault:":8080"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Environment
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // "development", "production" or "test"
}

var (
	instance *Config
	loadErr  error
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance, nil
	}

	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Debug("No .env file found, using process environment")
		}
		instance, loadErr = load()
	})
	return instance, loadErr
}

// KeepAliveEnabled reports whether the liveness endpoint should run
func (c *Config) KeepAliveEnabled() bool {
	return c.KeepAliveAddr != "" && c.KeepAliveAddr != KeepAliveDisabled
}

// load parses configuration from environment variables
func load() (*Config, error) {
	config, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, ErrMissingDiscordToken
		}
	}

	if config.FortniteAPIKey == "" {
		log.Warn("FORTNITE_API_KEY is not set; commands will fail until it is configured")
	}

	return &config, nil
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	loadErr = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:        "test",
		DiscordToken:       "test-token",
		FortniteAPIBaseURL: "http://127.0.0.1:0",
		FortniteAPITimeout: time.Second,
		KeepAliveAddr:      KeepAliveDisabled,
		LogLevel:           "debug",
	}
}
