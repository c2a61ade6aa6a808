package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultModel   = "gemini-2.5-pro"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
)

var (
	// ErrMissingConfig is returned when the bot is started without its
	// gateway token or completion API key.
	ErrMissingConfig = errors.New("missing DISCORD_TOKEN or GEMINI_API_KEY environment variables")

	// ErrMissingRegistrarConfig is returned when commands are registered
	// without a token or application ID.
	ErrMissingRegistrarConfig = errors.New("missing DISCORD_TOKEN or DISCORD_CLIENT_ID environment variables")
)

// Config holds bot and registrar configuration, read from the environment
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	ClientID     string `env:"DISCORD_CLIENT_ID"`
	GuildID      string `env:"DISCORD_GUILD_ID"`

	Model       string  `env:"GEMINI_MODEL" envDefault:"gemini-2.5-pro"`
	BaseURL     string  `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai"`
	MaxTokens   int     `env:"MAX_TOKENS"`
	Temperature float64 `env:"TEMPERATURE"`

	// CompletionTimeout bounds a single completion call. Zero disables it.
	CompletionTimeout time.Duration `env:"COMPLETION_TIMEOUT"`

	// RateLimit is the number of completion calls allowed per second
	// across all channels. Zero disables throttling.
	RateLimit float64 `env:"ASK_RATE_LIMIT"`
	RateBurst int     `env:"ASK_RATE_BURST" envDefault:"1"`

	LogLevel          slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	DiscordGoLogLevel slog.Level `env:"DISCORDGO_LOG_LEVEL" envDefault:"WARN"`
}

// LoadConfig reads the configuration from environment variables. It does not
// check for required values, see Validate and ValidateRegistrar.
func LoadConfig() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("error parsing configuration: %w", err)
	}
	if config.RateBurst < 1 {
		config.RateBurst = 1
	}
	return config, nil
}

// Validate checks the values required to run the bot
func (c *Config) Validate() error {
	if c.DiscordToken == "" || c.GeminiAPIKey == "" {
		return ErrMissingConfig
	}
	return nil
}

// ValidateRegistrar checks the values required to register commands
func (c *Config) ValidateRegistrar() error {
	if c.DiscordToken == "" || c.ClientID == "" {
		return ErrMissingRegistrarConfig
	}
	return nil
}
