package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// RedisURL takes precedence over RedisAddr/RedisPassword when set
	RedisURL      string `envconfig:"REDIS_URL"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	DiscordToken  string `envconfig:"DISCORD_TOKEN"`
	ApplicationID string `envconfig:"APPLICATION_ID"`
	GuildID       string `envconfig:"GUILD_ID"` // development guild for instant command registration

	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	APIKey   string `envconfig:"API_KEY"`

	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
	DefaultTimezone string        `envconfig:"DEFAULT_TIMEZONE" default:"Europe/Prague"`
	NoticeCooldown  time.Duration `envconfig:"NOTICE_COOLDOWN" default:"168h"`
}

// Load reads an optional .env file and then the environment into Config.
func Load() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.RedisURL == "" && c.RedisAddr == "" {
		return errors.New("REDIS_URL or REDIS_ADDR is required")
	}

	if _, err := time.LoadLocation(c.DefaultTimezone); err != nil {
		return fmt.Errorf("DEFAULT_TIMEZONE is not a valid IANA zone: %w", err)
	}

	if c.NoticeCooldown < 0 {
		return errors.New("NOTICE_COOLDOWN cannot be negative")
	}

	return nil
}
