package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config holds all application configuration
type Config struct {
	Env      string `env:"APP_ENV" env-default:"development"`
	Port     string `env:"PORT" env-default:"3000"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	// Database
	DatabaseURL string `env:"DATABASE_URL"`

	// Fixtures provider
	FootballAPIKey     string        `env:"API_FOOTBALL_KEY"`
	FootballAPIURL     string        `env:"API_FOOTBALL_URL" env-default:"https://v3.football.api-sports.io"`
	FootballAPITimeout time.Duration `env:"API_FOOTBALL_TIMEOUT" env-default:"0s"`

	// sha256 or bcrypt
	PasswordHasher string `env:"PASSWORD_HASHER" env-default:"sha256"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	cfg.PasswordHasher = strings.ToLower(strings.TrimSpace(cfg.PasswordHasher))
	cfg.FootballAPIURL = strings.TrimRight(strings.TrimSpace(cfg.FootballAPIURL), "/")

	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	switch cfg.PasswordHasher {
	case "sha256", "bcrypt":
	default:
		return nil, fmt.Errorf("PASSWORD_HASHER must be sha256 or bcrypt, got %q", cfg.PasswordHasher)
	}

	if cfg.FootballAPITimeout < 0 {
		return nil, fmt.Errorf("API_FOOTBALL_TIMEOUT must not be negative")
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// ConfigureLogger applies level and formatter to the standard logrus logger.
func (c *Config) ConfigureLogger() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if c.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
