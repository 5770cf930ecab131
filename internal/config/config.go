package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"ircportal/pkg/tz"
)

const (
	IdentityStatic = "static"
	IdentityGoTrue = "gotrue"

	SessionFile  = "file"
	SessionRedis = "redis"
)

type Config struct {
	HTTPAddr  string
	JWTSecret string

	IdentityStrategy  string
	IdentityURL       string
	IdentityClientID  string
	IdentityJWTSecret string
	DemoPassword      string

	SessionBackend string
	SessionPath    string
	RedisURL       string

	DiscordWebhookID    string
	DiscordWebhookToken string

	Locale           string
	Timezone         string
	Location         *time.Location
	CORSOrigins      []string
	ReminderInterval time.Duration
	LogLevel         logrus.Level
}

// Load reads .env when present, then the environment, and validates the result.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment.
	_ = godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		HTTPAddr:            get("HTTP_ADDR", ":8080"),
		JWTSecret:           get("JWT_SECRET", ""),
		IdentityStrategy:    get("IDENTITY_STRATEGY", IdentityStatic),
		IdentityURL:         get("IDENTITY_URL", ""),
		IdentityClientID:    get("IDENTITY_CLIENT_ID", "ircportal"),
		IdentityJWTSecret:   get("IDENTITY_JWT_SECRET", ""),
		DemoPassword:        get("DEMO_PASSWORD", "password"),
		SessionBackend:      get("SESSION_BACKEND", SessionFile),
		SessionPath:         get("SESSION_PATH", ".ircportal"),
		RedisURL:            get("REDIS_URL", ""),
		DiscordWebhookID:    get("DISCORD_WEBHOOK_ID", ""),
		DiscordWebhookToken: get("DISCORD_WEBHOOK_TOKEN", ""),
		Locale:              get("LOCALE", "en"),
		Timezone:            get("TIMEZONE", "America/Toronto"),
	}
	for _, origin := range strings.Split(get("CORS_ORIGINS", "http://localhost:5173"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	interval, err := time.ParseDuration(get("REMINDER_INTERVAL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("config: invalid REMINDER_INTERVAL: %w", err)
	}
	cfg.ReminderInterval = interval

	level, err := logrus.ParseLevel(get("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("config: invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	loc, err := tz.Load(c.Timezone)
	if err != nil {
		return fmt.Errorf("config: invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	c.Location = loc

	if c.ReminderInterval <= 0 {
		return fmt.Errorf("config: REMINDER_INTERVAL must be positive")
	}

	switch c.IdentityStrategy {
	case IdentityStatic:
	case IdentityGoTrue:
		if err := checkURL("IDENTITY_URL", c.IdentityURL); err != nil {
			return err
		}
		if c.IdentityJWTSecret == "" {
			return fmt.Errorf("config: IDENTITY_JWT_SECRET is required with IDENTITY_STRATEGY=gotrue")
		}
	default:
		return fmt.Errorf("config: IDENTITY_STRATEGY must be %q or %q, got %q", IdentityStatic, IdentityGoTrue, c.IdentityStrategy)
	}

	switch c.SessionBackend {
	case SessionFile:
	case SessionRedis:
		if err := checkURL("REDIS_URL", c.RedisURL); err != nil {
			return err
		}
	default:
		return fmt.Errorf("config: SESSION_BACKEND must be %q or %q, got %q", SessionFile, SessionRedis, c.SessionBackend)
	}

	if (c.DiscordWebhookID == "") != (c.DiscordWebhookToken == "") {
		return fmt.Errorf("config: DISCORD_WEBHOOK_ID and DISCORD_WEBHOOK_TOKEN must be set together")
	}
	for _, r := range c.DiscordWebhookID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DISCORD_WEBHOOK_ID must be a Discord snowflake (digits only)")
		}
	}
	return nil
}

// ValidateServe checks what only the HTTP server needs.
func (c *Config) ValidateServe() error {
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("config: JWT_SECRET is required and must be at least 16 characters")
	}
	return nil
}

// DiscordEnabled reports whether notifications are relayed to Discord.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordWebhookID != ""
}

func checkURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("config: %s is required", name)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: invalid %s (%q): %w", name, raw, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid %s (%q): missing scheme or host", name, raw)
	}
	return nil
}
