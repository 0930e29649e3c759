// Package config reads the site configuration from the environment.
// A .env file in the working directory is loaded by main before Load runs.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	DefaultPort             = "8080"
	DefaultDatabasePath     = "portfolio.db"
	DefaultSessionTTL       = 30 * time.Minute
	DefaultVisitorRetention = 365 * 24 * time.Hour

	// Development fallbacks, replaced by ADMIN_USERNAME / ADMIN_PASSWORD.
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port             string        `validate:"required,numeric"`
	GinMode          string        `validate:"omitempty,oneof=debug release test"`
	DatabasePath     string        `validate:"required"`
	ContentFile      string        `validate:"omitempty,file"`
	AdminUsername    string        `validate:"required"`
	AdminPassword    string        `validate:"required"`
	LogLevel         string        `validate:"omitempty,oneof=trace debug info warn error"`
	LogFormat        string        `validate:"oneof=console json"`
	SessionTTL       time.Duration `validate:"gt=0"`
	VisitorRetention time.Duration `validate:"gt=0"`

	// UsingDefaultAdmin is set when either admin credential fell back to
	// the development default.
	UsingDefaultAdmin bool
}

// Load builds a Config from environment variables and validates it.
func Load() (cfg Config, err error) {
	cfg = Config{
		Port:         getenv("PORT", DefaultPort),
		GinMode:      os.Getenv("GIN_MODE"),
		DatabasePath: getenv("DATABASE_PATH", DefaultDatabasePath),
		ContentFile:  os.Getenv("CONTENT_FILE"),
		LogLevel:     strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFormat:    strings.ToLower(getenv("LOG_FORMAT", "console")),
	}

	cfg.AdminUsername = os.Getenv("ADMIN_USERNAME")
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = DefaultAdminUsername
		cfg.UsingDefaultAdmin = true
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = DefaultAdminPassword
		cfg.UsingDefaultAdmin = true
	}

	cfg.SessionTTL, err = durationEnv("SESSION_TTL", DefaultSessionTTL)
	if err != nil {
		return cfg, err
	}
	cfg.VisitorRetention, err = durationEnv("VISITOR_RETENTION", DefaultVisitorRetention)
	if err != nil {
		return cfg, err
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return d, nil
}
