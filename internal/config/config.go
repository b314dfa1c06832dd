// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"eatnsplit/internal/friends"
)

// Config holds the settings for one eatnsplit session.
type Config struct {
	// AvatarBase is the placeholder image URL new friends start with.
	AvatarBase string

	// Logging. The TUI owns the terminal, so logs only go to a file.
	LogFile  string
	LogLevel string

	// Tracing; an empty endpoint disables export.
	OTLPEndpoint string
	ServiceName  string
}

// Load reads .env (if present) and then the process environment.
func Load() *Config {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	return &Config{
		AvatarBase:   getEnv("EATNSPLIT_AVATAR_BASE", friends.DefaultAvatarBase),
		LogFile:      getEnv("EATNSPLIT_LOG_FILE", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:  getEnv("OTEL_SERVICE_NAME", "eatnsplit"),
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q: must be debug, info, warn or error", c.LogLevel))
	}

	if u, err := url.Parse(c.AvatarBase); err != nil {
		errs = append(errs, fmt.Errorf("invalid avatar base %q: %w", c.AvatarBase, err))
	} else if !u.IsAbs() || u.Host == "" {
		errs = append(errs, fmt.Errorf("invalid avatar base %q: must be an absolute URL", c.AvatarBase))
	}

	if c.OTLPEndpoint != "" && c.ServiceName == "" {
		errs = append(errs, errors.New("OTEL_SERVICE_NAME must not be empty when tracing is enabled"))
	}

	return errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
