// Package config loads service settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	defaultPort            = "8080"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
)

// projectIDVars are checked in order; the first non-empty value wins.
var projectIDVars = []string{
	"GOOGLE_CLOUD_PROJECT",
	"GCP_PROJECT",
	"GCLOUD_PROJECT",
	"PROJECT_ID",
}

// Config holds the process settings.
type Config struct {
	Port            string
	LogLevel        zapcore.Level
	ProjectID       string
	ShutdownTimeout time.Duration
}

// Addr is the listen address for Port on all interfaces.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads the given dotenv files (".env" when none are named) and then
// builds a Config from the environment. Missing files are skipped and
// variables already set in the environment take precedence over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:            defaultPort,
		ShutdownTimeout: defaultShutdownTimeout,
	}

	if v := os.Getenv("PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q: must be 1-65535", v)
		}
		cfg.Port = v
	}

	levelText := os.Getenv("LOG_LEVEL")
	if levelText == "" {
		levelText = defaultLogLevel
	}
	level, err := zapcore.ParseLevel(levelText)
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	for _, key := range projectIDVars {
		if v := os.Getenv(key); v != "" {
			cfg.ProjectID = v
			break
		}
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: must be positive", v)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}
