// Package config loads the consolidation settings from environment
// variables, honoring a .env file when one is present.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Paths   PathsConfig
	Run     RunConfig
	Logging LoggingConfig
}

// PathsConfig locates the intake, processed and output trees.
type PathsConfig struct {
	Root      string
	Pending   string
	Processed string
	Output    string
}

// RunConfig tunes a consolidation run.
type RunConfig struct {
	PreviewRows int
	Schedule    string
}

type LoggingConfig struct {
	Level string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	root := getEnv("CONSOL_ROOT", ".")
	cfg := &Config{
		Paths: PathsConfig{
			Root:      root,
			Pending:   getEnv("CONSOL_PENDING_DIR", filepath.Join(root, "PENDIENTES")),
			Processed: getEnv("CONSOL_PROCESSED_DIR", filepath.Join(root, "PROCESADO")),
			Output:    getEnv("CONSOL_OUTPUT_DIR", filepath.Join(root, "CONSOLIDADO")),
		},
		Run: RunConfig{
			PreviewRows: getEnvAsInt("CONSOL_PREVIEW_ROWS", 40),
			Schedule:    getEnv("CONSOL_SCHEDULE", ""),
		},
		Logging: LoggingConfig{
			Level: getEnv("CONSOL_LOG_LEVEL", "info"),
		},
	}

	if cfg.Run.PreviewRows <= 0 {
		return nil, errors.New("CONSOL_PREVIEW_ROWS must be positive")
	}

	return cfg, nil
}

// SlogLevel maps the configured level onto slog's scale. Unknown values fall
// back to info.
func (c LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
