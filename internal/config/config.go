// Package config handles application configuration and environment loading.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Config holds the configuration for the lakeview server and exporter.
type Config struct {
	DataPath   string // path to the catalog metadata export (data.json)
	ListenAddr string // HTTP listen address (default ":8080")
	SiteTitle  string // display title for the browsing UI
	OutputDir  string // static-site export destination (default "./dist")
	LogLevel   string // log level: debug, info, warn, error (default "info")
	Env        string // environment: "development" (default) or "production"

	// CORS
	CORSAllowedOrigins []string // allowed origins for the JSON API (default: ["*"])

	// Warnings collects non-fatal warnings generated during config loading.
	// These are logged by the caller after the logger is initialised.
	Warnings []string
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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

// IsProduction returns true when the server is running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// LoadFromEnv loads configuration from environment variables. Defaults are
// applied here; command-line flags may override fields afterwards.
func LoadFromEnv() *Config {
	cfg := &Config{
		DataPath:   os.Getenv("LAKEVIEW_DATA"),
		ListenAddr: os.Getenv("LISTEN_ADDR"),
		SiteTitle:  os.Getenv("SITE_TITLE"),
		OutputDir:  os.Getenv("OUTPUT_DIR"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		Env:        os.Getenv("ENV"),
	}

	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
			}
		}
	}

	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.DataPath == "" {
		c.DataPath = "data.json"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.SiteTitle == "" {
		c.SiteTitle = "Data Catalog"
	}
	if c.OutputDir == "" {
		c.OutputDir = "./dist"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if len(c.CORSAllowedOrigins) == 0 {
		c.CORSAllowedOrigins = []string{"*"}
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		c.Warnings = append(c.Warnings, fmt.Sprintf("unknown LOG_LEVEL %q, falling back to info", c.LogLevel))
		c.LogLevel = "info"
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("LAKEVIEW_DATA (catalog export path) must be set")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("LISTEN_ADDR must be set")
	}
	return nil
}
