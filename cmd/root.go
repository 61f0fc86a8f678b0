// Package cmd wires the lakeview subcommands: serve the catalog browser,
// export a static site, generate ROAPI config, or browse in the terminal.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"lakeview/internal/config"
)

var (
	flagData     string
	flagListen   string
	flagTitle    string
	flagOut      string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "lakeview",
	Short: "Browse and publish data catalog metadata exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "catalog export path (default $LAKEVIEW_DATA or data.json)")
	rootCmd.PersistentFlags().StringVar(&flagTitle, "title", "", "site title (default $SITE_TITLE or \"Data Catalog\")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}

// loadConfig reads the environment and applies flag overrides on top.
func loadConfig() (*config.Config, error) {
	cfg := config.LoadFromEnv()
	if flagData != "" {
		cfg.DataPath = flagData
	}
	if flagListen != "" {
		cfg.ListenAddr = flagListen
	}
	if flagTitle != "" {
		cfg.SiteTitle = flagTitle
	}
	if flagOut != "" {
		cfg.OutputDir = flagOut
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the process logger: JSON in production, text otherwise.
// Config warnings are logged here so they are never silently dropped.
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}
	return logger
}
