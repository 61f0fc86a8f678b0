package cmd

import (
	"net/http"

	"github.com/spf13/cobra"

	"lakeview/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog browser and JSON API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	a, err := app.New(app.Deps{Cfg: cfg, Logger: logger})
	if err != nil {
		return err
	}

	logger.Info("listening", "addr", cfg.ListenAddr, "data", cfg.DataPath)
	return http.ListenAndServe(cfg.ListenAddr, a.Router)
}

func init() {
	serveCmd.Flags().StringVar(&flagListen, "listen", "", "listen address (default $LISTEN_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}
