package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lakeview/internal/catalog"
	"lakeview/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the catalog to a static site",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		store, err := catalog.Load(cfg.DataPath)
		if err != nil {
			return fmt.Errorf("load catalog %s: %w", cfg.DataPath, err)
		}

		site := export.NewSite(store, cfg.SiteTitle, logger)
		if err := site.Generate(cfg.OutputDir); err != nil {
			return err
		}

		fmt.Printf("Site written to %s\n", cfg.OutputDir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagOut, "out", "", "output directory (default $OUTPUT_DIR or ./dist)")
	rootCmd.AddCommand(exportCmd)
}
