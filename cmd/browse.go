package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lakeview/internal/catalog"
	"lakeview/internal/search"
	"lakeview/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := catalog.Load(cfg.DataPath)
		if err != nil {
			return fmt.Errorf("load catalog %s: %w", cfg.DataPath, err)
		}

		return tui.Run(tui.Config{
			Store:    store,
			Registry: search.BuildRegistry(store.Snapshot()),
			Title:    cfg.SiteTitle,
		})
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
