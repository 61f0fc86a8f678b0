package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lakeview/internal/catalog"
	"lakeview/internal/export"
)

var flagROAPIOut string

var roapiCmd = &cobra.Command{
	Use:   "roapi",
	Short: "Generate a ROAPI tables configuration from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := catalog.Load(cfg.DataPath)
		if err != nil {
			return fmt.Errorf("load catalog %s: %w", cfg.DataPath, err)
		}

		out := os.Stdout
		if flagROAPIOut != "" {
			f, err := os.Create(flagROAPIOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", flagROAPIOut, err)
			}
			defer f.Close()
			out = f
		}

		return export.WriteROAPIConfig(out, store.Snapshot())
	},
}

func init() {
	roapiCmd.Flags().StringVar(&flagROAPIOut, "out", "", "write YAML to this file instead of stdout")
	rootCmd.AddCommand(roapiCmd)
}
