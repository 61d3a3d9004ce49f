package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mycoleb/WashingtonMinimumWages/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "wamap",
	Short: "Washington county minimum wage choropleth generator",
	Long: `Fetches US county boundary geometry, filters it to Washington state,
joins the published minimum wage figures, and renders an interactive
choropleth map to a standalone HTML file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
