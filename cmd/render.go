package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mycoleb/WashingtonMinimumWages/internal/pipeline"
)

var (
	renderOutput    string
	renderShapefile string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Generate the minimum wage map HTML file",
	Long: `Downloads the national county boundary document, filters it to
Washington state, joins the wage dataset, and writes the interactive
map. With --shapefile the boundaries are read from a local Census
county shapefile instead of the network.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		opts := []pipeline.Option{pipeline.WithOutput(renderOutput)}
		if renderShapefile != "" {
			opts = append(opts, pipeline.WithShapefile(renderShapefile))
		}

		path, err := pipeline.New(cfg, opts...).Run(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Interactive map has been saved as '%s'\n", path)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderOutput, "output", "", "output file path (default from config)")
	renderCmd.Flags().StringVar(&renderShapefile, "shapefile", "", "load boundaries from a local county shapefile")
	rootCmd.AddCommand(renderCmd)
}
