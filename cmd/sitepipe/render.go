package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brandr/sitepipe"
	"github.com/brandr/sitepipe/internal/report"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a template and write formatted markup",
	Long: `Render a template against its data context and globals, reformat the
resulting markup, and write it to the output path.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		opts := buildRenderOptions()
		if err := sitepipe.Render(opts); err != nil {
			return err
		}
		if !getBoolWithFallback("quiet", "quiet", false) {
			useColors := getBoolWithFallback("color", "color", false)
			report.PrintDone(os.Stdout, "rendered", opts.Output, useColors)
		}
		return nil
	},
}

func init() {
	f := renderCmd.Flags()
	f.String("input", "", "Template path, relative to a search path")
	f.String("output", "", "Output markup path")
	f.StringSlice("search-path", nil, "Template search directories")
	f.StringSlice("global", nil, "Global variables as key=value pairs")
	f.StringSlice("data", nil, "Context data as key=value pairs")
}
