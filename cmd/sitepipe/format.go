package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brandr/sitepipe"
	"github.com/brandr/sitepipe/internal/report"
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Reformat an HTML file for readability",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		opts := sitepipe.FormatOptions{
			Input:  getStringWithFallback("input", "format.input", ""),
			Output: getStringWithFallback("output", "format.output", ""),
		}
		if err := sitepipe.FormatMarkup(opts); err != nil {
			return err
		}
		if !getBoolWithFallback("quiet", "quiet", false) {
			useColors := getBoolWithFallback("color", "color", false)
			report.PrintDone(os.Stdout, "formatted", opts.Output, useColors)
		}
		return nil
	},
}

func init() {
	f := formatCmd.Flags()
	f.String("input", "", "Markup input path")
	f.String("output", "", "Markup output path")
}
