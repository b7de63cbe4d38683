package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brandr/sitepipe"
	"github.com/brandr/sitepipe/internal/report"
)

var minifyCmd = &cobra.Command{
	Use:   "minify",
	Short: "Minify a script in place (no transpilation)",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		opts := sitepipe.MinifyOptions{
			Input:  getStringWithFallback("input", "minify.input", ""),
			Output: getStringWithFallback("output", "minify.output", ""),
		}
		if err := sitepipe.MinifyScript(opts); err != nil {
			return err
		}
		if !getBoolWithFallback("quiet", "quiet", false) {
			useColors := getBoolWithFallback("color", "color", false)
			report.PrintDone(os.Stdout, "minified", opts.Output, useColors)
		}
		return nil
	},
}

func init() {
	f := minifyCmd.Flags()
	f.String("input", "", "Script input path")
	f.String("output", "", "Script output path")
}
