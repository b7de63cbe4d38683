package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brandr/sitepipe"
	"github.com/brandr/sitepipe/internal/report"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Transpile a script for older runtimes",
	Long: `Lower a script to the target runtime baseline and minify it (unless
--no-minify), writing the result to the output path. Source maps are
not propagated through this stage.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		opts := buildTranspileOptions()
		if err := sitepipe.Transpile(opts); err != nil {
			return err
		}
		if !getBoolWithFallback("quiet", "quiet", false) {
			useColors := getBoolWithFallback("color", "color", false)
			report.PrintDone(os.Stdout, "transpiled", opts.Output, useColors)
		}
		return nil
	},
}

func init() {
	f := scriptCmd.Flags()
	f.String("input", "", "Script input path")
	f.String("output", "", "Script output path")
	f.String("target", "", "Runtime baseline (default es5)")
	f.Bool("no-minify", false, "Skip minification")
}
