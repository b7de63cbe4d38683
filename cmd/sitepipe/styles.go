package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brandr/sitepipe"
	"github.com/brandr/sitepipe/internal/report"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "Bundle, purge, and vendor-prefix a stylesheet",
	Long: `Bundle an entry stylesheet into a single file (optionally with a
source map), remove rules unused by the content set, add vendor
prefixes for the configured targets, and rewrite the output files.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		result, err := sitepipe.BuildStyles(buildStyleOptions())
		if err != nil {
			return err
		}

		if getBoolWithFallback("quiet", "quiet", false) {
			return nil
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return report.WriteJSON(os.Stdout, result)
		}
		useColors := getBoolWithFallback("color", "color", false)
		report.PrintStyleResult(os.Stdout, result, useColors)
		return nil
	},
}

func init() {
	f := stylesCmd.Flags()
	f.String("input", "", "Entry stylesheet path")
	f.String("output", "", "Bundled output path")
	f.Bool("sourcemap", false, "Emit a source map next to the output")
	f.StringSlice("content", nil, "Glob patterns of content files for purging")
	f.StringSlice("purge", nil, "Stylesheets to purge (defaults to the output)")
	f.StringSlice("safelist", nil, "Selector names never purged")
	f.StringSlice("target", nil, "Browser/ES targets, e.g. chrome58, safari11")
	f.Bool("json", false, "Print the result as JSON")
}
