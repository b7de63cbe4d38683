package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sitepipe",
	Short: "Static-site asset pipeline stages as standalone commands",
	Long: `Run static-site build stages one at a time: render templates,
bundle and purge stylesheets, transpile or minify scripts, and
reformat markup. Each stage reads and writes only the paths it is
given; ordering is up to the caller.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".sitepipe.yaml", "Config file path")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(stylesCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(minifyCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
