package main

import (
	"github.com/spf13/cobra"

	"github.com/brandr/sitepipe"
)

var openCmd = &cobra.Command{
	Use:   "open <app> <file>",
	Short: "Open a file in a named desktop application",
	Long: `Issue a single platform open command for the file in the given
application. Fails only if the command cannot be launched, not if the
application itself errors afterwards.`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return sitepipe.OpenInApp(args[0], args[1])
	},
}
