package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .sitepipe.yaml config file",
	Long:  `Create a .sitepipe.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".sitepipe.yaml"); err == nil && !force {
			return fmt.Errorf(".sitepipe.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".sitepipe.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .sitepipe.yaml")
		return nil
	},
}

const defaultConfig = `# sitepipe configuration

# Shared settings
verbose: false

render:
  input: home.njk
  output: dist/index.html
  search-paths:
    - site/templates
  globals: {}

styles:
  input: site/styles/main.css
  output: dist/main.css
  sourcemap: false
  content:
    - "dist/**/*.html"
    - "dist/**/*.js"
  safelist: []
  targets:
    - chrome58
    - firefox57
    - safari11
    - edge16

script:
  input: site/scripts/main.js
  output: dist/main.js
  target: es5
  no-minify: false

minify:
  input: dist/main.js
  output: dist/main.js

format:
  input: dist/index.html
  output: dist/index.html
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
