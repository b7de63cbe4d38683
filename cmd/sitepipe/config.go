package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/brandr/sitepipe"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".sitepipe.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// SITEPIPE_STYLES_OUTPUT -> styles.output
	// SITEPIPE_QUIET -> quiet
	if err := k.Load(env.Provider("SITEPIPE_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "SITEPIPE_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildRenderOptions constructs the library's RenderOptions from koanf state.
func buildRenderOptions() sitepipe.RenderOptions {
	return sitepipe.RenderOptions{
		Input:       getStringWithFallback("input", "render.input", ""),
		Output:      getStringWithFallback("output", "render.output", ""),
		SearchPaths: getStringsWithFallback("search-path", "render.search-paths", nil),
		Globals:     getMapWithFallback("global", "render.globals"),
		Context:     getMapWithFallback("data", "render.data"),
	}
}

// buildStyleOptions constructs the library's StyleOptions from koanf state.
func buildStyleOptions() sitepipe.StyleOptions {
	return sitepipe.StyleOptions{
		Input:      getStringWithFallback("input", "styles.input", ""),
		Output:     getStringWithFallback("output", "styles.output", ""),
		SourceMap:  getBoolWithFallback("sourcemap", "styles.sourcemap", false),
		Content:    getStringsWithFallback("content", "styles.content", nil),
		PurgeFiles: getStringsWithFallback("purge", "styles.purge", nil),
		Safelist:   getStringsWithFallback("safelist", "styles.safelist", nil),
		Targets:    getStringsWithFallback("target", "styles.targets", nil),
	}
}

// buildTranspileOptions constructs the library's TranspileOptions from koanf state.
func buildTranspileOptions() sitepipe.TranspileOptions {
	return sitepipe.TranspileOptions{
		Input:         getStringWithFallback("input", "script.input", ""),
		Output:        getStringWithFallback("output", "script.output", ""),
		Target:        getStringWithFallback("target", "script.target", ""),
		DisableMinify: getBoolWithFallback("no-minify", "script.no-minify", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getMapWithFallback merges a config-file mapping with key=value pairs
// given on the command line; flag entries win.
func getMapWithFallback(flagKey, configKey string) map[string]any {
	result := map[string]any{}
	for key, value := range k.StringMap(configKey) {
		result[key] = value
	}
	for _, pair := range k.Strings(flagKey) {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		result[strings.TrimSpace(name)] = value
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
