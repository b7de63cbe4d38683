// Package sitepipe provides the build stages of a static-site asset
// pipeline: template rendering, stylesheet bundling with unused-rule
// purging and vendor prefixing, script transpilation, script
// minification, and markup formatting.
//
// Each stage is an independent function that validates its options,
// performs one pass through the wrapped tool, and writes the result to
// disk. Stages share no state; an external orchestrator (a Makefile, a
// task runner, the bundled CLI) decides ordering.
//
// # Rendering
//
//	err := sitepipe.Render(sitepipe.RenderOptions{
//		Input:       "home.njk",
//		Output:      "dist/index.html",
//		SearchPaths: []string{"site/templates"},
//		Globals:     map[string]any{"siteName": "Acme"},
//	})
//
// # Styles
//
//	result, err := sitepipe.BuildStyles(sitepipe.StyleOptions{
//		Input:   "site/styles/main.css",
//		Output:  "dist/main.css",
//		Content: []string{"dist/**/*.html"},
//		Targets: []string{"chrome58", "firefox57", "safari11"},
//	})
//
// # CLI Tool
//
// A CLI exposing every stage as a subcommand ships with the module:
//
//	go install github.com/brandr/sitepipe/cmd/sitepipe@latest
package sitepipe

import "log/slog"

// logger returns l, or the process-wide default when no logger was
// supplied in the options.
func logger(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}
