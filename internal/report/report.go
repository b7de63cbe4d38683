// Package report formats pipeline results for the terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/brandr/sitepipe"
)

// Terminal styles for consistent output formatting. Lipgloss
// automatically degrades colors based on terminal capabilities.
var (
	// StyleSuccess marks completed stage output.
	StyleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleWarning marks non-fatal collaborator warnings.
	StyleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleError marks failures.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StylePath marks file paths.
	StylePath = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// PrintStyleResult writes a human-readable summary of a style pipeline run.
func PrintStyleResult(w io.Writer, result *sitepipe.StyleResult, useColors bool) {
	for _, f := range result.Files {
		fmt.Fprintf(w, "%s %s (%d rules removed, %d bytes)\n",
			RenderStyle(StyleSuccess, "✓", useColors),
			RenderStyle(StylePath, f.Path, useColors),
			f.RulesRemoved, f.Bytes)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "%s %s\n",
			RenderStyle(StyleWarning, "warning:", useColors), warning)
	}
}

// PrintDone writes a one-line completion message for single-file stages.
func PrintDone(w io.Writer, verb, path string, useColors bool) {
	fmt.Fprintf(w, "%s %s %s\n",
		RenderStyle(StyleSuccess, "✓", useColors), verb,
		RenderStyle(StylePath, path, useColors))
}

// WriteJSON exports a style result in machine-readable form.
func WriteJSON(w io.Writer, result *sitepipe.StyleResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
