package sitepipe

import (
	"fmt"
	"os"

	"github.com/yosssi/gohtml"
)

// FormatOptions configures a markup reformatting pass.
type FormatOptions struct {
	Input  string
	Output string
}

// FormatMarkup reformats an HTML file for readability and writes it to
// Output. Formatting already-formatted input changes nothing.
func FormatMarkup(opts FormatOptions) error {
	switch {
	case opts.Input == "":
		return missing("FormatMarkup", "Input")
	case opts.Output == "":
		return missing("FormatMarkup", "Output")
	}

	src, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.Input, err)
	}

	if err := os.WriteFile(opts.Output, []byte(gohtml.Format(string(src))), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.Output, err)
	}
	return nil
}
