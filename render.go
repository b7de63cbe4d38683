package sitepipe

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/flosch/pongo2/v6"
	"github.com/yosssi/gohtml"
)

// RenderOptions configures a single template render.
type RenderOptions struct {
	// Input is the template path, resolved against SearchPaths.
	Input string
	// Output is the file the formatted markup is written to.
	Output string
	// SearchPaths are the directories templates are loaded from. At
	// least one is required; extends/include references resolve against
	// them in order.
	SearchPaths []string
	// Globals are registered on the template set before rendering. A
	// name assigned twice takes the later value.
	Globals map[string]any
	// Context is the per-render data passed to the template.
	Context map[string]any

	Logger *slog.Logger
}

// Render renders a template against its context and globals, reformats
// the resulting markup, and writes it to Output. Each call builds its
// own template set, so globals never leak between renders.
func Render(opts RenderOptions) error {
	switch {
	case opts.Input == "":
		return missing("Render", "Input")
	case opts.Output == "":
		return missing("Render", "Output")
	case len(opts.SearchPaths) == 0:
		return missing("Render", "SearchPaths")
	}

	loaders := make([]pongo2.TemplateLoader, 0, len(opts.SearchPaths))
	for _, dir := range opts.SearchPaths {
		loader, err := pongo2.NewLocalFileSystemLoader(dir)
		if err != nil {
			return fmt.Errorf("search path %s: %w", dir, err)
		}
		loaders = append(loaders, loader)
	}

	set := pongo2.NewSet("sitepipe", loaders...)
	for name, value := range opts.Globals {
		set.Globals[name] = value
	}

	tpl, err := set.FromFile(opts.Input)
	if err != nil {
		return fmt.Errorf("loading template %s: %w", opts.Input, err)
	}

	markup, err := tpl.Execute(pongo2.Context(opts.Context))
	if err != nil {
		return fmt.Errorf("rendering %s: %w", opts.Input, err)
	}

	if err := os.WriteFile(opts.Output, []byte(gohtml.Format(markup)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.Output, err)
	}

	logger(opts.Logger).Debug("rendered template", "input", opts.Input, "output", opts.Output)
	return nil
}
