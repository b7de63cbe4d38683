package sitepipe

import (
	"fmt"
	"os"

	"github.com/evanw/esbuild/pkg/api"
)

// TranspileOptions configures a script transform.
type TranspileOptions struct {
	Input  string
	Output string
	// Target is the runtime baseline the script is lowered to. Defaults
	// to "es5", which rewrites arrow functions, template literals and
	// other post-baseline syntax.
	Target string
	// DisableMinify skips the size-minimizing pass; minification is on
	// by default.
	DisableMinify bool
}

// Transpile lowers a script to the target baseline, optionally minifies
// it, and writes the result to Output. Source maps are not propagated
// through this stage.
func Transpile(opts TranspileOptions) error {
	switch {
	case opts.Input == "":
		return missing("Transpile", "Input")
	case opts.Output == "":
		return missing("Transpile", "Output")
	}

	spec := opts.Target
	if spec == "" {
		spec = "es5"
	}
	engines, target, err := parseTargets([]string{spec})
	if err != nil {
		return err
	}

	src, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.Input, err)
	}

	result := api.Transform(string(src), api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            target,
		Engines:           engines,
		MinifyWhitespace:  !opts.DisableMinify,
		MinifySyntax:      !opts.DisableMinify,
		MinifyIdentifiers: !opts.DisableMinify,
		Sourcefile:        opts.Input,
	})
	if len(result.Errors) > 0 {
		return fmt.Errorf("transforming %s: %s", opts.Input, messageText(result.Errors))
	}

	if err := os.WriteFile(opts.Output, result.Code, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.Output, err)
	}
	return nil
}
