package sitepipe

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/evanw/esbuild/pkg/api"
	"golang.org/x/sync/errgroup"

	"github.com/brandr/sitepipe/internal/purge"
)

// StyleOptions configures the stylesheet pipeline.
type StyleOptions struct {
	// Input is the entry stylesheet; @import references are flattened
	// into a single output file.
	Input string
	// Output is the bundled stylesheet path.
	Output string
	// SourceMap emits Output+".map" alongside the bundle, linked via a
	// sourceMappingURL comment. The map describes the bundled output;
	// the purge and prefix passes below do not regenerate it.
	SourceMap bool
	// Content is the set of glob patterns whose files decide which
	// rules are in use. An empty set purges nothing that matches no
	// content, i.e. everything with a named selector.
	Content []string
	// PurgeFiles are the stylesheets to purge. Defaults to {Output}.
	PurgeFiles []string
	// Safelist names selectors that are never purged.
	Safelist []string
	// Targets are browser/ES targets ("chrome58", "safari11", "es2017")
	// driving vendor prefixing.
	Targets []string

	Logger *slog.Logger
}

// StyleResult reports what the pipeline did to each stylesheet.
type StyleResult struct {
	Files    []FileResult `json:"Files"`
	Warnings []string     `json:"Warnings,omitempty"`
}

// FileResult describes one purged and prefixed stylesheet.
type FileResult struct {
	Path         string `json:"Path"`
	RulesRemoved int    `json:"RulesRemoved"`
	Bytes        int    `json:"Bytes"`
}

// BuildStyles bundles the entry stylesheet, writes it (and its source
// map, when requested), purges rules unused by the content set, then
// vendor-prefixes and rewrites each purged file. The per-file prefix
// writes run concurrently but are all joined before BuildStyles
// returns: completion means every output file is on disk.
func BuildStyles(opts StyleOptions) (*StyleResult, error) {
	switch {
	case opts.Input == "":
		return nil, missing("BuildStyles", "Input")
	case opts.Output == "":
		return nil, missing("BuildStyles", "Output")
	}

	engines, target, err := parseTargets(opts.Targets)
	if err != nil {
		return nil, err
	}

	sourcemap := api.SourceMapNone
	if opts.SourceMap {
		sourcemap = api.SourceMapLinked
	}

	bundle := api.Build(api.BuildOptions{
		EntryPoints: []string{opts.Input},
		Outfile:     opts.Output,
		Bundle:      true,
		Write:       false,
		Sourcemap:   sourcemap,
		LogLevel:    api.LogLevelSilent,
	})
	if len(bundle.Errors) > 0 {
		return nil, fmt.Errorf("bundling %s: %s", opts.Input, messageText(bundle.Errors))
	}

	if err := os.MkdirAll(filepath.Dir(opts.Output), 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// The bundle and its map land on disk together before purging reads
	// them back.
	var writes errgroup.Group
	for _, file := range bundle.OutputFiles {
		writes.Go(func() error {
			if err := os.WriteFile(file.Path, file.Contents, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", file.Path, err)
			}
			return nil
		})
	}
	if err := writes.Wait(); err != nil {
		return nil, err
	}

	purgeFiles := opts.PurgeFiles
	if len(purgeFiles) == 0 {
		purgeFiles = []string{opts.Output}
	}

	purged, err := purge.Purge(purge.Options{
		Content:  opts.Content,
		CSSFiles: purgeFiles,
		Safelist: opts.Safelist,
	})
	if err != nil {
		return nil, err
	}

	log := logger(opts.Logger)
	result := &StyleResult{Files: make([]FileResult, len(purged))}

	var mu sync.Mutex
	var prefixes errgroup.Group
	for i, pr := range purged {
		prefixes.Go(func() error {
			prefixed := api.Transform(pr.CSS, api.TransformOptions{
				Loader:  api.LoaderCSS,
				Target:  target,
				Engines: engines,
			})
			if len(prefixed.Errors) > 0 {
				return fmt.Errorf("prefixing %s: %s", pr.File, messageText(prefixed.Errors))
			}
			for _, w := range prefixed.Warnings {
				text := formatMessage(w)
				log.Warn("prefixer warning", "file", pr.File, "warning", text)
				mu.Lock()
				result.Warnings = append(result.Warnings, text)
				mu.Unlock()
			}
			if err := os.WriteFile(pr.File, prefixed.Code, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", pr.File, err)
			}
			result.Files[i] = FileResult{
				Path:         pr.File,
				RulesRemoved: pr.RulesRemoved,
				Bytes:        len(prefixed.Code),
			}
			return nil
		})
	}
	if err := prefixes.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
