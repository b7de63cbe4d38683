// Package purge removes stylesheet rules that no file in a content set
// references.
package purge

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// tokenPattern matches anything in content that could name a class, an
// id, or an element. Every match becomes a candidate selector name.
var tokenPattern = regexp.MustCompile(`[A-Za-z][A-Za-z0-9_-]*`)

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a content file is excluded from
// scanning. Gitignore rules apply only to relative paths; absolute
// paths (like fixtures under /tmp) are never filtered by the project's
// .gitignore.
func shouldSkipFile(path string) bool {
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// ScanContent expands the glob patterns and collects every candidate
// selector name the matched files mention. Lowercased forms are added
// too, so element selectors match case-insensitively.
func ScanContent(patterns []string) (map[string]bool, error) {
	files, err := expandGlobPatterns(patterns)
	if err != nil {
		return nil, err
	}

	used := make(map[string]bool)
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		for _, token := range tokenPattern.FindAllString(string(content), -1) {
			used[token] = true
			used[strings.ToLower(token)] = true
		}
	}

	return used, nil
}

// expandGlobPatterns expands glob patterns to actual file paths,
// deduplicated, files only.
func expandGlobPatterns(patterns []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if !shouldSkipFile(match) {
				allFiles = append(allFiles, match)
				seen[match] = true
			}
		}
	}

	return allFiles, nil
}
