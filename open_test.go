package sitepipe

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInApp_MissingOptions(t *testing.T) {
	tests := []struct {
		name   string
		app    string
		path   string
		option string
	}{
		{
			name:   "missing app",
			path:   "index.html",
			option: "App",
		},
		{
			name:   "missing path",
			app:    "firefox",
			option: "Path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := OpenInApp(tt.app, tt.path)
			var missingErr *MissingOptionError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, "OpenInApp", missingErr.Fn)
			assert.Equal(t, tt.option, missingErr.Option)
		})
	}
}

func TestOpenInApp_LaunchFailureReturned(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("launch goes through a shell helper that defers resolution")
	}
	err := OpenInApp("sitepipe-no-such-viewer", "index.html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sitepipe-no-such-viewer")
}

func TestOpenInApp_LaunchesAndReturnsImmediately(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("relies on a well-known linux binary")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))

	require.NoError(t, OpenInApp("true", path))
}
