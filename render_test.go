package sitepipe

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_MissingOptions(t *testing.T) {
	tests := []struct {
		name   string
		opts   RenderOptions
		option string
	}{
		{
			name:   "missing input",
			opts:   RenderOptions{Output: "out.html", SearchPaths: []string{"."}},
			option: "Input",
		},
		{
			name:   "missing output",
			opts:   RenderOptions{Input: "home.njk", SearchPaths: []string{"."}},
			option: "Output",
		},
		{
			name:   "missing search paths",
			opts:   RenderOptions{Input: "home.njk", Output: "out.html"},
			option: "SearchPaths",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Render(tt.opts)
			var missingErr *MissingOptionError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, "Render", missingErr.Fn)
			assert.Equal(t, tt.option, missingErr.Option)
		})
	}
}

func TestRender_MissingOptions_NoWrite(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.html")

	err := Render(RenderOptions{Input: "home.njk", Output: output})
	require.Error(t, err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "validation failure must not write the output")
}

func TestRender_GlobalVisibleInTemplate(t *testing.T) {
	dir := t.TempDir()
	templates := filepath.Join(dir, "templates")
	require.NoError(t, os.Mkdir(templates, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(templates, "home.njk"),
		[]byte("<html><body><h1>{{ siteName }}</h1></body></html>"),
		0644,
	))

	output := filepath.Join(dir, "index.html")
	err := Render(RenderOptions{
		Input:       "home.njk",
		Output:      output,
		SearchPaths: []string{templates},
		Globals:     map[string]any{"siteName": "Acme"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme")
	// gohtml puts nested elements on their own indented lines
	assert.Contains(t, string(data), "\n")
}

func TestRender_ContextOverridesGlobal(t *testing.T) {
	dir := t.TempDir()
	templates := filepath.Join(dir, "templates")
	require.NoError(t, os.Mkdir(templates, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(templates, "page.njk"),
		[]byte("<p>{{ siteName }}</p>"),
		0644,
	))

	output := filepath.Join(dir, "page.html")
	err := Render(RenderOptions{
		Input:       "page.njk",
		Output:      output,
		SearchPaths: []string{templates},
		Globals:     map[string]any{"siteName": "Old"},
		Context:     map[string]any{"siteName": "New"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "New")
	assert.NotContains(t, string(data), "Old")
}

func TestRender_GlobalsDoNotLeakBetweenCalls(t *testing.T) {
	dir := t.TempDir()
	templates := filepath.Join(dir, "templates")
	require.NoError(t, os.Mkdir(templates, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(templates, "page.njk"),
		[]byte("<p>{{ siteName }}</p>"),
		0644,
	))

	first := filepath.Join(dir, "first.html")
	require.NoError(t, Render(RenderOptions{
		Input:       "page.njk",
		Output:      first,
		SearchPaths: []string{templates},
		Globals:     map[string]any{"siteName": "Acme"},
	}))

	// Second render without the global: the name must be gone.
	second := filepath.Join(dir, "second.html")
	require.NoError(t, Render(RenderOptions{
		Input:       "page.njk",
		Output:      second,
		SearchPaths: []string{templates},
	}))

	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Acme")
}

func TestRender_TemplateErrorNoWrite(t *testing.T) {
	dir := t.TempDir()
	templates := filepath.Join(dir, "templates")
	require.NoError(t, os.Mkdir(templates, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(templates, "broken.njk"),
		[]byte("{% if %}"),
		0644,
	))

	output := filepath.Join(dir, "broken.html")
	err := Render(RenderOptions{
		Input:       "broken.njk",
		Output:      output,
		SearchPaths: []string{templates},
	})
	require.Error(t, err)

	var missingErr *MissingOptionError
	assert.False(t, errors.As(err, &missingErr), "a render failure is not a contract violation")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "render failure must not write the output")
}
