package sitepipe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspile_MissingOptions(t *testing.T) {
	tests := []struct {
		name   string
		opts   TranspileOptions
		option string
	}{
		{
			name:   "missing input",
			opts:   TranspileOptions{Output: "out.js"},
			option: "Input",
		},
		{
			name:   "missing output",
			opts:   TranspileOptions{Input: "main.js"},
			option: "Output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Transpile(tt.opts)
			var missingErr *MissingOptionError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, "Transpile", missingErr.Fn)
			assert.Equal(t, tt.option, missingErr.Option)
		})
	}
}

func TestTranspile_LowersArrowFunctions(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "main.js")
	require.NoError(t, os.WriteFile(input,
		[]byte("var double = (x) => x * 2;\nconsole.log(double(21));\n"), 0644))

	output := filepath.Join(dir, "out.js")
	err := Transpile(TranspileOptions{
		Input:         input,
		Output:        output,
		DisableMinify: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	code := string(data)
	assert.NotContains(t, code, "=>", "arrows must be lowered at the es5 baseline")
	assert.Contains(t, code, "function")
	// without minify the output stays readable
	assert.Contains(t, code, "\n")
}

func TestTranspile_MinifyRemovesWhitespace(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "main.js")
	require.NoError(t, os.WriteFile(input,
		[]byte("var double = (x) => x * 2;\n\nconsole.log( double( 21 ) );\n"), 0644))

	output := filepath.Join(dir, "out.js")
	err := Transpile(TranspileOptions{Input: input, Output: output})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	code := strings.TrimSuffix(string(data), "\n")
	assert.NotContains(t, code, "=>")
	assert.NotContains(t, code, "  ", "minified output has no redundant whitespace")
	assert.NotContains(t, code, "\n")
}

func TestTranspile_ExplicitTargetKeepsModernSyntax(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "main.js")
	require.NoError(t, os.WriteFile(input,
		[]byte("var double = (x) => x * 2;\n"), 0644))

	output := filepath.Join(dir, "out.js")
	err := Transpile(TranspileOptions{
		Input:         input,
		Output:        output,
		Target:        "es2017",
		DisableMinify: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "=>", "es2017 keeps arrow functions")
}

func TestTranspile_SyntaxErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.js")
	require.NoError(t, os.WriteFile(input, []byte("var = ;"), 0644))

	output := filepath.Join(dir, "out.js")
	err := Transpile(TranspileOptions{Input: input, Output: output})
	require.Error(t, err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "transform failure must not write the output")
}

func TestTranspile_ReadErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	err := Transpile(TranspileOptions{
		Input:  filepath.Join(dir, "missing.js"),
		Output: filepath.Join(dir, "out.js"),
	})
	require.Error(t, err)
}
