package sitepipe

import (
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargets(t *testing.T) {
	tests := []struct {
		name    string
		targets []string
		engines []api.Engine
		target  api.Target
		wantErr bool
	}{
		{
			name:   "empty list keeps defaults",
			target: api.DefaultTarget,
		},
		{
			name:    "single browser",
			targets: []string{"chrome58"},
			engines: []api.Engine{{Name: api.EngineChrome, Version: "58"}},
			target:  api.DefaultTarget,
		},
		{
			name:    "dotted version",
			targets: []string{"safari11.1"},
			engines: []api.Engine{{Name: api.EngineSafari, Version: "11.1"}},
			target:  api.DefaultTarget,
		},
		{
			name:    "language target",
			targets: []string{"es2017"},
			target:  api.ES2017,
		},
		{
			name:    "es6 alias",
			targets: []string{"es6"},
			target:  api.ES2015,
		},
		{
			name:    "browsers and language target mix",
			targets: []string{"firefox52", "es2015", "edge16"},
			engines: []api.Engine{
				{Name: api.EngineFirefox, Version: "52"},
				{Name: api.EngineEdge, Version: "16"},
			},
			target: api.ES2015,
		},
		{
			name:    "case and whitespace are forgiven",
			targets: []string{" Chrome58 "},
			engines: []api.Engine{{Name: api.EngineChrome, Version: "58"}},
			target:  api.DefaultTarget,
		},
		{
			name:    "blank entries are skipped",
			targets: []string{"", "node12"},
			engines: []api.Engine{{Name: api.EngineNode, Version: "12"}},
			target:  api.DefaultTarget,
		},
		{
			name:    "unknown engine",
			targets: []string{"netscape4"},
			wantErr: true,
		},
		{
			name:    "version without engine",
			targets: []string{"58"},
			wantErr: true,
		},
		{
			name:    "engine without version",
			targets: []string{"chrome"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engines, target, err := parseTargets(tt.targets)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.engines, engines)
			assert.Equal(t, tt.target, target)
		})
	}
}
