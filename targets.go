package sitepipe

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

var engineNames = map[string]api.EngineName{
	"chrome":  api.EngineChrome,
	"deno":    api.EngineDeno,
	"edge":    api.EngineEdge,
	"firefox": api.EngineFirefox,
	"hermes":  api.EngineHermes,
	"ie":      api.EngineIE,
	"ios":     api.EngineIOS,
	"node":    api.EngineNode,
	"opera":   api.EngineOpera,
	"rhino":   api.EngineRhino,
	"safari":  api.EngineSafari,
}

var esTargets = map[string]api.Target{
	"es5":    api.ES5,
	"es6":    api.ES2015,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"es2023": api.ES2023,
	"esnext": api.ESNext,
}

// parseTargets converts target strings like "chrome58", "safari11.1" or
// "es2017" into the engine list and language target the transformer
// expects. An empty or nil list leaves both at their defaults.
func parseTargets(targets []string) ([]api.Engine, api.Target, error) {
	var engines []api.Engine
	target := api.DefaultTarget

	for _, t := range targets {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if es, ok := esTargets[t]; ok {
			target = es
			continue
		}
		i := strings.IndexFunc(t, func(r rune) bool { return r >= '0' && r <= '9' })
		if i <= 0 {
			return nil, target, fmt.Errorf("unrecognized target %q", t)
		}
		name, ok := engineNames[t[:i]]
		if !ok {
			return nil, target, fmt.Errorf("unrecognized target %q", t)
		}
		engines = append(engines, api.Engine{Name: name, Version: t[i:]})
	}

	return engines, target, nil
}

// messageText flattens transformer diagnostics into a single error string.
func messageText(msgs []api.Message) string {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, formatMessage(m))
	}
	return strings.Join(parts, "; ")
}

func formatMessage(m api.Message) string {
	if m.Location != nil {
		return fmt.Sprintf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, m.Text)
	}
	return m.Text
}
