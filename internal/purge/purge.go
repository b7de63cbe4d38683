package purge

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Options configures a purge pass across one or more stylesheets.
type Options struct {
	// Content globs name the files whose tokens count as "used".
	Content []string
	// CSSFiles are the stylesheets to purge.
	CSSFiles []string
	// Safelist names selectors that always survive.
	Safelist []string
}

// Result holds the purged text for one stylesheet. The file itself is
// not rewritten here; the caller owns the write.
type Result struct {
	File         string
	CSS          string
	RulesRemoved int
}

// alwaysKeep lists element selectors that survive regardless of content.
var alwaysKeep = map[string]bool{"html": true, "body": true}

// Purge scans the content set once, then filters each stylesheet down
// to the rules the content references. Source maps are not regenerated;
// a purged file's map still describes its pre-purge form.
func Purge(opts Options) ([]Result, error) {
	used, err := ScanContent(opts.Content)
	if err != nil {
		return nil, err
	}

	safe := make(map[string]bool, len(opts.Safelist))
	for _, name := range opts.Safelist {
		safe[name] = true
	}

	results := make([]Result, 0, len(opts.CSSFiles))
	for _, file := range opts.CSSFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		out, removed, err := purgeCSS(data, used, safe)
		if err != nil {
			return nil, fmt.Errorf("purging %s: %w", file, err)
		}
		results = append(results, Result{File: file, CSS: out, RulesRemoved: removed})
	}

	return results, nil
}

// block buffers the body of an at-rule (or the top level) so that
// at-rules emptied by purging can be dropped wholesale.
type block struct {
	header string
	raw    bool // keep every rule, e.g. inside @keyframes
	buf    bytes.Buffer
}

func purgeCSS(data []byte, used, safe map[string]bool) (string, int, error) {
	p := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)

	stack := []*block{{}}
	top := func() *block { return stack[len(stack)-1] }

	removed := 0
	var selectors []string
	skipRuleset := false

	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return "", 0, err
			}
			return stack[0].buf.String(), removed, nil

		case css.CommentGrammar:
			// comments are not carried into purged output

		case css.AtRuleGrammar:
			top().buf.WriteString(string(data) + tokensText(p.Values()) + ";")

		case css.BeginAtRuleGrammar:
			stack = append(stack, &block{
				header: string(data) + tokensText(p.Values()),
				raw:    top().raw || isRawAtRule(string(data)),
			})

		case css.EndAtRuleGrammar:
			done := top()
			stack = stack[:len(stack)-1]
			if done.buf.Len() > 0 {
				top().buf.WriteString(done.header + "{" + done.buf.String() + "}")
			}

		case css.QualifiedRuleGrammar:
			selectors = append(selectors, tokensText(p.Values()))

		case css.BeginRulesetGrammar:
			selectors = append(selectors, tokensText(p.Values()))
			var kept []string
			for _, sel := range selectors {
				if top().raw || selectorUsed(sel, used, safe) {
					kept = append(kept, strings.TrimSpace(sel))
				}
			}
			if len(kept) == 0 {
				skipRuleset = true
				removed++
			} else {
				top().buf.WriteString(strings.Join(kept, ",") + "{")
			}
			selectors = nil

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if !skipRuleset {
				top().buf.WriteString(string(data) + ":" + strings.TrimSpace(tokensText(p.Values())) + ";")
			}

		case css.EndRulesetGrammar:
			if skipRuleset {
				skipRuleset = false
			} else {
				top().buf.WriteString("}")
			}
		}
	}
}

func tokensText(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return b.String()
}

// isRawAtRule reports whether the block's contents are kept untouched.
// Keyframe selectors (from, to, percentages) and font-face descriptors
// are not element selectors, so matching them against content would
// remove rules that are still needed.
func isRawAtRule(name string) bool {
	name = strings.TrimPrefix(strings.ToLower(name), "@")
	if strings.Contains(name, "keyframes") {
		return true
	}
	switch name {
	case "font-face", "page", "counter-style", "property", "viewport", "font-feature-values":
		return true
	}
	return false
}

// requirement is one name a selector needs the content set to mention.
type requirement struct {
	name    string
	element bool
}

// selectorUsed reports whether a single selector survives. Every class,
// id, and element name it requires must appear in the content set (or
// the safelist). Attribute selectors and pseudo-classes are ignored,
// erring on the side of keeping rules.
func selectorUsed(sel string, used, safe map[string]bool) bool {
	for _, req := range selectorRequirements(sel) {
		if safe[req.name] {
			continue
		}
		if req.element && alwaysKeep[req.name] {
			continue
		}
		if !used[req.name] {
			return false
		}
	}
	return true
}

func selectorRequirements(sel string) []requirement {
	var reqs []requirement
	runes := []rune(sel)
	depth := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '(' || r == '[':
			depth++
		case r == ')' || r == ']':
			if depth > 0 {
				depth--
			}
		case depth > 0:
			// contents of attribute selectors and functional pseudos
			// are not requirements
		case r == '.' || r == '#':
			name, next := readIdent(runes, i+1)
			if name != "" {
				reqs = append(reqs, requirement{name: name})
			}
			i = next - 1
		case r == ':':
			for i+1 < len(runes) && runes[i+1] == ':' {
				i++
			}
			_, next := readIdent(runes, i+1)
			i = next - 1
		case isIdentStart(r):
			name, next := readIdent(runes, i)
			reqs = append(reqs, requirement{name: strings.ToLower(name), element: true})
			i = next - 1
		}
	}

	return reqs
}

func readIdent(runes []rune, start int) (string, int) {
	i := start
	for i < len(runes) && isIdentRune(runes[i]) {
		i++
	}
	return string(runes[start:i]), i
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '-' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentRune(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9') || r == '\\'
}
