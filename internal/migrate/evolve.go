package migrate

import (
	"regexp"
	"strings"
)

// EvolveStrategy splits the legacy inline form
//
//	component Foo [0.9, 0.1] evolve 0.9 [inertia]
//
// into a component line and a separate `evolve Foo 0.9` line. Inertia stays
// on the component.
type EvolveStrategy struct{}

var legacyEvolve = regexp.MustCompile(`^(\s*)(component\s+.*?)\s+evolve\s+([+-]?(?:\d+(?:\.\d*)?|\.\d+))(\s+inertia)?\s*$`)

func (e *EvolveStrategy) Name() string { return "evolve" }

func (e *EvolveStrategy) Apply(text string) Result {
	return rewriteLines(text, func(line string) ([]string, bool) {
		m := legacyEvolve.FindStringSubmatch(line)
		if m == nil {
			return nil, false
		}
		indent, declaration, maturity, inertia := m[1], m[2], m[3], m[4]

		name := componentName(declaration)
		if name == "" {
			return nil, false
		}
		if inertia != "" && !hasInertia(declaration) {
			declaration += " inertia"
		}
		return []string{
			indent + declaration,
			indent + "evolve " + name + " " + maturity,
		}, true
	})
}

// componentName returns the name token of a `component` declaration as
// written, quotes included.
func componentName(declaration string) string {
	rest := strings.TrimSpace(strings.TrimPrefix(declaration, "component"))
	if strings.HasPrefix(rest, `"`) {
		for i := 1; i < len(rest); i++ {
			switch rest[i] {
			case '\\':
				i++
			case '"':
				return rest[:i+1]
			}
		}
		return ""
	}
	if idx := strings.IndexByte(rest, '['); idx >= 0 {
		rest = rest[:idx]
	}
	return strings.TrimSpace(rest)
}

func hasInertia(declaration string) bool {
	for _, f := range strings.Fields(declaration) {
		if f == "inertia" {
			return true
		}
	}
	return false
}
