package extract

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/wardleygo/internal/model"
	"github.com/specialistvlad/wardleygo/internal/nameid"
)

// EvolveExtractor reads `evolve <name>[-><override>] <maturity> [inertia]
// [label [x, y]]` lines.
type EvolveExtractor struct{}

func (e *EvolveExtractor) Collection() string { return CollectionEvolved }

func (e *EvolveExtractor) Extract(line Line) (any, error) {
	if line.InBlock() || line.Keyword() != "evolve" {
		return nil, nil
	}
	rest := line.Rest()

	labelText := ""
	if loc := patterns.label.FindStringIndex(rest); loc != nil {
		labelText = rest[loc[0]:loc[1]]
		rest = rest[:loc[0]] + " " + rest[loc[1]:]
	}
	inertia := false
	if hasInertia(rest) {
		inertia = true
		rest = patterns.inertia.ReplaceAllString(rest, " ")
	}
	rest = strings.TrimSpace(rest)

	cut := strings.LastIndexAny(rest, " \t")
	if cut < 0 {
		return nil, fmt.Errorf("evolve expects a name and a maturity, got %q", line.Rest())
	}
	maturity, err := parseNumber(rest[cut+1:])
	if err != nil {
		return nil, fmt.Errorf("evolve maturity: %w", err)
	}

	namePart := strings.TrimSpace(rest[:cut])
	name, override := namePart, ""
	if idx := arrowIndex(namePart, "->"); idx >= 0 {
		name = strings.TrimSpace(namePart[:idx])
		override = strings.TrimSpace(namePart[idx+2:])
	}
	name = unquoteName(name)
	override = unquoteName(override)
	if name == "" {
		return nil, fmt.Errorf("evolve is missing a name")
	}

	labelName := name
	if override != "" {
		labelName = override
	}
	label, labelErr := parseLabel(labelText, labelName)

	return &model.EvolveDirective{
		Name:           name,
		Override:       override,
		EvolveMaturity: maturity,
		Inertia:        inertia,
		Label:          label,
		Line:           line.Number,
	}, labelErr
}

// unquoteName resolves a possibly quoted name token.
func unquoteName(token string) string {
	if unquoted, ok := nameid.Unquote(token); ok {
		return unquoted
	}
	return token
}

// arrowIndex returns the index of the first occurrence of arrow in s that is
// not inside a quoted token, or -1.
func arrowIndex(s, arrow string) int {
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && inQuote:
			i++
		case s[i] == '"':
			inQuote = !inQuote
		case !inQuote && strings.HasPrefix(s[i:], arrow):
			return i
		}
	}
	return -1
}
