package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/specialistvlad/wardleygo/internal/model"
	"github.com/specialistvlad/wardleygo/internal/nameid"
)

// patterns holds the precompiled expressions shared by several extractors.
var patterns = struct {
	number    *regexp.Regexp
	label     *regexp.Regexp
	inertia   *regexp.Regexp
	decorator *regexp.Regexp
	urlRef    *regexp.Regexp
}{
	number:    regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`),
	label:     regexp.MustCompile(`(?:^|\s)label\s*\[([^\]]*)\]`),
	inertia:   regexp.MustCompile(`(?:^|\s)inertia(?:\s|$)`),
	decorator: regexp.MustCompile(`(?:^|\s)\(([^)]*)\)`),
	urlRef:    regexp.MustCompile(`url\(([^)]*)\)`),
}

// parseNumber reads the leading numeric prefix of s. Trailing content is
// ignored; an empty prefix is an error.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	prefix := patterns.number.FindString(s)
	if prefix == "" {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return strconv.ParseFloat(prefix, 64)
}

// closingQuote returns the index of the quote that terminates the quoted
// token starting at s[0], honouring backslash escapes, or -1.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

// splitName separates a leading element name from the remainder of a line.
// Quoted names end at their closing quote; bare names end at the first `[`.
func splitName(rest string) (name, remainder string, quoted bool, err error) {
	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, `"`) {
		end := closingQuote(rest)
		if end < 0 {
			return "", "", true, fmt.Errorf("unterminated quoted name %s", rest)
		}
		name, _ = nameid.Unquote(rest[:end+1])
		return name, strings.TrimSpace(rest[end+1:]), true, nil
	}

	idx := strings.IndexByte(rest, '[')
	if idx < 0 {
		return strings.TrimSpace(rest), "", false, nil
	}
	return strings.TrimSpace(rest[:idx]), rest[idx:], false, nil
}

// stripNameSuffix removes trailing modifiers that a bare name picks up when a
// line has no coordinate tuple, e.g. `component Kettle inertia (buy)` or
// `component Kettle label [5, 5]`. The removed text is returned as tail.
func stripNameSuffix(name string) (string, string) {
	var tail []string
	for {
		trimmed := strings.TrimSpace(name)
		switch {
		case strings.HasSuffix(trimmed, ")") && strings.LastIndex(trimmed, " (") > 0:
			idx := strings.LastIndex(trimmed, " (")
			tail = append([]string{trimmed[idx+1:]}, tail...)
			name = trimmed[:idx]
		case strings.HasSuffix(trimmed, " inertia"):
			tail = append([]string{"inertia"}, tail...)
			name = strings.TrimSuffix(trimmed, " inertia")
		case strings.HasSuffix(trimmed, " label"):
			tail = append([]string{"label"}, tail...)
			name = strings.TrimSuffix(trimmed, " label")
		default:
			return trimmed, strings.Join(tail, " ")
		}
	}
}

// findTuple locates the first bracketed tuple in s that is not a
// `label [...]` override. It returns the raw tuple body. found is false when
// there is no tuple; err is set for an unbalanced bracket.
func findTuple(s string) (body string, found bool, err error) {
	offset := 0
	for {
		open := strings.IndexByte(s[offset:], '[')
		if open < 0 {
			return "", false, nil
		}
		open += offset
		closeIdx := strings.IndexByte(s[open:], ']')
		if closeIdx < 0 {
			return "", false, fmt.Errorf("unbalanced brackets in %q", strings.TrimSpace(s))
		}
		closeIdx += open
		before := strings.TrimSpace(s[:open])
		if before == "label" || strings.HasSuffix(before, " label") {
			offset = closeIdx + 1
			continue
		}
		return s[open+1 : closeIdx], true, nil
	}
}

// parseTuple converts a tuple body into numbers. Every slot must start with
// a number.
func parseTuple(body string) ([]float64, error) {
	parts := strings.Split(body, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			return nil, fmt.Errorf("empty coordinate in [%s]", body)
		}
		v, err := parseNumber(part)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate in [%s]: %w", body, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// parsePoint reads a `[visibility, maturity]` tuple from s, falling back to
// the element defaults when the tuple is absent or malformed.
func parsePoint(s string) (visibility, maturity float64, err error) {
	visibility, maturity = model.DefaultVisibility, model.DefaultMaturity

	body, found, err := findTuple(s)
	if err != nil || !found {
		return visibility, maturity, err
	}
	values, err := parseTuple(body)
	if err != nil {
		return visibility, maturity, err
	}
	if len(values) < 2 {
		return visibility, maturity, fmt.Errorf("expected [visibility, maturity], got [%s]", body)
	}
	return values[0], values[1], nil
}

// parseLabel reads a `label [x, y]` override from s.
func parseLabel(s, name string) (model.Label, error) {
	def := model.DefaultLabel(name)
	m := patterns.label.FindStringSubmatch(s)
	if m == nil {
		return def, nil
	}
	values, err := parseTuple(m[1])
	if err != nil {
		return def, fmt.Errorf("label: %w", err)
	}
	if len(values) < 2 {
		return def, fmt.Errorf("label expects [x, y], got [%s]", m[1])
	}
	return model.Label{X: values[0], Y: values[1]}, nil
}

// hasInertia reports whether s carries the bare `inertia` keyword.
func hasInertia(s string) bool {
	return patterns.inertia.MatchString(s)
}

// parseDecorators collects the parenthesised decorator words in s. A single
// group may list several, e.g. `(buy, ecosystem)`.
func parseDecorators(s string) model.Decorators {
	var d model.Decorators
	for _, m := range patterns.decorator.FindAllStringSubmatch(s, -1) {
		for _, word := range strings.Split(m[1], ",") {
			switch strings.ToLower(strings.TrimSpace(word)) {
			case "ecosystem":
				d.Ecosystem = true
			case "market":
				d.Market = true
			case "buy":
				d.Buy = true
			case "build":
				d.Build = true
			case "outsource":
				d.Outsource = true
			}
		}
	}
	return d
}

// joinErrors folds several optional errors into one message.
func joinErrors(errs ...error) error {
	var msgs []string
	for _, err := range errs {
		if err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return errors.New(strings.Join(msgs, "; "))
}
