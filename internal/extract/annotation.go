package extract

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/wardleygo/internal/model"
)

// AnnotationExtractor reads `annotation <n> [[v, m], [v, m]] <text>` and the
// single-point form `annotation <n> [v, m] <text>`.
type AnnotationExtractor struct{}

func (a *AnnotationExtractor) Collection() string { return CollectionAnnotations }

func (a *AnnotationExtractor) Extract(line Line) (any, error) {
	if line.InBlock() || line.Keyword() != "annotation" {
		return nil, nil
	}
	rest := line.Rest()

	open := strings.IndexByte(rest, '[')
	if open < 0 {
		return nil, fmt.Errorf("annotation needs coordinates, got %q", rest)
	}
	number, err := parseNumber(rest[:open])
	if err != nil {
		return nil, fmt.Errorf("annotation number: %w", err)
	}

	occurrences, consumed, err := parseOccurrences(rest[open:])
	if err != nil {
		return nil, fmt.Errorf("annotation %d: %w", int(number), err)
	}

	return &model.Annotation{
		Number:      int(number),
		Occurrences: occurrences,
		Text:        strings.TrimSpace(rest[open+consumed:]),
		Line:        line.Number,
	}, nil
}

// parseOccurrences reads either a single `[v, m]` tuple or a list of them
// wrapped in an outer bracket. It returns how many bytes were consumed.
func parseOccurrences(s string) ([]model.Point, int, error) {
	inner := strings.TrimLeft(s[1:], " \t")
	if !strings.HasPrefix(inner, "[") {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, 0, fmt.Errorf("unbalanced brackets in %q", s)
		}
		p, err := pointFromBody(s[1:end])
		if err != nil {
			return nil, 0, err
		}
		return []model.Point{p}, end + 1, nil
	}

	var points []model.Point
	i := 1
	for {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == ',') {
			i++
		}
		if i >= len(s) {
			return nil, 0, fmt.Errorf("unbalanced brackets in %q", s)
		}
		if s[i] == ']' {
			return points, i + 1, nil
		}
		if s[i] != '[' {
			return nil, 0, fmt.Errorf("unexpected %q in %q", s[i], s)
		}
		end := strings.IndexByte(s[i:], ']')
		if end < 0 {
			return nil, 0, fmt.Errorf("unbalanced brackets in %q", s)
		}
		p, err := pointFromBody(s[i+1 : i+end])
		if err != nil {
			return nil, 0, err
		}
		points = append(points, p)
		i += end + 1
	}
}

func pointFromBody(body string) (model.Point, error) {
	values, err := parseTuple(body)
	if err != nil {
		return model.Point{}, err
	}
	if len(values) < 2 {
		return model.Point{}, fmt.Errorf("expected [visibility, maturity], got [%s]", body)
	}
	return model.Point{Visibility: values[0], Maturity: values[1]}, nil
}
