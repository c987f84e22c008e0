package extract

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/wardleygo/internal/model"
)

// Title is emitted for a `title <text>` line.
type Title struct {
	Text string
	Line int
}

// Style is emitted for a `style <name>` line.
type Style struct {
	Name string
	Line int
}

// Size is emitted for a `size [width, height]` line.
type Size struct {
	model.Size
	Line int
}

// AnnotationsPosition is emitted for an `annotations [v, m]` line.
type AnnotationsPosition struct {
	model.Point
	Line int
}

// YAxis is emitted for a `y-axis <label>-><max>-><min>` line.
type YAxis struct {
	model.YAxis
	Line int
}

// Evolution is emitted for an `evolution A->B->C->D` line.
type Evolution struct {
	Labels []model.EvolutionLabel
	Line   int
}

// TitleExtractor reads `title <text>`.
type TitleExtractor struct{}

func (t *TitleExtractor) Collection() string { return CollectionTitle }

func (t *TitleExtractor) Extract(line Line) (any, error) {
	if line.InBlock() || line.Keyword() != "title" {
		return nil, nil
	}
	return &Title{Text: unquoteName(line.Rest()), Line: line.Number}, nil
}

// PresentationExtractor reads the document-wide display settings `style`,
// `size`, `annotations` and `y-axis`.
type PresentationExtractor struct{}

func (p *PresentationExtractor) Collection() string { return CollectionPresentation }

func (p *PresentationExtractor) Extract(line Line) (any, error) {
	if line.InBlock() {
		return nil, nil
	}
	switch line.Keyword() {
	case "style":
		style := line.Rest()
		if style == "" {
			return nil, fmt.Errorf("style is missing a name")
		}
		return &Style{Name: style, Line: line.Number}, nil

	case "size":
		values, err := requiredTuple(line.Rest(), "size", 2)
		if err != nil {
			return nil, err
		}
		return &Size{Size: model.Size{Width: values[0], Height: values[1]}, Line: line.Number}, nil

	case "annotations":
		values, err := requiredTuple(line.Rest(), "annotations", 2)
		if err != nil {
			return nil, err
		}
		return &AnnotationsPosition{Point: model.Point{Visibility: values[0], Maturity: values[1]}, Line: line.Number}, nil

	case "y-axis":
		def := model.DefaultPresentation().YAxis
		parts := splitStages(line.Rest())
		axis := YAxis{YAxis: def, Line: line.Number}
		if len(parts) > 0 && parts[0] != "" {
			axis.Label = parts[0]
		}
		if len(parts) > 1 && parts[1] != "" {
			axis.Max = parts[1]
		}
		if len(parts) > 2 && parts[2] != "" {
			axis.Min = parts[2]
		}
		if len(parts) > 3 {
			return &axis, fmt.Errorf("y-axis expects label->max->min, got %d parts", len(parts))
		}
		return &axis, nil
	}
	return nil, nil
}

// EvolutionExtractor reads `evolution A->B->C->D`. A stage may carry a second
// caption line after `&`, e.g. `Product&(+rental)`.
type EvolutionExtractor struct{}

func (e *EvolutionExtractor) Collection() string { return CollectionEvolution }

func (e *EvolutionExtractor) Extract(line Line) (any, error) {
	if line.InBlock() || line.Keyword() != "evolution" {
		return nil, nil
	}

	labels := model.DefaultEvolution()
	stages := splitStages(line.Rest())
	for i, stage := range stages {
		if i >= len(labels) {
			break
		}
		line1, line2, _ := strings.Cut(stage, "&")
		labels[i] = model.EvolutionLabel{Line1: strings.TrimSpace(line1), Line2: strings.TrimSpace(line2)}
	}

	var err error
	if len(stages) != len(labels) {
		err = fmt.Errorf("evolution expects %d stages, got %d", len(labels), len(stages))
	}
	return &Evolution{Labels: labels, Line: line.Number}, err
}

// splitStages splits an arrow-separated list, trimming every part.
func splitStages(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, "->")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// requiredTuple reads a mandatory tuple of at least n numbers.
func requiredTuple(s, keyword string, n int) ([]float64, error) {
	body, found, err := findTuple(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyword, err)
	}
	if !found {
		return nil, fmt.Errorf("%s needs a [%d]-tuple", keyword, n)
	}
	values, err := parseTuple(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyword, err)
	}
	if len(values) < n {
		return nil, fmt.Errorf("%s expects %d numbers, got %d", keyword, n, len(values))
	}
	return values, nil
}
