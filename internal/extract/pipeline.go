package extract

import (
	"fmt"

	"github.com/specialistvlad/wardleygo/internal/model"
)

// PipelineExtractor reads `pipeline <name> [m1, m2]` lines. The tuple is
// optional when the pipeline is followed by a `{ ... }` block; bounds are
// then derived from the members by the converter.
type PipelineExtractor struct{}

func (p *PipelineExtractor) Collection() string { return CollectionPipelines }

func (p *PipelineExtractor) Extract(line Line) (any, error) {
	if line.InBlock() || line.Keyword() != "pipeline" {
		return nil, nil
	}

	name, remainder, _, err := splitName(line.Rest())
	if err != nil {
		return nil, err
	}
	name = trimBlockOpen(name)
	if name == "" {
		return nil, fmt.Errorf("pipeline is missing a name")
	}

	pipeline := &model.Pipeline{
		Name:       name,
		Line:       line.Number,
		Hidden:     true,
		Components: []model.PipelineComponent{},
	}

	body, found, err := findTuple(remainder)
	if err != nil {
		return nil, fmt.Errorf("pipeline %s: %w", name, err)
	}
	if !found {
		return pipeline, nil
	}
	values, err := parseTuple(body)
	if err != nil {
		return nil, fmt.Errorf("pipeline %s: %w", name, err)
	}
	if len(values) < 2 {
		return nil, fmt.Errorf("pipeline %s expects [maturity1, maturity2], got [%s]", name, body)
	}
	pipeline.Maturity1, pipeline.Maturity2 = values[0], values[1]
	pipeline.Hidden = false
	return pipeline, nil
}

// PipelineComponentExtractor reads `component <name> [maturity]` lines that
// sit inside a pipeline block.
type PipelineComponentExtractor struct{}

func (p *PipelineComponentExtractor) Collection() string { return CollectionPipelineComponents }

func (p *PipelineComponentExtractor) Extract(line Line) (any, error) {
	if !line.InBlock() || line.Keyword() != "component" {
		return nil, nil
	}

	name, remainder, _, err := splitName(line.Rest())
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("pipeline component is missing a name")
	}

	body, found, err := findTuple(remainder)
	if err != nil {
		return nil, fmt.Errorf("pipeline component %s: %w", name, err)
	}
	if !found {
		return nil, fmt.Errorf("pipeline component %s needs a [maturity]", name)
	}
	values, err := parseTuple(body)
	if err != nil {
		return nil, fmt.Errorf("pipeline component %s: %w", name, err)
	}

	label, labelErr := parseLabel(remainder, name)
	return &model.PipelineComponent{
		Name:     name,
		Pipeline: line.Parent,
		Line:     line.Number,
		// A full [visibility, maturity] pair is accepted; visibility is
		// inherited from the pipeline either way.
		Maturity: values[len(values)-1],
		Label:    label,
	}, labelErr
}

// trimBlockOpen drops a `{` written on the same line as the pipeline name.
func trimBlockOpen(name string) string {
	for len(name) > 0 && (name[len(name)-1] == '{' || name[len(name)-1] == ' ') {
		name = name[:len(name)-1]
	}
	return name
}
