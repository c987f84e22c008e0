// internal/converter/converter.go
package converter

import (
	"context"
	"fmt"
	"sort"

	"github.com/specialistvlad/wardleygo/internal/ctxlog"
	"github.com/specialistvlad/wardleygo/internal/extract"
	"github.com/specialistvlad/wardleygo/internal/model"
	"github.com/specialistvlad/wardleygo/internal/nameid"
)

// Converter parses map documents. It is stateless and safe to share.
type Converter struct {
	extractors []extract.Extractor
}

// New creates a converter wired with the default extractor set.
func New() *Converter {
	return &Converter{extractors: extract.Default()}
}

// Parse parses text with a default converter.
func Parse(text string) *model.WardleyMap {
	return New().Parse(context.Background(), text)
}

// Parse builds a fresh WardleyMap from text. It never fails: malformed lines
// are reported in the returned map's Errors.
func (c *Converter) Parse(ctx context.Context, text string) *model.WardleyMap {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parse started.", "bytes", len(text))

	text = stripBlockComments(normalizeLineEndings(text))
	lines, blockErrs := splitLines(text)
	logger.Debug("Document split into lines.", "lines", len(lines))

	result := extract.Run(ctx, lines, c.extractors)

	m := model.NewWardleyMap()
	m.Errors = append(m.Errors, result.Errors...)
	m.Errors = append(m.Errors, blockErrs...)

	assembleElements(m, result)
	assembleEvolved(m, result)
	assemblePipelines(m, result)
	assembleSettings(m, result)

	sort.SliceStable(m.Errors, func(i, j int) bool { return m.Errors[i].Line < m.Errors[j].Line })

	logger.Debug("Parse finished.",
		"elements", len(m.Elements),
		"links", len(m.Links),
		"evolved", len(m.Evolved),
		"errors", len(m.Errors),
	)
	return m
}

func assembleElements(m *model.WardleyMap, r *extract.Result) {
	m.Elements = extract.Collect[model.Component](r, extract.CollectionElements)
	m.Anchors = extract.Collect[model.Component](r, extract.CollectionAnchors)
	m.Markets = extract.Collect[model.Component](r, extract.CollectionMarkets)
	m.Ecosystems = extract.Collect[model.Component](r, extract.CollectionEcosystems)
	m.Submaps = extract.Collect[model.Component](r, extract.CollectionSubmaps)
	m.Links = extract.Collect[model.LinkRecord](r, extract.CollectionLinks)
	m.Annotations = extract.Collect[model.Annotation](r, extract.CollectionAnnotations)
	m.Notes = extract.Collect[model.Note](r, extract.CollectionNotes)
	m.Methods = extract.Collect[model.Method](r, extract.CollectionMethods)
	m.Attitudes = extract.Collect[model.Attitude](r, extract.CollectionAttitudes)
	m.Accelerators = extract.Collect[model.Accelerator](r, extract.CollectionAccelerators)
	m.URLs = extract.Collect[model.URL](r, extract.CollectionURLs)
}

// assembleEvolved keeps the first evolve directive per element name and
// copies it onto the matching elements.
func assembleEvolved(m *model.WardleyMap, r *extract.Result) {
	seen := make(map[string]model.EvolveDirective)
	for _, directive := range extract.Collect[model.EvolveDirective](r, extract.CollectionEvolved) {
		key := nameid.Normalize(directive.Name)
		if first, dup := seen[key]; dup {
			m.Errors = append(m.Errors, model.ParseError{
				Line:    directive.Line,
				Message: fmt.Sprintf("%s already evolves on line %d", directive.Name, first.Line),
			})
			continue
		}
		seen[key] = directive
		m.Evolved = append(m.Evolved, directive)
	}
	if len(seen) == 0 {
		return
	}

	for _, group := range [][]model.Component{m.Elements, m.Markets, m.Ecosystems, m.Submaps} {
		for i := range group {
			directive, ok := seen[nameid.Normalize(group[i].Name)]
			if !ok {
				continue
			}
			group[i].Evolving = true
			group[i].EvolveMaturity = directive.EvolveMaturity
			group[i].Override = directive.Override
		}
	}
}

// assemblePipelines attaches block members to their pipeline and inherits
// visibility from the component the pipeline is named after.
func assemblePipelines(m *model.WardleyMap, r *extract.Result) {
	pipelines := extract.Collect[model.Pipeline](r, extract.CollectionPipelines)
	members := extract.Collect[model.PipelineComponent](r, extract.CollectionPipelineComponents)

	for i := range pipelines {
		p := &pipelines[i]
		owner, found := findComponent(m.Elements, p.Name)
		if found {
			p.Visibility = owner.Visibility
		}

		for _, member := range members {
			if member.Pipeline != p.Name {
				continue
			}
			member.Visibility = p.Visibility
			p.Components = append(p.Components, member)
		}

		if p.Hidden && len(p.Components) > 0 {
			p.Maturity1, p.Maturity2 = p.Components[0].Maturity, p.Components[0].Maturity
			for _, member := range p.Components[1:] {
				p.Maturity1 = min(p.Maturity1, member.Maturity)
				p.Maturity2 = max(p.Maturity2, member.Maturity)
			}
			p.Hidden = false
		}
	}
	m.Pipelines = pipelines
}

func assembleSettings(m *model.WardleyMap, r *extract.Result) {
	if title, ok := extract.Last[extract.Title](r, extract.CollectionTitle); ok {
		m.Title = title.Text
	}
	if evolution, ok := extract.Last[extract.Evolution](r, extract.CollectionEvolution); ok {
		m.Evolution = evolution.Labels
	}
	if style, ok := extract.Last[extract.Style](r, extract.CollectionPresentation); ok {
		m.Presentation.Style = style.Name
	}
	if size, ok := extract.Last[extract.Size](r, extract.CollectionPresentation); ok {
		m.Presentation.Size = size.Size
	}
	if pos, ok := extract.Last[extract.AnnotationsPosition](r, extract.CollectionPresentation); ok {
		m.Presentation.Annotations = pos.Point
	}
	if axis, ok := extract.Last[extract.YAxis](r, extract.CollectionPresentation); ok {
		m.Presentation.YAxis = axis.YAxis
	}
}

func findComponent(components []model.Component, name string) (model.Component, bool) {
	for _, c := range components {
		if nameid.Equal(c.Name, name) {
			return c, true
		}
	}
	return model.Component{}, false
}
