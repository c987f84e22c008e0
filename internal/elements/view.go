// internal/elements/view.go
package elements

import (
	"github.com/specialistvlad/wardleygo/internal/model"
	"github.com/specialistvlad/wardleygo/internal/nameid"
)

// View exposes the element projections of one WardleyMap. It is not safe for
// concurrent use; build one per goroutine.
type View struct {
	m          *model.WardleyMap
	directives map[string]model.EvolveDirective
	cache      map[string][]model.Component
}

// New returns a view over m. It panics if m is nil.
func New(m *model.WardleyMap) *View {
	if m == nil {
		panic("elements: New called with a nil map")
	}
	directives := make(map[string]model.EvolveDirective, len(m.Evolved))
	for _, d := range m.Evolved {
		key := nameid.Normalize(d.Name)
		if _, dup := directives[key]; !dup {
			directives[key] = d
		}
	}
	return &View{m: m, directives: directives, cache: make(map[string][]model.Component)}
}

// memo computes a projection on first use and returns the stored slice
// afterwards.
func (v *View) memo(key string, compute func() []model.Component) []model.Component {
	if out, ok := v.cache[key]; ok {
		return out
	}
	out := compute()
	v.cache[key] = out
	return out
}

func (v *View) directive(name string) (model.EvolveDirective, bool) {
	d, ok := v.directives[nameid.Normalize(name)]
	return d, ok
}

// NonEvolved returns the base population in declaration order: elements,
// markets, ecosystems, submaps, then pipeline members.
func (v *View) NonEvolved() []model.Component {
	return v.memo("base", func() []model.Component {
		groups := [][]model.Component{v.m.Elements, v.m.Markets, v.m.Ecosystems, v.m.Submaps, v.PipelineComponents()}
		size := 0
		for _, g := range groups {
			size += len(g)
		}
		out := make([]model.Component, 0, size)
		for _, g := range groups {
			for _, c := range g {
				_, evolving := v.directive(c.Name)
				c.Evolving = evolving
				c.Evolved = false
				out = append(out, c)
			}
		}
		return out
	})
}

// Evolve returns the elements that carry an evolve directive, at their
// current position.
func (v *View) Evolve() []model.Component {
	return v.memo("evolve", func() []model.Component {
		return filter(v.NonEvolved(), func(c model.Component) bool { return c.Evolving })
	})
}

// Evolved returns one copy of every evolving element at its evolved
// maturity, named after the override when one is given.
func (v *View) Evolved() []model.Component {
	return v.memo("evolved", func() []model.Component {
		evolving := v.Evolve()
		out := make([]model.Component, 0, len(evolving))
		for _, c := range evolving {
			d, _ := v.directive(c.Name)
			c.Evolved = true
			c.Evolving = false
			c.Maturity = d.EvolveMaturity
			c.EvolveMaturity = d.EvolveMaturity
			c.Inertia = d.Inertia
			c.Label = d.Label
			c.Line = d.Line
			c.Override = d.Override
			if d.Override != "" {
				c.Name = d.Override
			}
			out = append(out, c)
		}
		return out
	})
}

// Merged returns NonEvolved followed by Evolved.
func (v *View) Merged() []model.Component {
	return v.memo("merged", func() []model.Component {
		base, evolved := v.NonEvolved(), v.Evolved()
		out := make([]model.Component, 0, len(base)+len(evolved))
		out = append(out, base...)
		return append(out, evolved...)
	})
}

// NoneEvolving returns the base elements without an evolve directive.
func (v *View) NoneEvolving() []model.Component {
	return v.memo("noneEvolving", func() []model.Component {
		return filter(v.NonEvolved(), func(c model.Component) bool { return !c.Evolving })
	})
}

// NoneEvolvedOrEvolving returns the merged elements that are neither an
// evolved copy nor evolving.
func (v *View) NoneEvolvedOrEvolving() []model.Component {
	return v.memo("noneEvolvedOrEvolving", func() []model.Component {
		return filter(v.Merged(), func(c model.Component) bool { return !c.Evolved && !c.Evolving })
	})
}

// PipelineComponents returns the members of every pipeline block as point
// elements at the pipeline's visibility.
func (v *View) PipelineComponents() []model.Component {
	return v.memo("pipeline", func() []model.Component {
		var out []model.Component
		for _, p := range v.m.Pipelines {
			for _, pc := range p.Components {
				out = append(out, model.Component{
					ID:         pc.ID,
					Name:       pc.Name,
					Kind:       model.KindPipelineComponent,
					Line:       pc.Line,
					Visibility: pc.Visibility,
					Maturity:   pc.Maturity,
					Label:      pc.Label,
					Pipeline:   p.Name,
				})
			}
		}
		if out == nil {
			out = []model.Component{}
		}
		return out
	})
}

// Anchors returns the anchors of the map.
func (v *View) Anchors() []model.Component {
	return v.m.Anchors
}

func filter(in []model.Component, keep func(model.Component) bool) []model.Component {
	out := make([]model.Component, 0, len(in))
	for _, c := range in {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
