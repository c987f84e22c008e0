// internal/links/build.go
package links

import (
	"github.com/specialistvlad/wardleygo/internal/elements"
	"github.com/specialistvlad/wardleygo/internal/model"
	"github.com/specialistvlad/wardleygo/internal/nameid"
)

// Options tune the population choice of the catch-all strategies.
type Options struct {
	// ShowLinkedEvolved lets `links` and `anchorLinks` resolve against
	// evolved copies too. When false they only see non-evolving elements.
	ShowLinkedEvolved bool
}

// Resolved is one classified link with both endpoints resolved.
type Resolved struct {
	Start model.Component  `json:"startElement" yaml:"startElement"`
	End   model.Component  `json:"endElement" yaml:"endElement"`
	Link  model.LinkRecord `json:"link" yaml:"link"`
}

// Bucket is the output of one strategy, in input link order.
type Bucket struct {
	Kind  Kind       `json:"-" yaml:"-"`
	Name  string     `json:"name" yaml:"name"`
	Links []Resolved `json:"links" yaml:"links"`
}

// Result holds one bucket per strategy, in Kinds order.
type Result struct {
	Buckets []Bucket `json:"buckets" yaml:"buckets"`

	links  []model.LinkRecord
	placed []bool
}

// Bucket returns the bucket of strategy k.
func (r Result) Bucket(k Kind) Bucket {
	for _, b := range r.Buckets {
		if b.Kind == k {
			return b
		}
	}
	return Bucket{Kind: k, Name: k.Name(), Links: []Resolved{}}
}

// Unresolved returns the links that landed in no bucket, in input order.
func (r Result) Unresolved() []model.LinkRecord {
	out := []model.LinkRecord{}
	for i, l := range r.links {
		if !r.placed[i] {
			out = append(out, l)
		}
	}
	return out
}

// Build classifies every link of m. It panics if m is nil.
func Build(m *model.WardleyMap, opts Options) Result {
	if m == nil {
		panic("links: Build called with a nil map")
	}
	view := elements.New(m)

	result := Result{
		Buckets: make([]Bucket, 0, len(Kinds)),
		links:   m.Links,
		placed:  make([]bool, len(m.Links)),
	}
	for _, k := range Kinds {
		start, end := populations(k, view, opts)
		result.Buckets = append(result.Buckets, Bucket{
			Kind:  k,
			Name:  k.Name(),
			Links: classify(m.Links, start, end, result.placed),
		})
	}
	return result
}

// populations returns the start and end population of strategy k.
func populations(k Kind, v *elements.View, opts Options) (start, end []model.Component) {
	catchAll := v.NoneEvolving()
	if opts.ShowLinkedEvolved {
		catchAll = v.Merged()
	}

	switch k {
	case KindLinks:
		return catchAll, catchAll
	case KindEvolvingEndLinks:
		return v.Merged(), v.Evolve()
	case KindEvolvingToNoneEvolvingEndLinks:
		return v.Evolve(), v.NoneEvolving()
	case KindEvolvedToEvolving:
		return v.Evolved(), v.Evolve()
	case KindBothEvolved:
		return v.Evolved(), v.Evolved()
	case KindEvolveStartLinks:
		return v.Evolved(), v.NoneEvolving()
	case KindBothEvolving:
		return v.Evolve(), v.Evolve()
	case KindEvolveToEvolved:
		return v.Evolve(), v.Evolved()
	case KindAnchorLinks:
		return v.Anchors(), catchAll
	}
	panic("links: unknown strategy " + k.Name())
}

// classify resolves links against the populations and marks every resolved
// index in placed.
func classify(links []model.LinkRecord, start, end []model.Component, placed []bool) []Resolved {
	out := []Resolved{}
	if len(start) == 0 || len(end) == 0 {
		return out
	}
	for i, l := range links {
		from, ok := lookup(start, l.Start)
		if !ok {
			continue
		}
		to, ok := lookup(end, l.End)
		if !ok {
			continue
		}
		out = append(out, Resolved{Start: from, End: to, Link: l})
		placed[i] = true
	}
	return out
}

// lookup returns the first element of population whose name matches raw.
func lookup(population []model.Component, raw string) (model.Component, bool) {
	want := nameid.Normalize(raw)
	for _, c := range population {
		if nameid.Normalize(c.Name) == want {
			return c, true
		}
	}
	return model.Component{}, false
}
