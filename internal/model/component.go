// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Component, the shape shared by every point element on a
// map: components, anchors, markets, ecosystems, submaps and the members of a
// pipeline block.
//
// Why one shape for many keywords?
//
// Links may connect any of these elements, and the link engine reasons about
// populations of "things with a name and a position". Keeping a single struct
// (tagged by Kind) means projections can concatenate populations without
// conversions, and a renderer can draw all of them through one code path.
package model

// Element kinds.
const (
	KindComponent         = "component"
	KindAnchor            = "anchor"
	KindMarket            = "market"
	KindEcosystem         = "ecosystem"
	KindSubmap            = "submap"
	KindPipelineComponent = "pipelinecomponent"
)

// Default label offset and the name length past which it is doubled.
const (
	DefaultLabelX      = 5
	DefaultLabelY      = -10
	LongNameLabelLimit = 14
)

// Fallback coordinates for elements whose position is missing or malformed.
const (
	DefaultVisibility     = 0.9
	DefaultMaturity       = 0.1
	DefaultEvolveMaturity = 0.85
)

// Label is the offset of an element's caption relative to its point.
type Label struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// DefaultLabel returns the caption offset used when a line carries no
// `label [x, y]` override.
func DefaultLabel(name string) Label {
	if len([]rune(name)) > LongNameLabelLimit {
		return Label{X: DefaultLabelX * 2, Y: DefaultLabelY * 2}
	}
	return Label{X: DefaultLabelX, Y: DefaultLabelY}
}

// Decorators are the sourcing and type markers written as trailing
// parenthesised tokens, e.g. `(buy)` or `(ecosystem)`.
type Decorators struct {
	Ecosystem bool `json:"ecosystem" yaml:"ecosystem"`
	Market    bool `json:"market" yaml:"market"`
	Buy       bool `json:"buy" yaml:"buy"`
	Build     bool `json:"build" yaml:"build"`
	Outsource bool `json:"outsource" yaml:"outsource"`
}

// Component is a named element plotted at a (visibility, maturity) point.
type Component struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Kind string `json:"type" yaml:"type"`
	Line int    `json:"line" yaml:"line"`

	Visibility float64 `json:"visibility" yaml:"visibility"`
	Maturity   float64 `json:"maturity" yaml:"maturity"`

	Evolved        bool    `json:"evolved" yaml:"evolved"`
	Evolving       bool    `json:"evolving" yaml:"evolving"`
	EvolveMaturity float64 `json:"evolveMaturity,omitempty" yaml:"evolveMaturity,omitempty"`
	Override       string  `json:"override,omitempty" yaml:"override,omitempty"`
	Inertia        bool    `json:"inertia" yaml:"inertia"`

	Decorators Decorators `json:"decorators" yaml:"decorators"`
	Label      Label      `json:"label" yaml:"label"`

	// URL names the `url` record a submap points at.
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
	// Pipeline names the owning pipeline of a pipeline member.
	Pipeline string `json:"pipeline,omitempty" yaml:"pipeline,omitempty"`
}

// SetID implements the id assignment hook used by the extraction runner.
func (c *Component) SetID(id int) { c.ID = id }
