// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the records emitted by the non-component keywords:
// evolve directives, pipelines, links and the annotation-style overlays.
package model

// EvolveDirective records an `evolve` statement: the element named Name will
// be drawn a second time at EvolveMaturity.
type EvolveDirective struct {
	ID             int     `json:"id" yaml:"id"`
	Name           string  `json:"name" yaml:"name"`
	Override       string  `json:"override,omitempty" yaml:"override,omitempty"`
	EvolveMaturity float64 `json:"maturity" yaml:"maturity"`
	Inertia        bool    `json:"inertia" yaml:"inertia"`
	Label          Label   `json:"label" yaml:"label"`
	Line           int     `json:"line" yaml:"line"`
}

func (e *EvolveDirective) SetID(id int) { e.ID = id }

// Pipeline groups alternative implementations of a component along the
// maturity axis, bounded by Maturity1 and Maturity2.
type Pipeline struct {
	ID         int                 `json:"id" yaml:"id"`
	Name       string              `json:"name" yaml:"name"`
	Line       int                 `json:"line" yaml:"line"`
	Visibility float64             `json:"visibility" yaml:"visibility"`
	Maturity1  float64             `json:"maturity1" yaml:"maturity1"`
	Maturity2  float64             `json:"maturity2" yaml:"maturity2"`
	Hidden     bool                `json:"hidden" yaml:"hidden"`
	Components []PipelineComponent `json:"components" yaml:"components"`
}

func (p *Pipeline) SetID(id int) { p.ID = id }

// PipelineComponent is a member line inside a `pipeline X { ... }` block.
// Its visibility is inherited from the pipeline.
type PipelineComponent struct {
	ID         int     `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Pipeline   string  `json:"pipeline" yaml:"pipeline"`
	Line       int     `json:"line" yaml:"line"`
	Maturity   float64 `json:"maturity" yaml:"maturity"`
	Visibility float64 `json:"visibility" yaml:"visibility"`
	Label      Label   `json:"label" yaml:"label"`
}

func (p *PipelineComponent) SetID(id int) { p.ID = id }

// LinkRecord is an unresolved `start->end` statement. Start and End are the
// raw tokens as written, quotes and escapes included.
type LinkRecord struct {
	ID        int    `json:"id" yaml:"id"`
	Start     string `json:"start" yaml:"start"`
	End       string `json:"end" yaml:"end"`
	Flow      bool   `json:"flow" yaml:"flow"`
	Future    bool   `json:"future" yaml:"future"`
	Past      bool   `json:"past" yaml:"past"`
	FlowValue string `json:"flowValue,omitempty" yaml:"flowValue,omitempty"`
	Context   string `json:"context,omitempty" yaml:"context,omitempty"`
	Line      int    `json:"line" yaml:"line"`
}

func (l *LinkRecord) SetID(id int) { l.ID = id }

// Point is a bare (visibility, maturity) coordinate.
type Point struct {
	Visibility float64 `json:"visibility" yaml:"visibility"`
	Maturity   float64 `json:"maturity" yaml:"maturity"`
}

// Annotation is a numbered marker drawn at one or more points, with its
// explanatory text listed in the annotation box.
type Annotation struct {
	ID          int     `json:"id" yaml:"id"`
	Number      int     `json:"number" yaml:"number"`
	Occurrences []Point `json:"occurances" yaml:"occurances"`
	Text        string  `json:"text" yaml:"text"`
	Line        int     `json:"line" yaml:"line"`
}

func (a *Annotation) SetID(id int) { a.ID = id }

// Note is free text placed on the map.
type Note struct {
	ID         int     `json:"id" yaml:"id"`
	Text       string  `json:"text" yaml:"text"`
	Visibility float64 `json:"visibility" yaml:"visibility"`
	Maturity   float64 `json:"maturity" yaml:"maturity"`
	Line       int     `json:"line" yaml:"line"`
}

func (n *Note) SetID(id int) { n.ID = id }

// Sourcing methods.
const (
	MethodBuild     = "build"
	MethodBuy       = "buy"
	MethodOutsource = "outsource"
)

// Method marks how a component is sourced, from a `build X`, `buy X` or
// `outsource X` line.
type Method struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Method string `json:"method" yaml:"method"`
	Line   int    `json:"line" yaml:"line"`
}

func (m *Method) SetID(id int) { m.ID = id }

// Attitude kinds.
const (
	AttitudePioneers     = "pioneers"
	AttitudeSettlers     = "settlers"
	AttitudeTownPlanners = "townplanners"
)

// Attitude is a shaded box spanning [Visibility, Maturity] to
// [Visibility2, Maturity2].
type Attitude struct {
	ID          int     `json:"id" yaml:"id"`
	Attitude    string  `json:"attitude" yaml:"attitude"`
	Visibility  float64 `json:"visibility" yaml:"visibility"`
	Maturity    float64 `json:"maturity" yaml:"maturity"`
	Visibility2 float64 `json:"visibility2" yaml:"visibility2"`
	Maturity2   float64 `json:"maturity2" yaml:"maturity2"`
	Line        int     `json:"line" yaml:"line"`
}

func (a *Attitude) SetID(id int) { a.ID = id }

// Accelerator is a named force arrow; Deaccelerator flips its direction.
type Accelerator struct {
	ID            int     `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Visibility    float64 `json:"visibility" yaml:"visibility"`
	Maturity      float64 `json:"maturity" yaml:"maturity"`
	Deaccelerator bool    `json:"deaccelerator" yaml:"deaccelerator"`
	Line          int     `json:"line" yaml:"line"`
}

func (a *Accelerator) SetID(id int) { a.ID = id }

// URL is a named address referenced by submaps via `url(name)`.
type URL struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
	Line int    `json:"line" yaml:"line"`
}

func (u *URL) SetID(id int) { u.ID = id }
