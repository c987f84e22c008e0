// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines WardleyMap, the root value produced by parsing one map
// document.
//
// Why is the map a plain value?
//
// The text buffer is the only source of truth. A WardleyMap is rebuilt from
// scratch on every parse and thrown away on the next edit, so it carries no
// behaviour, no caches and no back references. Derived views (evolved
// populations, link buckets) live in their own packages and are computed
// from a finished WardleyMap.
package model

// WardleyMap is the structured model of a single map document.
type WardleyMap struct {
	Title string `json:"title" yaml:"title"`

	Elements   []Component `json:"elements" yaml:"elements"`
	Anchors    []Component `json:"anchors" yaml:"anchors"`
	Markets    []Component `json:"markets" yaml:"markets"`
	Ecosystems []Component `json:"ecosystems" yaml:"ecosystems"`
	Submaps    []Component `json:"submaps" yaml:"submaps"`

	Evolved   []EvolveDirective `json:"evolved" yaml:"evolved"`
	Pipelines []Pipeline        `json:"pipelines" yaml:"pipelines"`
	Links     []LinkRecord      `json:"links" yaml:"links"`

	Annotations  []Annotation  `json:"annotations" yaml:"annotations"`
	Notes        []Note        `json:"notes" yaml:"notes"`
	Methods      []Method      `json:"methods" yaml:"methods"`
	Attitudes    []Attitude    `json:"attitudes" yaml:"attitudes"`
	Accelerators []Accelerator `json:"accelerators" yaml:"accelerators"`
	URLs         []URL         `json:"urls" yaml:"urls"`

	Presentation Presentation     `json:"presentation" yaml:"presentation"`
	Evolution    []EvolutionLabel `json:"evolution" yaml:"evolution"`

	Errors []ParseError `json:"errors" yaml:"errors"`
}

// NewWardleyMap returns an empty map with every collection initialised, so
// serialised output never contains null lists.
func NewWardleyMap() *WardleyMap {
	return &WardleyMap{
		Elements:     []Component{},
		Anchors:      []Component{},
		Markets:      []Component{},
		Ecosystems:   []Component{},
		Submaps:      []Component{},
		Evolved:      []EvolveDirective{},
		Pipelines:    []Pipeline{},
		Links:        []LinkRecord{},
		Annotations:  []Annotation{},
		Notes:        []Note{},
		Methods:      []Method{},
		Attitudes:    []Attitude{},
		Accelerators: []Accelerator{},
		URLs:         []URL{},
		Presentation: DefaultPresentation(),
		Evolution:    DefaultEvolution(),
		Errors:       []ParseError{},
	}
}

// HasErrors reports whether any line failed to parse.
func (m *WardleyMap) HasErrors() bool {
	return len(m.Errors) > 0
}
