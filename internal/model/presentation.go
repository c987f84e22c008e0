// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the document-level settings that do not belong to any
// single element: style, canvas size, annotation box position and the axis
// labels.
package model

// Presentation holds the map-wide display settings.
type Presentation struct {
	Style       string `json:"style" yaml:"style"`
	Size        Size   `json:"size" yaml:"size"`
	Annotations Point  `json:"annotations" yaml:"annotations"`
	YAxis       YAxis  `json:"yAxis" yaml:"yAxis"`
}

// Size is the requested canvas size. Zero means "renderer default".
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// YAxis labels the visibility axis.
type YAxis struct {
	Label string `json:"label" yaml:"label"`
	Max   string `json:"max" yaml:"max"`
	Min   string `json:"min" yaml:"min"`
}

// EvolutionLabel is the caption of one evolution stage. Line2 is an optional
// second caption line.
type EvolutionLabel struct {
	Line1 string `json:"line1" yaml:"line1"`
	Line2 string `json:"line2" yaml:"line2"`
}

// DefaultPresentation returns the settings used when a document has no
// `style`, `size`, `annotations` or `y-axis` line.
func DefaultPresentation() Presentation {
	return Presentation{
		Style: "plain",
		YAxis: YAxis{Label: "Value Chain", Max: "Visible", Min: "Invisible"},
	}
}

// DefaultEvolution returns the four classic stage labels.
func DefaultEvolution() []EvolutionLabel {
	return []EvolutionLabel{
		{Line1: "Genesis", Line2: ""},
		{Line1: "Custom-Built", Line2: ""},
		{Line1: "Product", Line2: "(+rental)"},
		{Line1: "Commodity", Line2: "(+utility)"},
	}
}
