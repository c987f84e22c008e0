// Package converter is the parse entrypoint: it turns the raw text of a map
// document into a model.WardleyMap.
//
// Parsing is a pure function of the text. The converter normalises line
// endings, drops comments and blank lines (keeping the original line numbers
// for diagnostics), marks the lines that belong to a `pipeline X { ... }`
// block, runs the line extractors and assembles their records into one
// model. Cross-record fields (pipeline visibility, the evolving flag,
// default axis labels) are derived here, after extraction.
package converter
