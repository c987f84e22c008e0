// internal/nameid/doc.go

/*
Package nameid provides the single notion of "the same element name" used
across the system.

Element names in the map DSL may be bare (`component Kettle [0.4, 0.3]`) or
quoted (`component "Multi-line\nName" [0.4, 0.3]`), and a link may refer to a
multi-line name with spaces instead of line breaks or with different casing.
Every place that compares names (link strategies, text edits, evolve lookup)
goes through Normalize / Equal so identity semantics never drift between call
sites.
*/
package nameid
