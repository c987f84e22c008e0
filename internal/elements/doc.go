// internal/elements/doc.go

/*
Package elements computes the derived element populations of a parsed map.

The base population is every top-level point element (components, markets,
ecosystems, submaps) plus the members of pipeline blocks. An element that has
an `evolve` directive is "evolving"; for each of them the view also produces
an "evolved" copy placed at the evolved maturity and, when the directive
renames it, under the new name. Anchors are kept apart.

A View is built once per parsed model and memoises every projection, so
repeated calls hand back the same slices.
*/
package elements
