// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go struct representation of a Wardley Map
// document. Its purpose is to give every later stage (projections, link
// resolution, rendering, the CLI) one strongly-typed, in-memory view of what
// the user wrote in the map DSL.
//
// # Core Concepts
//
//   - WardleyMap: The root container for one document. It aggregates every
//     record emitted by the line extractors, the presentation settings and the
//     non-fatal parse errors.
//
//   - Component: The shared shape of every point element (components, anchors,
//     markets, ecosystems, submaps and pipeline members). Its Name is the key
//     links refer to.
//
//   - LinkRecord: A raw `start->end` statement. Endpoints are kept exactly as
//     written; resolving them to Components is the job of package links.
//
//   - EvolveDirective: A pending `evolve` statement. Whether an element is
//     "evolving" or "evolved" is derived from these by package elements.
//
// The model holds no behaviour beyond small helpers. It is rebuilt on every
// parse, so nothing in it needs to be kept consistent across edits.
package model
