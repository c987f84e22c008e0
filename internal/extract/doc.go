// Package extract turns individual lines of the map DSL into structured
// records.
//
// Each keyword (`component`, `evolve`, `pipeline`, links, ...) is handled by
// one Extractor. An extractor looks at a single Line and either ignores it or
// returns exactly one record, optionally together with an error describing a
// malformed argument. Extractors never see each other's lines: ownership is
// decided by the leading keyword token.
//
// Run drives a fixed list of extractors over a whole document. It collects
// records into named buckets, numbers them per bucket in emission order and
// turns every extractor failure (including a panic) into a model.ParseError
// for that line, so one bad line never stops the rest of the document.
package extract
