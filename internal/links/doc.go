// Package links classifies the link statements of a parsed map.
//
// Every link is tested against a fixed set of nine strategies. A strategy
// names a start population and an end population of elements; a link
// belongs to the strategy's bucket when both of its endpoints resolve to an
// element of the matching population. Buckets are independent
// classifications, so one link can land in several of them. A link that
// resolves nowhere is left out of every bucket.
package links
