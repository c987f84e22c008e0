package extract

import "github.com/specialistvlad/wardleygo/internal/model"

// Collection names. Records are bucketed, and numbered, per collection.
const (
	CollectionElements           = "elements"
	CollectionAnchors            = "anchors"
	CollectionMarkets            = "markets"
	CollectionEcosystems         = "ecosystems"
	CollectionSubmaps            = "submaps"
	CollectionEvolved            = "evolved"
	CollectionPipelines          = "pipelines"
	CollectionPipelineComponents = "pipelineComponents"
	CollectionLinks              = "links"
	CollectionAnnotations        = "annotations"
	CollectionNotes              = "notes"
	CollectionMethods            = "methods"
	CollectionAttitudes          = "attitudes"
	CollectionAccelerators       = "accelerators"
	CollectionURLs               = "urls"
	CollectionTitle              = "title"
	CollectionPresentation       = "presentation"
	CollectionEvolution          = "evolution"
)

// Extractor recognises the lines of one DSL keyword.
type Extractor interface {
	// Collection names the bucket the extractor's records are gathered in.
	Collection() string
	// Extract returns nil, nil for lines the extractor does not own. It may
	// return a best-effort record together with an error.
	Extract(line Line) (any, error)
}

// Identifiable is implemented by records that receive a per-collection id.
type Identifiable interface {
	SetID(id int)
}

// reservedKeywords are the leading tokens owned by a statement extractor.
// A line starting with one of them is never read as a link.
var reservedKeywords = map[string]struct{}{
	"title": {}, "style": {}, "size": {}, "evolution": {}, "y-axis": {},
	"component": {}, "anchor": {}, "market": {}, "ecosystem": {}, "submap": {},
	"url": {}, "evolve": {}, "pipeline": {}, "note": {},
	"annotation": {}, "annotations": {},
	"pioneers": {}, "settlers": {}, "townplanners": {},
	"accelerator": {}, "deaccelerator": {},
	"build": {}, "buy": {}, "outsource": {},
}

// IsReserved reports whether keyword starts a non-link statement.
func IsReserved(keyword string) bool {
	_, ok := reservedKeywords[keyword]
	return ok
}

// isMethodKeyword reports whether keyword starts a sourcing statement. Such
// a line is still a link when it carries an arrow.
func isMethodKeyword(keyword string) bool {
	switch keyword {
	case model.MethodBuild, model.MethodBuy, model.MethodOutsource:
		return true
	}
	return false
}

// Default returns the full, ordered set of extractors for the map DSL.
func Default() []Extractor {
	return []Extractor{
		&TitleExtractor{},
		&PresentationExtractor{},
		&EvolutionExtractor{},
		&MethodExtractor{},
		&NoteExtractor{},
		&AnnotationExtractor{},
		NewComponentExtractor(),
		NewAnchorExtractor(),
		NewMarketExtractor(),
		NewEcosystemExtractor(),
		NewSubmapExtractor(),
		&PipelineExtractor{},
		&PipelineComponentExtractor{},
		&EvolveExtractor{},
		&LinkExtractor{},
		&URLExtractor{},
		&AttitudeExtractor{},
		&AcceleratorExtractor{},
	}
}
