package extract

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/wardleygo/internal/model"
)

// ElementExtractor handles the keywords that declare a point element:
// `component`, `anchor`, `market`, `ecosystem` and `submap`. The keywords
// only differ in which optional modifiers they accept.
type ElementExtractor struct {
	keyword    string
	collection string
	kind       string
	decorators bool
	inertia    bool
	url        bool
}

// NewComponentExtractor reads top-level `component` lines.
func NewComponentExtractor() *ElementExtractor {
	return &ElementExtractor{keyword: "component", collection: CollectionElements, kind: model.KindComponent, decorators: true, inertia: true}
}

// NewAnchorExtractor reads `anchor` lines.
func NewAnchorExtractor() *ElementExtractor {
	return &ElementExtractor{keyword: "anchor", collection: CollectionAnchors, kind: model.KindAnchor}
}

// NewMarketExtractor reads `market` lines.
func NewMarketExtractor() *ElementExtractor {
	return &ElementExtractor{keyword: "market", collection: CollectionMarkets, kind: model.KindMarket, decorators: true, inertia: true}
}

// NewEcosystemExtractor reads `ecosystem` lines.
func NewEcosystemExtractor() *ElementExtractor {
	return &ElementExtractor{keyword: "ecosystem", collection: CollectionEcosystems, kind: model.KindEcosystem, decorators: true, inertia: true}
}

// NewSubmapExtractor reads `submap` lines.
func NewSubmapExtractor() *ElementExtractor {
	return &ElementExtractor{keyword: "submap", collection: CollectionSubmaps, kind: model.KindSubmap, decorators: true, inertia: true, url: true}
}

func (e *ElementExtractor) Collection() string { return e.collection }

func (e *ElementExtractor) Extract(line Line) (any, error) {
	if line.InBlock() || line.Keyword() != e.keyword {
		return nil, nil
	}

	name, remainder, quoted, err := splitName(line.Rest())
	if err != nil {
		return nil, err
	}
	tail := remainder
	if !quoted && remainder == "" {
		var suffix string
		name, suffix = stripNameSuffix(name)
		tail = suffix
	} else if !quoted && strings.HasSuffix(name, " label") && hasSecondTuple(remainder) {
		name = strings.TrimSuffix(name, " label")
		tail = "label " + remainder
	}
	if name == "" {
		return nil, fmt.Errorf("%s is missing a name", e.keyword)
	}

	c := &model.Component{
		Name: name,
		Kind: e.kind,
		Line: line.Number,
	}

	var pointErr, labelErr error
	c.Visibility, c.Maturity, pointErr = parsePoint(tail)
	c.Label, labelErr = parseLabel(tail, name)

	if e.inertia {
		c.Inertia = hasInertia(tail)
	}
	if e.decorators {
		c.Decorators = parseDecorators(patterns.urlRef.ReplaceAllString(tail, ""))
	}
	if e.url {
		if m := patterns.urlRef.FindStringSubmatch(tail); m != nil {
			c.URL = strings.TrimSpace(m[1])
		}
	}
	switch e.kind {
	case model.KindMarket:
		c.Decorators.Market = true
	case model.KindEcosystem:
		c.Decorators.Ecosystem = true
	}

	return c, joinErrors(pointErr, labelErr)
}

// hasSecondTuple reports whether another bracketed tuple follows the first
// one in s. `X label [1, 2] [0.3, 0.4]` carries a label override, while
// `X label [0.3, 0.4]` is an element named "X label".
func hasSecondTuple(s string) bool {
	end := strings.IndexByte(s, ']')
	return end >= 0 && strings.IndexByte(s[end+1:], '[') >= 0
}
