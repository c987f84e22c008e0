package extract

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/wardleygo/internal/model"
)

// URLExtractor reads `url <name> [<address>]`.
type URLExtractor struct{}

func (u *URLExtractor) Collection() string { return CollectionURLs }

func (u *URLExtractor) Extract(line Line) (any, error) {
	if line.InBlock() || line.Keyword() != "url" {
		return nil, nil
	}

	name, remainder, _, err := splitName(line.Rest())
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("url is missing a name")
	}
	if !strings.HasPrefix(remainder, "[") {
		return nil, fmt.Errorf("url %s needs an address in brackets", name)
	}
	end := strings.LastIndexByte(remainder, ']')
	if end < 0 {
		return nil, fmt.Errorf("unbalanced brackets in %q", remainder)
	}

	return &model.URL{
		Name: name,
		URL:  strings.TrimSpace(remainder[1:end]),
		Line: line.Number,
	}, nil
}
