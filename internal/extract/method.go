package extract

import (
	"fmt"

	"github.com/specialistvlad/wardleygo/internal/model"
)

// MethodExtractor reads the sourcing statements `build <name>`,
// `buy <name>` and `outsource <name>`.
type MethodExtractor struct{}

func (m *MethodExtractor) Collection() string { return CollectionMethods }

func (m *MethodExtractor) Extract(line Line) (any, error) {
	if line.InBlock() {
		return nil, nil
	}
	method := line.Keyword()
	switch method {
	case model.MethodBuild, model.MethodBuy, model.MethodOutsource:
	default:
		return nil, nil
	}
	// `build system->Compiler` links an element whose name starts with a
	// method keyword.
	if idx, _ := findArrow(line.Rest()); idx >= 0 {
		return nil, nil
	}

	name := unquoteName(line.Rest())
	if name == "" {
		return nil, fmt.Errorf("%s is missing a component name", method)
	}
	return &model.Method{Name: name, Method: method, Line: line.Number}, nil
}
