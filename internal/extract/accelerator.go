package extract

import (
	"fmt"

	"github.com/specialistvlad/wardleygo/internal/model"
)

// AcceleratorExtractor reads `accelerator <name> [v, m]` and
// `deaccelerator <name> [v, m]`.
type AcceleratorExtractor struct{}

func (a *AcceleratorExtractor) Collection() string { return CollectionAccelerators }

func (a *AcceleratorExtractor) Extract(line Line) (any, error) {
	if line.InBlock() {
		return nil, nil
	}
	keyword := line.Keyword()
	if keyword != "accelerator" && keyword != "deaccelerator" {
		return nil, nil
	}

	name, remainder, _, err := splitName(line.Rest())
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%s is missing a name", keyword)
	}

	acc := &model.Accelerator{
		Name:          name,
		Deaccelerator: keyword == "deaccelerator",
		Line:          line.Number,
	}
	acc.Visibility, acc.Maturity, err = parsePoint(remainder)
	return acc, err
}
