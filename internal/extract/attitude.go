package extract

import (
	"fmt"

	"github.com/specialistvlad/wardleygo/internal/model"
)

// AttitudeExtractor reads `pioneers|settlers|townplanners [v1, m1, v2, m2]`.
// The legacy two-coordinate form is rejected here; the attitude migration
// rewrites it.
type AttitudeExtractor struct{}

func (a *AttitudeExtractor) Collection() string { return CollectionAttitudes }

func (a *AttitudeExtractor) Extract(line Line) (any, error) {
	if line.InBlock() {
		return nil, nil
	}
	attitude := line.Keyword()
	switch attitude {
	case model.AttitudePioneers, model.AttitudeSettlers, model.AttitudeTownPlanners:
	default:
		return nil, nil
	}

	body, found, err := findTuple(line.Rest())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", attitude, err)
	}
	if !found {
		return nil, fmt.Errorf("%s needs [visibility1, maturity1, visibility2, maturity2]", attitude)
	}
	values, err := parseTuple(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", attitude, err)
	}
	if len(values) != 4 {
		return nil, fmt.Errorf("%s expects four coordinates, got %d", attitude, len(values))
	}

	return &model.Attitude{
		Attitude:    attitude,
		Visibility:  values[0],
		Maturity:    values[1],
		Visibility2: values[2],
		Maturity2:   values[3],
		Line:        line.Number,
	}, nil
}
