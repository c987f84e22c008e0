package elements

import (
	"testing"

	"github.com/specialistvlad/wardleygo/internal/converter"
	"github.com/specialistvlad/wardleygo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const teaShop = `anchor Business [0.95, 0.63]
component Cup of Tea [0.79, 0.61]
component Kettle [0.43, 0.35]
component Power [0.1, 0.7]
market Tea Market [0.5, 0.5]
evolve Kettle->Electric Kettle 0.62 inertia
evolve Power 0.89
pipeline Cup of Tea
{
  component Green Tea [0.4]
}`

func names(components []model.Component) []string {
	out := make([]string, 0, len(components))
	for _, c := range components {
		out = append(out, c.Name)
	}
	return out
}

func TestView_Projections(t *testing.T) {
	v := New(converter.Parse(teaShop))

	testCases := []struct {
		name string
		got  []model.Component
		want []string
	}{
		{name: "non-evolved", got: v.NonEvolved(), want: []string{"Cup of Tea", "Kettle", "Power", "Tea Market", "Green Tea"}},
		{name: "evolve", got: v.Evolve(), want: []string{"Kettle", "Power"}},
		{name: "evolved", got: v.Evolved(), want: []string{"Electric Kettle", "Power"}},
		{name: "merged", got: v.Merged(), want: []string{"Cup of Tea", "Kettle", "Power", "Tea Market", "Green Tea", "Electric Kettle", "Power"}},
		{name: "none evolving", got: v.NoneEvolving(), want: []string{"Cup of Tea", "Tea Market", "Green Tea"}},
		{name: "none evolved or evolving", got: v.NoneEvolvedOrEvolving(), want: []string{"Cup of Tea", "Tea Market", "Green Tea"}},
		{name: "pipeline components", got: v.PipelineComponents(), want: []string{"Green Tea"}},
		{name: "anchors", got: v.Anchors(), want: []string{"Business"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, names(tc.got))
		})
	}
}

func TestView_EvolvedCopy(t *testing.T) {
	v := New(converter.Parse(teaShop))

	evolved := v.Evolved()
	require.Len(t, evolved, 2)

	kettle := evolved[0]
	assert.True(t, kettle.Evolved)
	assert.False(t, kettle.Evolving)
	assert.Equal(t, 0.43, kettle.Visibility)
	assert.Equal(t, 0.62, kettle.Maturity)
	assert.True(t, kettle.Inertia)
	assert.Equal(t, "Electric Kettle", kettle.Override)
	assert.Equal(t, 6, kettle.Line)

	// The evolving original is untouched.
	assert.Equal(t, 0.35, v.Evolve()[0].Maturity)
}

func TestView_PipelineComponentsInheritVisibility(t *testing.T) {
	v := New(converter.Parse(teaShop))

	members := v.PipelineComponents()
	require.Len(t, members, 1)
	assert.Equal(t, model.KindPipelineComponent, members[0].Kind)
	assert.Equal(t, 0.79, members[0].Visibility)
	assert.Equal(t, 0.4, members[0].Maturity)
	assert.Equal(t, "Cup of Tea", members[0].Pipeline)
}

func TestView_NoElementIsBothEvolvedAndEvolving(t *testing.T) {
	v := New(converter.Parse(teaShop))

	for _, c := range v.Merged() {
		assert.False(t, c.Evolved && c.Evolving, "%s is both evolved and evolving", c.Name)
	}
}

func TestView_IsMemoised(t *testing.T) {
	v := New(converter.Parse(teaShop))

	first, second := v.Merged(), v.Merged()
	require.NotEmpty(t, first)
	assert.Same(t, &first[0], &second[0])
}

func TestView_EmptyMap(t *testing.T) {
	v := New(model.NewWardleyMap())

	assert.Empty(t, v.NonEvolved())
	assert.Empty(t, v.Evolved())
	assert.Empty(t, v.Merged())
	assert.NotNil(t, v.PipelineComponents())
}

func TestNew_PanicsOnNilMap(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}
