package links

import (
	"testing"

	"github.com/specialistvlad/wardleygo/internal/converter"
	"github.com/specialistvlad/wardleygo/internal/elements"
	"github.com/specialistvlad/wardleygo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kettleMap = `anchor Business [0.95, 0.63]
component Cup of Tea [0.79, 0.61]
component Kettle [0.43, 0.35]
component Power [0.1, 0.7]
component Water [0.38, 0.82]
evolve Kettle->Electric Kettle 0.62
evolve Power 0.89
Business->Cup of Tea
Cup of Tea->Kettle
Kettle->Power
Electric Kettle->Power
Kettle->Electric Kettle
Electric Kettle->Water
Cup of Tea->Water
Business->Kettle
Ghost->Cup of Tea`

func linkPairs(b Bucket) []string {
	out := make([]string, 0, len(b.Links))
	for _, l := range b.Links {
		out = append(out, l.Link.Start+"->"+l.Link.End)
	}
	return out
}

func TestBuild_Buckets(t *testing.T) {
	result := Build(converter.Parse(kettleMap), Options{})

	testCases := []struct {
		kind Kind
		want []string
	}{
		{kind: KindLinks, want: []string{"Cup of Tea->Water"}},
		{kind: KindEvolvingEndLinks, want: []string{"Cup of Tea->Kettle", "Kettle->Power", "Electric Kettle->Power"}},
		{kind: KindEvolvingToNoneEvolvingEndLinks, want: []string{}},
		{kind: KindEvolvedToEvolving, want: []string{"Electric Kettle->Power"}},
		{kind: KindBothEvolved, want: []string{"Electric Kettle->Power"}},
		{kind: KindEvolveStartLinks, want: []string{"Electric Kettle->Water"}},
		{kind: KindBothEvolving, want: []string{"Kettle->Power"}},
		{kind: KindEvolveToEvolved, want: []string{"Kettle->Power", "Kettle->Electric Kettle"}},
		{kind: KindAnchorLinks, want: []string{"Business->Cup of Tea"}},
	}

	require.Len(t, result.Buckets, len(Kinds))
	for _, tc := range testCases {
		t.Run(tc.kind.Name(), func(t *testing.T) {
			assert.Equal(t, tc.want, linkPairs(result.Bucket(tc.kind)))
		})
	}
}

func TestBuild_ShowLinkedEvolved(t *testing.T) {
	m := converter.Parse(kettleMap)

	hidden := Build(m, Options{})
	shown := Build(m, Options{ShowLinkedEvolved: true})

	assert.NotContains(t, linkPairs(hidden.Bucket(KindLinks)), "Cup of Tea->Kettle")
	assert.Contains(t, linkPairs(shown.Bucket(KindLinks)), "Cup of Tea->Kettle")
	assert.Contains(t, linkPairs(shown.Bucket(KindLinks)), "Electric Kettle->Water")
	assert.Contains(t, linkPairs(shown.Bucket(KindAnchorLinks)), "Business->Kettle")
}

func TestBuild_PopulationConstraintHolds(t *testing.T) {
	for _, opts := range []Options{{}, {ShowLinkedEvolved: true}} {
		m := converter.Parse(kettleMap)
		view := elements.New(m)
		result := Build(m, opts)

		for _, k := range Kinds {
			start, end := populations(k, view, opts)
			for _, l := range result.Bucket(k).Links {
				assert.Contains(t, start, l.Start, "%s: start %s outside its population", k, l.Start.Name)
				assert.Contains(t, end, l.End, "%s: end %s outside its population", k, l.End.Name)
			}
		}
	}
}

func TestBuild_EvolveToEvolvedPopulations(t *testing.T) {
	m := converter.Parse(kettleMap)
	view := elements.New(m)

	for _, l := range Build(m, Options{}).Bucket(KindEvolveToEvolved).Links {
		assert.Contains(t, view.Evolve(), l.Start)
		assert.Contains(t, view.Evolved(), l.End)
	}
}

func TestBuild_MultiLineNameMatching(t *testing.T) {
	base := "component \"Multi-line\\nComponent\\nName\" [0.5, 0.5]\ncomponent Other [0.4, 0.4]\n"

	testCases := []struct {
		name     string
		link     string
		resolves bool
	}{
		{name: "space for newline", link: "Other->Multi-line Component Name", resolves: true},
		{name: "case-insensitive", link: "Other->\"multi-line\\ncomponent\\nname\"", resolves: true},
		{name: "different name", link: "Other->\"Completely Different\\nName\"", resolves: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Build(converter.Parse(base+tc.link), Options{})
			got := result.Bucket(KindLinks).Links
			if tc.resolves {
				require.Len(t, got, 1)
				assert.Equal(t, "Multi-line\nComponent\nName", got[0].End.Name)
			} else {
				assert.Empty(t, got)
				assert.Len(t, result.Unresolved(), 1)
			}
		})
	}
}

func TestResult_Unresolved(t *testing.T) {
	result := Build(converter.Parse(kettleMap), Options{})

	// Anchor links to evolving elements only resolve when evolved links
	// are shown.
	unresolved := result.Unresolved()
	require.Len(t, unresolved, 2)
	assert.Equal(t, "Business", unresolved[0].Start)
	assert.Equal(t, 15, unresolved[0].Line)
	assert.Equal(t, "Ghost", unresolved[1].Start)
	assert.Equal(t, 16, unresolved[1].Line)

	shown := Build(converter.Parse(kettleMap), Options{ShowLinkedEvolved: true})
	require.Len(t, shown.Unresolved(), 1)
}

func TestResult_Unresolved_HandBuiltMap(t *testing.T) {
	// Links built in code carry no ids.
	m := model.NewWardleyMap()
	m.Elements = []model.Component{
		{Name: "A", Kind: model.KindComponent},
		{Name: "B", Kind: model.KindComponent},
	}
	m.Links = []model.LinkRecord{
		{Start: "A", End: "B"},
		{Start: "Ghost", End: "B"},
	}

	result := Build(m, Options{})

	assert.Equal(t, []string{"A->B"}, linkPairs(result.Bucket(KindLinks)))
	unresolved := result.Unresolved()
	require.Len(t, unresolved, 1)
	assert.Equal(t, "Ghost", unresolved[0].Start)
}

func TestBuild_NoLinks(t *testing.T) {
	result := Build(model.NewWardleyMap(), Options{})

	require.Len(t, result.Buckets, len(Kinds))
	for _, b := range result.Buckets {
		assert.Empty(t, b.Links)
	}
	assert.Empty(t, result.Unresolved())
}

func TestBuild_PanicsOnNilMap(t *testing.T) {
	assert.Panics(t, func() { Build(nil, Options{}) })
}

func TestKind_Names(t *testing.T) {
	for _, k := range Kinds {
		parsed, err := ParseKind(k.Name())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	_, err := ParseKind("sideways")
	assert.Error(t, err)
	assert.Equal(t, "Kind(42)", Kind(42).Name())
}
