package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/specialistvlad/wardleygo/internal/converter"
	"github.com/specialistvlad/wardleygo/internal/migrate"
	"github.com/specialistvlad/wardleygo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	m := converter.Parse("title Tea\ncomponent Kettle [0.4, 0.3]")

	testCases := []struct {
		format string
		want   []string
	}{
		{format: "json", want: []string{`"title": "Tea"`, `"name": "Kettle"`, `"type": "component"`, `"errors": []`}},
		{format: "yaml", want: []string{"title: Tea", "name: Kettle", "type: component", "errors: []"}},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, tc.format, m))
			for _, want := range tc.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, "xml", struct{}{})
	assert.ErrorContains(t, err, "unknown output format")
}

func TestRenderer_Plain(t *testing.T) {
	r := New(false)

	errs := r.ParseErrors("tea.owm", []model.ParseError{{Line: 3, Message: "bad number"}})
	assert.Equal(t, "tea.owm:3: error: bad number\n", errs)

	warn := r.Unresolved("tea.owm", []model.LinkRecord{{Start: "A", End: "Ghost", Line: 7}})
	assert.Equal(t, "tea.owm:7: warning: link A->Ghost does not resolve\n", warn)

	ok := r.OK("tea.owm", converter.Parse("anchor U [0.9, 0.5]\ncomponent K [0.4, 0.3]\nU->K"))
	assert.Equal(t, "tea.owm: ok (2 elements, 1 links)\n", ok)
}

func TestRenderer_ChangeSets(t *testing.T) {
	r := New(false)

	assert.Equal(t, "tea.owm: up to date\n", r.ChangeSets("tea.owm", nil))

	got := r.ChangeSets("tea.owm", []migrate.ChangeSet{{
		Before: "component Foo [0.9, 0.1] evolve 0.9",
		After:  "component Foo [0.9, 0.1]\nevolve Foo 0.9",
	}})
	lines := strings.Split(strings.TrimSpace(got), "\n")
	assert.Equal(t, []string{
		"tea.owm:",
		"- component Foo [0.9, 0.1] evolve 0.9",
		"+ component Foo [0.9, 0.1]",
		"+ evolve Foo 0.9",
	}, lines)
}

func TestRenderer_PrettyKeepsMessages(t *testing.T) {
	r := New(true)

	out := r.ParseErrors("tea.owm", []model.ParseError{{Line: 3, Message: "bad number"}})
	assert.Contains(t, out, "bad number")
	assert.Contains(t, out, "tea.owm:3")
}
