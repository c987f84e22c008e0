package extract

import (
	"testing"

	"github.com/specialistvlad/wardleygo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor(t *testing.T) {
	testCases := []struct {
		name      string
		text      string
		expectErr bool
		expected  *model.LinkRecord
	}{
		{
			name:     "plain link",
			text:     "Customer->Customer2",
			expected: &model.LinkRecord{Start: "Customer", End: "Customer2", Line: 7},
		},
		{
			name:     "flow link",
			text:     "Customer+>Customer2",
			expected: &model.LinkRecord{Start: "Customer", End: "Customer2", Flow: true, Future: true, Line: 7},
		},
		{
			name:     "flow link with value",
			text:     "Customer+'5.88'>Customer2",
			expected: &model.LinkRecord{Start: "Customer", End: "Customer2", Flow: true, Future: true, FlowValue: "5.88", Line: 7},
		},
		{
			name:     "past flow",
			text:     "Customer+<Customer2",
			expected: &model.LinkRecord{Start: "Customer", End: "Customer2", Flow: true, Past: true, Line: 7},
		},
		{
			name:     "bidirectional flow with value",
			text:     "Customer+'£'<>Customer2",
			expected: &model.LinkRecord{Start: "Customer", End: "Customer2", Flow: true, Future: true, Past: true, FlowValue: "£", Line: 7},
		},
		{
			name:     "spaces and context",
			text:     "  Cup of Tea -> Hot Water ; limited by kettle  ",
			expected: &model.LinkRecord{Start: "Cup of Tea", End: "Hot Water", Context: "limited by kettle", Line: 7},
		},
		{
			name:     "quoted endpoints keep raw tokens",
			text:     `"Multi-line\nComponent\nName"->"A->B"`,
			expected: &model.LinkRecord{Start: `"Multi-line\nComponent\nName"`, End: `"A->B"`, Line: 7},
		},
		{
			name:      "missing endpoint",
			text:      "Customer->",
			expectErr: true,
		},
		{
			name: "evolution line is not a link",
			text: "evolution Novel->Emerging->Good->Best",
		},
		{
			name: "evolve rename is not a link",
			text: "evolve Kettle->Electric Kettle 0.62",
		},
		{
			name:     "start name begins with a method keyword",
			text:     "build system->Compiler",
			expected: &model.LinkRecord{Start: "build system", End: "Compiler", Line: 7},
		},
		{
			name: "method line is not a link",
			text: "buy Kettle",
		},
		{
			name: "plain text",
			text: "just some words",
		},
	}

	ex := &LinkExtractor{}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record, err := ex.Extract(Line{Text: tc.text, Number: 7})
			if tc.expectErr {
				require.Error(t, err)
				assert.Nil(t, record)
				return
			}
			require.NoError(t, err)
			if tc.expected == nil {
				assert.Nil(t, record)
				return
			}
			assert.Equal(t, tc.expected, record)
		})
	}
}
