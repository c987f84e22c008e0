// internal/nameid/name_test.go
package nameid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "bare name", raw: "Customer", expected: "customer"},
		{name: "surrounding whitespace", raw: "  Customer  ", expected: "customer"},
		{name: "internal whitespace runs", raw: "Cup   of\tTea", expected: "cup of tea"},
		{name: "multi-line name", raw: "Multi-line\nComponent\nName", expected: "multi-line component name"},
		{name: "quoted with escaped newlines", raw: `"Multi-line\nComponent\nName"`, expected: "multi-line component name"},
		{name: "quoted with escaped quote", raw: `"The \"Best\" Tea"`, expected: `the "best" tea`},
		{name: "quoted with escaped backslash", raw: `"A\\B"`, expected: `a\b`},
		{name: "lone quote is not stripped", raw: `"Customer`, expected: `"customer`},
		{name: "empty", raw: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.raw))
		})
	}
}

func TestEqual_MultiLineNames(t *testing.T) {
	component := "Multi-line\nComponent\nName"

	assert.True(t, Equal(component, "Multi-line Component Name"))
	assert.True(t, Equal(component, "multi-line\ncomponent\nname"))
	assert.True(t, Equal(component, `"Multi-line\nComponent\nName"`))
	assert.False(t, Equal(component, "Completely Different\nName"))
}

func TestUnquote(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		expected   string
		expectedOK bool
	}{
		{name: "not quoted", input: "Kettle", expected: "Kettle", expectedOK: false},
		{name: "plain quoted", input: `"Kettle"`, expected: "Kettle", expectedOK: true},
		{name: "escapes", input: `"a\"b\\c\nd"`, expected: "a\"b\\c\nd", expectedOK: true},
		{name: "unknown escape kept", input: `"a\tb"`, expected: `a\tb`, expectedOK: true},
		{name: "trailing backslash kept", input: `"ab\"`, expected: `ab\`, expectedOK: true},
		{name: "empty quotes", input: `""`, expected: "", expectedOK: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Unquote(tc.input)
			require.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestQuote_RoundTrip(t *testing.T) {
	names := []string{
		"Kettle",
		"Multi-line\nComponent\nName",
		`The "Best" Tea`,
		"Power [grid]",
		"A->B",
		`back\slash "and" quote`,
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			quoted := Quote(name)
			if !NeedsQuotes(name) {
				assert.Equal(t, name, quoted)
				return
			}
			unquoted, ok := Unquote(quoted)
			require.True(t, ok)
			assert.Equal(t, name, unquoted)
		})
	}
}
