package extract

import "strings"

// Line is one source line handed to the extractors.
type Line struct {
	Text string
	// Number is the 1-based position of the line in the original document.
	Number int
	// Parent names the enclosing `pipeline X { ... }` block, if any.
	Parent string
}

// Trimmed returns the line text without surrounding whitespace.
func (l Line) Trimmed() string {
	return strings.TrimSpace(l.Text)
}

// Keyword returns the leading whitespace-delimited token of the line.
func (l Line) Keyword() string {
	fields := strings.Fields(l.Text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Rest returns the trimmed text that follows the leading keyword.
func (l Line) Rest() string {
	text := l.Trimmed()
	kw := l.Keyword()
	return strings.TrimSpace(strings.TrimPrefix(text, kw))
}

// InBlock reports whether the line sits inside a pipeline block.
func (l Line) InBlock() bool {
	return l.Parent != ""
}
