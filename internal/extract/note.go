package extract

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/wardleygo/internal/model"
)

// NoteExtractor reads `note <text> [v, m]`. The coordinates are the last
// bracketed tuple on the line, so the text itself may contain brackets.
type NoteExtractor struct{}

func (n *NoteExtractor) Collection() string { return CollectionNotes }

func (n *NoteExtractor) Extract(line Line) (any, error) {
	if line.InBlock() || line.Keyword() != "note" {
		return nil, nil
	}
	rest := line.Rest()

	open := strings.LastIndexByte(rest, '[')
	if open < 0 {
		return nil, fmt.Errorf("note needs coordinates, got %q", rest)
	}
	end := strings.IndexByte(rest[open:], ']')
	if end < 0 {
		return nil, fmt.Errorf("unbalanced brackets in %q", rest)
	}
	p, err := pointFromBody(rest[open+1 : open+end])
	if err != nil {
		return nil, fmt.Errorf("note: %w", err)
	}

	return &model.Note{
		Text:       unquoteName(strings.TrimSpace(rest[:open])),
		Visibility: p.Visibility,
		Maturity:   p.Maturity,
		Line:       line.Number,
	}, nil
}
