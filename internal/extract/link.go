package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/specialistvlad/wardleygo/internal/model"
)

// flowValueArrow matches the valued flow arrows `+'label'>`, `+'label'<` and
// `+'label'<>` at the start of a string.
var flowValueArrow = regexp.MustCompile(`^\+'([^']*)'(<>|<|>)`)

// arrow describes the connector found between two link endpoints.
type arrow struct {
	width     int
	flow      bool
	future    bool
	past      bool
	flowValue string
}

// LinkExtractor reads `start->end` statements and their flow variants.
type LinkExtractor struct{}

func (l *LinkExtractor) Collection() string { return CollectionLinks }

func (l *LinkExtractor) Extract(line Line) (any, error) {
	if keyword := line.Keyword(); line.InBlock() || (IsReserved(keyword) && !isMethodKeyword(keyword)) {
		return nil, nil
	}
	text := line.Trimmed()
	idx, a := findArrow(text)
	if idx < 0 {
		return nil, nil
	}

	start := strings.TrimSpace(text[:idx])
	end := strings.TrimSpace(text[idx+a.width:])
	context := ""
	if semi := arrowIndex(end, ";"); semi >= 0 {
		context = strings.TrimSpace(end[semi+1:])
		end = strings.TrimSpace(end[:semi])
	}
	if start == "" || end == "" {
		return nil, fmt.Errorf("link %q is missing an endpoint", text)
	}

	return &model.LinkRecord{
		Start:     start,
		End:       end,
		Flow:      a.flow,
		Future:    a.future,
		Past:      a.past,
		FlowValue: a.flowValue,
		Context:   context,
		Line:      line.Number,
	}, nil
}

// findArrow returns the position and shape of the first link connector in s
// that is outside a quoted token.
func findArrow(s string) (int, arrow) {
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inQuote {
			if c == '\\' {
				i++
			} else if c == '"' {
				inQuote = false
			}
			continue
		}
		switch c {
		case '"':
			inQuote = true
		case '-':
			if strings.HasPrefix(s[i:], "->") {
				return i, arrow{width: 2}
			}
		case '+':
			rest := s[i:]
			switch {
			case strings.HasPrefix(rest, "+<>"):
				return i, arrow{width: 3, flow: true, future: true, past: true}
			case strings.HasPrefix(rest, "+<"):
				return i, arrow{width: 2, flow: true, past: true}
			case strings.HasPrefix(rest, "+>"):
				return i, arrow{width: 2, flow: true, future: true}
			}
			if m := flowValueArrow.FindStringSubmatch(rest); m != nil {
				a := arrow{width: len(m[0]), flow: true, flowValue: m[1]}
				switch m[2] {
				case "<>":
					a.future, a.past = true, true
				case "<":
					a.past = true
				default:
					a.future = true
				}
				return i, a
			}
		}
	}
	return -1, arrow{}
}
