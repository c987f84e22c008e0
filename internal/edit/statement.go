package edit

import (
	"regexp"
	"strings"

	"github.com/specialistvlad/wardleygo/internal/extract"
	"github.com/specialistvlad/wardleygo/internal/model"
)

// namedKeywords are the statements whose first token after the keyword is an
// element name.
var namedKeywords = map[string]bool{
	"component": true, "anchor": true, "market": true, "ecosystem": true, "submap": true,
	"pipeline": true, "evolve": true,
	"build": true, "buy": true, "outsource": true,
	"accelerator": true, "deaccelerator": true,
}

// evolveTail matches everything after the name on an `evolve` line without
// an override arrow.
var evolveTail = regexp.MustCompile(`\s+[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:\s+inertia)?(?:\s+label\s*\[[^\]]*\])?(?:\s+inertia)?\s*$`)

// statement locates the name token of a declaration inside its raw line.
type statement struct {
	keyword string
	name    string
	start   int
	end     int
}

// parseStatement returns the declaration on raw, if it is one.
func parseStatement(raw string) (statement, bool) {
	line := extract.Line{Text: raw}
	keyword := line.Keyword()
	if !namedKeywords[keyword] {
		return statement{}, false
	}
	if isMethod(keyword) {
		if rec, _ := (&extract.LinkExtractor{}).Extract(line); rec != nil {
			return statement{}, false
		}
	}

	offset := strings.Index(raw, keyword) + len(keyword)
	rest := raw[offset:]
	lead := len(rest) - len(strings.TrimLeft(rest, " \t"))
	offset += lead
	rest = rest[lead:]

	length := nameLength(keyword, rest)
	if length <= 0 {
		return statement{}, false
	}
	return statement{keyword: keyword, name: rest[:length], start: offset, end: offset + length}, true
}

// nameLength returns the byte length of the name token at the start of rest.
func nameLength(keyword, rest string) int {
	if strings.HasPrefix(rest, `"`) {
		for i := 1; i < len(rest); i++ {
			switch rest[i] {
			case '\\':
				i++
			case '"':
				return i + 1
			}
		}
		return -1
	}

	end := len(rest)
	cut := func(idx int) {
		if idx >= 0 && idx < end {
			end = idx
		}
	}
	cut(strings.IndexByte(rest, '['))
	cut(strings.Index(rest, " ("))
	cut(strings.Index(rest, " inertia"))
	cut(labelIndex(keyword, rest))
	cut(strings.Index(rest, " url("))
	cut(strings.Index(rest, " {"))
	if keyword == "evolve" {
		cut(strings.Index(rest, "->"))
		if loc := evolveTail.FindStringIndex(rest[:end]); loc != nil {
			end = loc[0]
		}
	}
	return len(strings.TrimRight(rest[:end], " \t\r"))
}

// labelIndex returns where a trailing ` label` modifier starts in rest, or
// -1. A bare name may itself end in "label" when a single tuple follows it.
func labelIndex(keyword, rest string) int {
	idx := strings.Index(rest, " label")
	if idx < 0 || keyword == "evolve" {
		return idx
	}
	after := strings.TrimLeft(rest[idx+len(" label"):], " \t\r")
	switch {
	case after == "", strings.HasPrefix(after, "inertia"), strings.HasPrefix(after, "("):
		return idx
	case !strings.HasPrefix(after, "["):
		return -1
	}
	end := strings.IndexByte(after, ']')
	if end >= 0 && strings.IndexByte(after[end+1:], '[') >= 0 {
		return idx
	}
	return -1
}

func isMethod(keyword string) bool {
	switch keyword {
	case model.MethodBuild, model.MethodBuy, model.MethodOutsource:
		return true
	}
	return false
}

// linkEndpoints returns the byte ranges of the start and end tokens of the
// link on raw.
func linkEndpoints(raw string) (rec *model.LinkRecord, start, end [2]int, ok bool) {
	record, err := (&extract.LinkExtractor{}).Extract(extract.Line{Text: raw})
	if err != nil || record == nil {
		return nil, start, end, false
	}
	rec = record.(*model.LinkRecord)

	s := strings.Index(raw, rec.Start)
	if s < 0 {
		return nil, start, end, false
	}
	e := strings.Index(raw[s+len(rec.Start):], rec.End)
	if e < 0 {
		return nil, start, end, false
	}
	e += s + len(rec.Start)
	return rec, [2]int{s, s + len(rec.Start)}, [2]int{e, e + len(rec.End)}, true
}
