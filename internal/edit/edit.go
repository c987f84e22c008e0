// internal/edit/edit.go
package edit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/wardleygo/internal/extract"
	"github.com/specialistvlad/wardleygo/internal/model"
	"github.com/specialistvlad/wardleygo/internal/nameid"
)

var (
	// ErrNotFound is returned when no line declares the requested element.
	ErrNotFound = errors.New("element not found")

	// ErrNotMovable is returned by Move for statements without a position.
	ErrNotMovable = errors.New("statement has no position")
)

// movable maps every kind Move accepts to the size of its tuple.
var movable = map[string]int{
	model.KindComponent:         2,
	model.KindAnchor:            2,
	model.KindMarket:            2,
	model.KindEcosystem:         2,
	model.KindSubmap:            2,
	model.KindPipelineComponent: 1,
	"accelerator":               2,
	"deaccelerator":             2,
	"pipeline":                  2,
	model.AttitudePioneers:      4,
	model.AttitudeSettlers:      4,
	model.AttitudeTownPlanners:  4,
}

// Arity returns the number of coordinates Move expects for kind.
func Arity(kind string) (int, bool) {
	n, ok := movable[kind]
	return n, ok
}

// Move rewrites the coordinate tuple on the first `kind` line declaring name.
// Point elements and accelerators take [visibility, maturity], a pipeline
// its [maturity1, maturity2] bounds and a pipeline member a single
// maturity. Attitudes are unnamed: name is their 1-based occurrence among
// lines of that kind, empty meaning the first.
func Move(text, kind, name string, coords ...float64) (string, error) {
	arity, ok := movable[kind]
	if !ok {
		return "", fmt.Errorf("move %s: %w", kind, ErrNotMovable)
	}
	if len(coords) != arity {
		return "", fmt.Errorf("move %s %s: expected %d coordinates, got %d", kind, name, arity, len(coords))
	}
	tuple := formatTuple(coords)

	lines := strings.Split(text, "\n")
	members := blockMembers(lines)
	if isAttitude(kind) {
		return moveAttitude(lines, members, kind, name, tuple)
	}

	keyword := kind
	if kind == model.KindPipelineComponent {
		keyword = model.KindComponent
	}
	for i, raw := range lines {
		if members[i] != (kind == model.KindPipelineComponent) {
			continue
		}
		st, ok := parseStatement(raw)
		if !ok || st.keyword != keyword || !nameid.Equal(st.name, name) {
			continue
		}
		lines[i] = replaceTuple(raw, st.end, tuple)
		return strings.Join(lines, "\n"), nil
	}
	return "", fmt.Errorf("move %s %s: %w", kind, name, ErrNotFound)
}

func moveAttitude(lines []string, members []bool, kind, occurrence, tuple string) (string, error) {
	want := 1
	if occurrence != "" {
		n, err := strconv.Atoi(occurrence)
		if err != nil || n < 1 {
			return "", fmt.Errorf("move %s: occurrence must be a positive number, got %q", kind, occurrence)
		}
		want = n
	}

	seen := 0
	for i, raw := range lines {
		if members[i] || (extract.Line{Text: raw}).Keyword() != kind {
			continue
		}
		seen++
		if seen < want {
			continue
		}
		lines[i] = replaceTuple(raw, strings.Index(raw, kind)+len(kind), tuple)
		return strings.Join(lines, "\n"), nil
	}
	return "", fmt.Errorf("move %s %d: %w", kind, want, ErrNotFound)
}

func isAttitude(kind string) bool {
	switch kind {
	case model.AttitudePioneers, model.AttitudeSettlers, model.AttitudeTownPlanners:
		return true
	}
	return false
}

// blockMembers marks the lines that sit inside a `pipeline X { ... }` block.
func blockMembers(lines []string) []bool {
	members := make([]bool, len(lines))
	pending, open := false, false
	for i, raw := range lines {
		trimmed := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		switch {
		case open:
			if trimmed == "}" {
				open = false
				continue
			}
			members[i] = true
		case pending && trimmed == "{":
			pending, open = false, true
		case trimmed == "":
		default:
			pending = false
			if st, ok := parseStatement(raw); ok && st.keyword == "pipeline" {
				open = strings.HasSuffix(trimmed, "{")
				pending = !open
			}
		}
	}
	return members
}

// Rename rewrites every reference to oldName: declarations, evolve and method
// lines, and link endpoints. It returns the new text and the number of
// lines changed.
func Rename(text, oldName, newName string) (string, int) {
	token := nameid.Quote(newName)
	changed := 0

	lines := strings.Split(text, "\n")
	for i, raw := range lines {
		if st, ok := parseStatement(raw); ok {
			if nameid.Equal(st.name, oldName) {
				lines[i] = raw[:st.start] + token + raw[st.end:]
				changed++
			}
			continue
		}

		rec, start, end, ok := linkEndpoints(raw)
		if !ok {
			continue
		}
		out := raw
		// Rewrite the end first so the start offsets stay valid.
		if nameid.Equal(rec.End, oldName) {
			out = out[:end[0]] + token + out[end[1]:]
		}
		if nameid.Equal(rec.Start, oldName) {
			out = out[:start[0]] + token + out[start[1]:]
		}
		if out != raw {
			lines[i] = out
			changed++
		}
	}
	return strings.Join(lines, "\n"), changed
}

// Delete removes the declaration of name together with its evolve and
// method lines, any pipeline block named after it and every link that
// references it. It returns the new text and the number of lines removed.
func Delete(text, name string) (string, int) {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	removed := 0

	skipBlock, inBlock := false, false
	for _, raw := range lines {
		trimmed := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))

		if skipBlock {
			switch {
			case trimmed == "{":
				inBlock = true
				removed++
				continue
			case inBlock:
				if trimmed == "}" {
					skipBlock, inBlock = false, false
				}
				removed++
				continue
			case trimmed == "":
				kept = append(kept, raw)
				continue
			default:
				skipBlock = false
			}
		}

		if references(raw, name) {
			removed++
			if st, ok := parseStatement(raw); ok && st.keyword == "pipeline" {
				skipBlock = true
				inBlock = strings.HasSuffix(trimmed, "{")
			}
			continue
		}
		kept = append(kept, raw)
	}
	return strings.Join(kept, "\n"), removed
}

// references reports whether raw declares name or links to or from it.
func references(raw, name string) bool {
	if st, ok := parseStatement(raw); ok {
		return nameid.Equal(st.name, name)
	}
	rec, _, _, ok := linkEndpoints(raw)
	return ok && (nameid.Equal(rec.Start, name) || nameid.Equal(rec.End, name))
}

// replaceTuple swaps the first coordinate tuple at or after from, skipping
// `label [x, y]` overrides, or inserts tuple at from when the line has none.
func replaceTuple(raw string, from int, tuple string) string {
	offset := from
	for {
		open := strings.IndexByte(raw[offset:], '[')
		if open < 0 {
			break
		}
		open += offset
		end := strings.IndexByte(raw[open:], ']')
		if end < 0 {
			break
		}
		end += open
		before := strings.TrimSpace(raw[offset:open])
		if before == "label" || strings.HasSuffix(before, " label") {
			offset = end + 1
			continue
		}
		return raw[:open] + tuple + raw[end+1:]
	}
	return raw[:from] + " " + tuple + raw[from:]
}

func formatTuple(coords []float64) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = strconv.FormatFloat(c, 'f', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
