package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/specialistvlad/wardleygo/internal/migrate"
	"github.com/specialistvlad/wardleygo/internal/model"
)

// Renderer formats diagnostics for the terminal.
type Renderer struct {
	pretty bool
}

// New creates a new renderer. Pretty output is colored and uses symbols.
func New(pretty bool) *Renderer {
	return &Renderer{pretty: pretty}
}

// ParseErrors formats the parse errors of one file, one per line, prefixed
// with path:line.
func (r *Renderer) ParseErrors(path string, errs []model.ParseError) string {
	var sb strings.Builder
	for _, e := range errs {
		location := fmt.Sprintf("%s:%d", path, e.Line)
		if r.pretty {
			fmt.Fprintf(&sb, "%s %s %s\n", color.RedString("✗"), color.HiBlackString(location), e.Message)
		} else {
			fmt.Fprintf(&sb, "%s: error: %s\n", location, e.Message)
		}
	}
	return sb.String()
}

// Unresolved formats links whose endpoints matched no element.
func (r *Renderer) Unresolved(path string, links []model.LinkRecord) string {
	var sb strings.Builder
	for _, l := range links {
		location := fmt.Sprintf("%s:%d", path, l.Line)
		message := fmt.Sprintf("link %s->%s does not resolve", l.Start, l.End)
		if r.pretty {
			fmt.Fprintf(&sb, "%s %s %s\n", color.YellowString("!"), color.HiBlackString(location), message)
		} else {
			fmt.Fprintf(&sb, "%s: warning: %s\n", location, message)
		}
	}
	return sb.String()
}

// OK formats the success line of a clean file.
func (r *Renderer) OK(path string, m *model.WardleyMap) string {
	summary := fmt.Sprintf("%d elements, %d links", len(m.Elements)+len(m.Anchors), len(m.Links))
	if r.pretty {
		return fmt.Sprintf("%s %s %s\n", color.GreenString("✓"), path, color.HiBlackString(summary))
	}
	return fmt.Sprintf("%s: ok (%s)\n", path, summary)
}

// ChangeSets formats the rewrites a migration made to one file.
func (r *Renderer) ChangeSets(path string, sets []migrate.ChangeSet) string {
	if len(sets) == 0 {
		return fmt.Sprintf("%s: up to date\n", path)
	}

	var sb strings.Builder
	if r.pretty {
		sb.WriteString(color.CyanString(path) + "\n")
	} else {
		sb.WriteString(path + ":\n")
	}
	for _, cs := range sets {
		for _, line := range strings.Split(cs.Before, "\n") {
			r.diffLine(&sb, "-", line)
		}
		for _, line := range strings.Split(cs.After, "\n") {
			r.diffLine(&sb, "+", line)
		}
	}
	return sb.String()
}

func (r *Renderer) diffLine(sb *strings.Builder, sign, line string) {
	text := sign + " " + line
	if r.pretty {
		if sign == "-" {
			text = color.RedString(text)
		} else {
			text = color.GreenString(text)
		}
	}
	sb.WriteString(text + "\n")
}
