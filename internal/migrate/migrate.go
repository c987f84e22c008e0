// internal/migrate/migrate.go
package migrate

import (
	"context"
	"strings"

	"github.com/specialistvlad/wardleygo/internal/ctxlog"
)

// ChangeSet records one rewritten logical unit. After may span several lines
// when one legacy line splits into canonical ones.
type ChangeSet struct {
	Before string `json:"before" yaml:"before"`
	After  string `json:"after" yaml:"after"`
}

// Result is the outcome of applying a strategy to a document.
type Result struct {
	Result     string      `json:"result" yaml:"result"`
	Changed    bool        `json:"changed" yaml:"changed"`
	ChangeSets []ChangeSet `json:"changeSets" yaml:"changeSets"`
}

// Strategy migrates one legacy construct.
type Strategy interface {
	Name() string
	Apply(text string) Result
}

// Migrations applies its strategies in order, feeding each one the output of
// the previous one.
type Migrations struct {
	strategies []Strategy
}

// New returns the default chain: evolve first, then attitudes.
func New() *Migrations {
	return &Migrations{strategies: []Strategy{&EvolveStrategy{}, &AttitudeStrategy{}}}
}

// Apply runs the chain over text.
func (m *Migrations) Apply(text string) Result {
	return m.ApplyContext(context.Background(), text)
}

// ApplyContext is Apply with debug logging of every strategy that changed
// the document.
func (m *Migrations) ApplyContext(ctx context.Context, text string) Result {
	logger := ctxlog.FromContext(ctx)

	out := Result{Result: text, ChangeSets: []ChangeSet{}}
	for _, s := range m.strategies {
		r := s.Apply(out.Result)
		if !r.Changed {
			continue
		}
		logger.Debug("Migration applied.", "strategy", s.Name(), "changes", len(r.ChangeSets))
		out.Result = r.Result
		out.Changed = true
		out.ChangeSets = append(out.ChangeSets, r.ChangeSets...)
	}
	return out
}

// rewriteLines applies fn to every line of text with its `\r` stripped. fn
// returns the replacement lines, or ok=false to keep the line as is.
// Replacement lines reuse the terminator of the line they replace.
func rewriteLines(text string, fn func(line string) (replacement []string, ok bool)) Result {
	result := Result{Result: text, ChangeSets: []ChangeSet{}}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		body, cr := strings.CutSuffix(line, "\r")
		replacement, ok := fn(body)
		if !ok {
			continue
		}
		after := strings.Join(replacement, "\n")
		if after == body {
			continue
		}
		terminator := ""
		if cr {
			terminator = "\r"
		}
		lines[i] = strings.Join(replacement, terminator+"\n") + terminator
		result.Changed = true
		result.ChangeSets = append(result.ChangeSets, ChangeSet{Before: body, After: after})
	}

	if result.Changed {
		result.Result = strings.Join(lines, "\n")
	}
	return result
}
