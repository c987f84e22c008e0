package converter

import (
	"strings"

	"github.com/specialistvlad/wardleygo/internal/extract"
	"github.com/specialistvlad/wardleygo/internal/model"
)

// normalizeLineEndings rewrites `\r\n` and lone `\r` to `\n`.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// stripBlockComments blanks out `/* ... */` comments. Newlines inside a
// comment are kept so line numbers do not shift. An unterminated comment
// runs to the end of the document.
func stripBlockComments(text string) string {
	if !strings.Contains(text, "/*") {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for {
		start := strings.Index(text, "/*")
		if start < 0 {
			sb.WriteString(text)
			return sb.String()
		}
		sb.WriteString(text[:start])
		end := strings.Index(text[start+2:], "*/")
		var comment string
		if end < 0 {
			comment, text = text[start:], ""
		} else {
			comment, text = text[start:start+2+end+2], text[start+2+end+2:]
		}
		sb.WriteString(strings.Repeat("\n", strings.Count(comment, "\n")))
	}
}

// splitLines turns a normalised document into extractor input. Blank and
// `//` comment lines are dropped without renumbering. Lines inside a
// pipeline block are tagged with the pipeline name; the braces themselves
// are consumed here.
func splitLines(text string) ([]extract.Line, []model.ParseError) {
	var (
		lines       []extract.Line
		errs        []model.ParseError
		pending     string
		block       string
		blockOpened int
	)
	pipelines := &extract.PipelineExtractor{}

	for i, raw := range strings.Split(text, "\n") {
		number := i + 1
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}

		if block != "" {
			if trimmed == "}" {
				block = ""
				continue
			}
			lines = append(lines, extract.Line{Text: raw, Number: number, Parent: block})
			continue
		}
		if pending != "" && trimmed == "{" {
			block, blockOpened, pending = pending, number, ""
			continue
		}
		pending = ""

		line := extract.Line{Text: raw, Number: number}
		lines = append(lines, line)

		if line.Keyword() != "pipeline" {
			continue
		}
		record, err := pipelines.Extract(line)
		if err != nil || record == nil {
			continue
		}
		name := record.(*model.Pipeline).Name
		if strings.HasSuffix(trimmed, "{") {
			block, blockOpened = name, number
		} else {
			pending = name
		}
	}

	if block != "" {
		errs = append(errs, model.ParseError{Line: blockOpened, Message: "pipeline " + block + " block is not closed"})
	}
	return lines, errs
}
