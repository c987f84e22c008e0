// internal/nameid/name.go
package nameid

import (
	"strings"
)

// Normalize returns the canonical identity of a raw name token: surrounding
// quotes removed and escapes resolved, whitespace runs (including line
// breaks) collapsed to a single space, trimmed and lower-cased.
func Normalize(raw string) string {
	name := strings.TrimSpace(raw)
	if unquoted, ok := Unquote(name); ok {
		name = unquoted
	}
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Equal reports whether two raw tokens name the same element.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// IsQuoted reports whether s is wrapped in double quotes.
func IsQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// Unquote strips surrounding double quotes and resolves the escapes `\"`,
// `\\` and `\n`. Unknown escapes are kept verbatim. ok is false when s is not
// quoted.
func Unquote(s string) (string, bool) {
	if !IsQuoted(s) {
		return s, false
	}
	body := s[1 : len(s)-1]
	if !strings.Contains(body, `\`) {
		return body, true
	}

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i == len(body)-1 {
			sb.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case 'n':
			sb.WriteByte('\n')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(body[i])
		}
	}
	return sb.String(), true
}

// NeedsQuotes reports whether name has to be quoted to survive a round trip
// through the DSL.
func NeedsQuotes(name string) bool {
	if name != strings.TrimSpace(name) {
		return true
	}
	return strings.ContainsAny(name, "\n\"[];") || strings.Contains(name, "->") || strings.Contains(name, "+>") || strings.Contains(name, "+<")
}

// Quote renders name as a DSL token, quoting and escaping it only when needed.
func Quote(name string) string {
	if !NeedsQuotes(name) {
		return name
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(name) + `"`
}
