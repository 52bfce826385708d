package export

import (
	"fmt"
	"strings"
	"unicode"
)

// ListLiteral renders a list of strings the way the quiz tooling has always
// stored list cells: ['a', 'b'], [] when empty.
func ListLiteral(items []string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = StringLiteral(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// StringLiteral quotes s with single quotes, or double quotes when s holds a
// single quote and no double quote. Backslashes, the chosen quote and
// non-printable characters are escaped.
func StringLiteral(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == ' ' || unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}
