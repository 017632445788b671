package rustlang

import (
	"fmt"
	"strings"
	"unicode"
)

// rustString quotes s as a Rust string literal. Only the escapes Rust
// defines are used; other control and line-separator characters become
// \u{..} and everything else is written as-is.
func rustString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if unicode.IsControl(r) || unicode.In(r, unicode.Zl, unicode.Zp) {
				fmt.Fprintf(&b, `\u{%x}`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
