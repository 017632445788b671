package rust

import "strings"

// NormalizeWhitespace trims every line and drops blank ones. Two renderings
// that differ only in indentation or blank lines normalize to the same text.
func NormalizeWhitespace(src string) string {
	lines := strings.Split(src, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
