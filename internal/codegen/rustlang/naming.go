package rustlang

import (
	"strings"
	"unicode"
)

// keywords are the strict and reserved Rust keywords that need a raw
// identifier when used as a field or function name.
var keywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "dyn": true, "else": true, "enum": true, "extern": true,
	"false": true, "fn": true, "for": true, "if": true, "impl": true, "in": true,
	"let": true, "loop": true, "match": true, "mod": true, "move": true,
	"mut": true, "pub": true, "ref": true, "return": true, "static": true,
	"struct": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true, "abstract": true, "become": true,
	"box": true, "do": true, "final": true, "macro": true, "override": true,
	"priv": true, "typeof": true, "unsized": true, "virtual": true,
	"yield": true, "try": true,
}

// snakeCase converts camelCase, PascalCase and SCREAMING_CASE names to
// snake_case. Acronyms stay together: "userID" becomes "user_id".
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if r == '-' || r == ' ' {
			r = '_'
		}
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				b.WriteRune('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// pascalCase converts snake_case and SCREAMING_CASE to PascalCase. Names
// without underscores that are already mixed case are kept.
func pascalCase(name string) string {
	if !strings.ContainsAny(name, "_- ") && !isUpper(name) {
		if name == "" {
			return name
		}
		return strings.ToUpper(name[:1]) + name[1:]
	}

	var b strings.Builder
	for _, part := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	}) {
		part = strings.ToLower(part)
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}

func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// ident escapes keywords as raw identifiers ("type" becomes "r#type").
// "self", "super", "crate" and "Self" cannot be raw and get a trailing
// underscore instead.
func ident(name string) string {
	switch name {
	case "self", "super", "crate", "Self":
		return name + "_"
	}
	if keywords[name] {
		return "r#" + name
	}
	return name
}
