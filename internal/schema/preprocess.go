package schema

import (
	"regexp"
)

// metaDirectiveRegex matches @rustgen(...) at the start of a line. One level
// of nested parentheses is allowed inside the arguments.
var metaDirectiveRegex = regexp.MustCompile(`(?m)^@rustgen\s*\(((?:[^()]*|\([^)]*\))*)\)`)

// serviceStartRegex matches service declarations at the start of a line.
var serviceStartRegex = regexp.MustCompile(`(?m)^service\s+(\w+)\s*{`)

const (
	metaTypeName  = "_Schema"
	servicePrefix = "Service_"
)

// PreprocessGraphQL rewrites the two IDL extensions into plain GraphQL:
// a leading `@rustgen(...)` becomes a `_Schema` type carrying the directive
// on a placeholder field, and `service X {` becomes `type Service_X {`.
func PreprocessGraphQL(input string) string {
	input = metaDirectiveRegex.ReplaceAllStringFunc(input, func(match string) string {
		args := metaDirectiveRegex.FindStringSubmatch(match)[1]
		return "type " + metaTypeName + " {\n  _: String @rustgen(" + args + ")\n}"
	})

	return serviceStartRegex.ReplaceAllStringFunc(input, func(match string) string {
		name := serviceStartRegex.FindStringSubmatch(match)[1]
		return "type " + servicePrefix + name + " {"
	})
}
