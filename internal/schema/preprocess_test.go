package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocessGraphQL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "metadata directive",
			input: `@rustgen(namespace: "auth", version: "v1")`,
			expected: `type _Schema {
  _: String @rustgen(namespace: "auth", version: "v1")
}`,
		},
		{
			name:  "metadata directive with extra whitespace",
			input: `@rustgen  (  namespace: "auth" )`,
			expected: `type _Schema {
  _: String @rustgen(  namespace: "auth" )
}`,
		},
		{
			name:  "nested parentheses",
			input: `@rustgen(namespace: "auth", note: "v (beta)")`,
			expected: `type _Schema {
  _: String @rustgen(namespace: "auth", note: "v (beta)")
}`,
		},
		{
			name: "directive not at start of line is left alone",
			input: `type User {
  id: ID! @rustgen(internal: true)
}`,
			expected: `type User {
  id: ID! @rustgen(internal: true)
}`,
		},
		{
			name: "service block",
			input: `service UserService {
  getUser(input: GetUserInput): User
}`,
			expected: `type Service_UserService {
  getUser(input: GetUserInput): User
}`,
		},
		{
			name:     "service without space before brace",
			input:    "service Billing{\n}",
			expected: "type Service_Billing {\n}",
		},
		{
			name:     "service keyword in comment",
			input:    "# service definitions below\ntype A {\n  id: ID\n}",
			expected: "# service definitions below\ntype A {\n  id: ID\n}",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PreprocessGraphQL(tt.input))
		})
	}
}

func TestPreprocessGraphQL_Idempotent(t *testing.T) {
	input := "@rustgen(namespace: \"a\")\n\nservice S {\n  m: String\n}\n"
	once := PreprocessGraphQL(input)
	assert.Equal(t, once, PreprocessGraphQL(once))
}
