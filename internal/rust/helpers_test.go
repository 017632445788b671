package rust

import (
	"testing"

	"github.com/okra-platform/rustgen/internal/testutil"
	"github.com/stretchr/testify/assert"
)

// assertSource compares generated code with the expected text after
// whitespace normalization.
func assertSource(t *testing.T, expected, actual string) {
	t.Helper()
	assert.Equal(t, NormalizeWhitespace(expected), NormalizeWhitespace(actual), "generated:\n%s", actual)
}

// requireParses checks that src is valid Rust consisting of a single item
// of the given tree-sitter kind.
func requireParses(t *testing.T, kind, src string) {
	t.Helper()
	testutil.RequireRustItem(t, kind, src)
}
