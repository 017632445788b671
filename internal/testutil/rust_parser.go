package testutil

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	tsrust "github.com/smacker/go-tree-sitter/rust"
	"github.com/stretchr/testify/require"
)

// ignoredKinds are top-level nodes that are not items of their own.
var ignoredKinds = map[string]bool{
	"attribute_item":       true,
	"inner_attribute_item": true,
	"line_comment":         true,
	"block_comment":        true,
}

// RequireRustItems parses src with the tree-sitter Rust grammar, fails the
// test on any syntax error and returns the kinds of the top-level items,
// e.g. "struct_item" or "mod_item".
func RequireRustItems(t *testing.T, src string) []string {
	t.Helper()

	parser := sitter.NewParser()
	parser.SetLanguage(tsrust.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(src))
	require.NoError(t, err)
	defer tree.Close()

	root := tree.RootNode()
	require.False(t, root.HasError(), "source does not parse:\n%s\ntree: %s", src, root.String())

	var items []string
	for i := 0; i < int(root.NamedChildCount()); i++ {
		if kind := root.NamedChild(i).Type(); !ignoredKinds[kind] {
			items = append(items, kind)
		}
	}
	return items
}

// RequireRustItem checks that src parses as exactly one top-level item of
// the given kind.
func RequireRustItem(t *testing.T, kind, src string) {
	t.Helper()
	require.Equal(t, []string{kind}, RequireRustItems(t, src), "source:\n%s", src)
}
