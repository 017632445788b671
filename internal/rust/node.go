package rust

import "github.com/okra-platform/rustgen/internal/codegen/writer"

// Indent is the indentation unit used for nested scopes.
const Indent = "    "

// Node is implemented by every syntactic element that can render itself as
// Rust source code.
type Node interface {
	// Generate renders the node in its current state. It has no side
	// effects: calling it twice without changes yields the same text.
	Generate() string
}

type renderer interface {
	render(w *writer.Writer)
}

func generate(r renderer) string {
	w := writer.NewWriter(Indent)
	r.render(w)
	return w.String()
}

func visibility(isPub bool) string {
	if isPub {
		return "pub "
	}
	return ""
}

func cloneEach[T any](items []T, clone func(*T) T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i := range items {
		out[i] = clone(&items[i])
	}
	return out
}
