// Package rust models a subset of Rust syntax (modules, structs, enums,
// traits, impl blocks, functions, fields, generics, associated types and
// attributes) as plain Go values and renders them into source text.
//
// Nodes are built with New* constructors and chained Add*/Set* methods, and
// turned into text with Generate. A parent owns copies of the children added
// to it, so a tree can never contain a cycle and later changes to a child
// value do not leak into the parent.
//
//	s := rust.NewStruct("User").
//		SetPub(true).
//		AddAttribute(rust.MustAttribute("#[derive(Debug, Clone)]")).
//		AddField(rust.NewField("id", "u64").SetPub(true))
//	src := s.Generate()
//
// Generated text is indented with four spaces per level, but the exact
// whitespace is not part of the contract. Compare output with
// NormalizeWhitespace.
package rust
