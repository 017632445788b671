package rust

import (
	"fmt"
	"strings"
)

// AttributeKind tells where an attribute is rendered relative to the item
// it belongs to.
type AttributeKind int

const (
	// ItemAttribute is an outer attribute such as #[derive(Debug)]. It is
	// rendered immediately before the item.
	ItemAttribute AttributeKind = iota
	// ScopeAttribute is an inner attribute such as #![allow(dead_code)]. It
	// is rendered first inside the enclosing scope.
	ScopeAttribute
)

func (k AttributeKind) String() string {
	switch k {
	case ItemAttribute:
		return "item"
	case ScopeAttribute:
		return "scope"
	default:
		return fmt.Sprintf("AttributeKind(%d)", int(k))
	}
}

// Attribute is a single Rust attribute. Its kind is decided once, from the
// text prefix, when it is parsed. The zero Attribute is not valid; every
// AddAttribute method ignores it.
type Attribute struct {
	kind AttributeKind
	text string
}

// ParseAttribute classifies raw attribute text. Text starting with "#!" is
// a ScopeAttribute, other text starting with "#" is an ItemAttribute, and
// anything else fails with ErrInvalidAttributeSyntax.
func ParseAttribute(text string) (Attribute, error) {
	switch {
	case strings.HasPrefix(text, "#!"):
		return Attribute{kind: ScopeAttribute, text: text}, nil
	case strings.HasPrefix(text, "#"):
		return Attribute{kind: ItemAttribute, text: text}, nil
	default:
		return Attribute{}, fmt.Errorf("%w: %q must start with '#' or '#!'", ErrInvalidAttributeSyntax, text)
	}
}

// MustAttribute is like ParseAttribute but panics on invalid text. It is
// meant for attribute literals known to be valid.
func MustAttribute(text string) Attribute {
	a, err := ParseAttribute(text)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseAttributes parses every entry, stopping at the first invalid one.
func ParseAttributes(texts ...string) ([]Attribute, error) {
	attrs := make([]Attribute, 0, len(texts))
	for _, text := range texts {
		a, err := ParseAttribute(text)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}

// Kind reports whether the attribute is item- or scope-scoped.
func (a Attribute) Kind() AttributeKind { return a.kind }

// Text returns the attribute exactly as it was parsed.
func (a Attribute) Text() string { return a.text }

// Generate renders the attribute verbatim.
func (a Attribute) Generate() string { return a.text }
