package rust

import (
	"slices"
	"strings"

	"github.com/okra-platform/rustgen/internal/codegen/writer"
)

// Attributed is implemented by nodes that carry attributes.
type Attributed interface {
	Attributes() []Attribute
}

// Documented is implemented by nodes that carry doc lines.
type Documented interface {
	Docs() []string
}

// Bounded is implemented by nodes that carry a trait-bound list.
type Bounded interface {
	TraitBounds() []string
}

var (
	_ Attributed = (*Struct)(nil)
	_ Attributed = (*Field)(nil)
	_ Attributed = (*Enum)(nil)
	_ Attributed = (*Variant)(nil)
	_ Attributed = (*Trait)(nil)
	_ Attributed = (*Impl)(nil)
	_ Attributed = (*Module)(nil)
	_ Attributed = (*Function)(nil)
	_ Attributed = (*FunctionSignature)(nil)
	_ Attributed = (*FunctionBody)(nil)
	_ Attributed = (*Parameter)(nil)
	_ Attributed = (*AssociatedTypeDeclaration)(nil)
	_ Attributed = (*AssociatedTypeDefinition)(nil)

	_ Documented = (*Struct)(nil)
	_ Documented = (*Field)(nil)
	_ Documented = (*Enum)(nil)
	_ Documented = (*Variant)(nil)
	_ Documented = (*Trait)(nil)
	_ Documented = (*Impl)(nil)
	_ Documented = (*Module)(nil)

	_ Bounded = (*Generic)(nil)
	_ Bounded = (*AssociatedTypeDeclaration)(nil)
)

// attributeList, docList and boundList hold the decorations shared by many
// node kinds. Nodes embed them as fields and expose chaining wrappers.

type attributeList []Attribute

// add appends attrs, skipping zero Attributes that never went through
// ParseAttribute.
func (l *attributeList) add(attrs ...Attribute) {
	for _, a := range attrs {
		if a.text == "" {
			continue
		}
		*l = append(*l, a)
	}
}

func (l attributeList) clone() attributeList { return slices.Clone(l) }

func (l attributeList) ofKind(kind AttributeKind) []Attribute {
	var out []Attribute
	for _, a := range l {
		if a.kind == kind {
			out = append(out, a)
		}
	}
	return out
}

func (l attributeList) texts() []string {
	out := make([]string, len(l))
	for i, a := range l {
		out[i] = a.text
	}
	return out
}

// render writes one attribute per line.
func (l attributeList) render(w *writer.Writer) {
	w.WriteEach(l.texts())
}

// inline renders the attributes space-separated with a trailing space, the
// form used in front of a parameter.
func (l attributeList) inline() string {
	if len(l) == 0 {
		return ""
	}
	return strings.Join(l.texts(), " ") + " "
}

type docList []string

func (l *docList) add(docs ...string) {
	*l = append(*l, docs...)
}

func (l docList) clone() docList { return slices.Clone(l) }

func (l docList) render(w *writer.Writer) {
	w.WriteEach(l)
}

type boundList []string

func (l *boundList) add(bounds ...string) {
	*l = append(*l, bounds...)
}

func (l boundList) clone() boundList { return slices.Clone(l) }

func (l boundList) join() string {
	return strings.Join(l, " + ")
}
