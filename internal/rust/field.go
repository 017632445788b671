package rust

import (
	"slices"

	"github.com/okra-platform/rustgen/internal/codegen/writer"
)

// Field is a named, typed member of a struct.
type Field struct {
	name       string
	ty         string
	isPub      bool
	attributes attributeList
	docs       docList
}

// NewField creates a private field.
func NewField(name, ty string) *Field {
	return &Field{name: name, ty: ty}
}

// SetPub marks the field public.
func (f *Field) SetPub(isPub bool) *Field {
	f.isPub = isPub
	return f
}

// AddAttribute appends an attribute rendered above the field.
func (f *Field) AddAttribute(attr Attribute) *Field {
	f.attributes.add(attr)
	return f
}

// AddAttributes appends several attributes.
func (f *Field) AddAttributes(attrs ...Attribute) *Field {
	f.attributes.add(attrs...)
	return f
}

// AddDoc appends a doc line, e.g. "/// The user id".
func (f *Field) AddDoc(doc string) *Field {
	f.docs.add(doc)
	return f
}

// AddDocs appends several doc lines.
func (f *Field) AddDocs(docs ...string) *Field {
	f.docs.add(docs...)
	return f
}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Type returns the field type text.
func (f *Field) Type() string { return f.ty }

func (f *Field) IsPub() bool { return f.isPub }

func (f *Field) Attributes() []Attribute { return slices.Clone(f.attributes) }

func (f *Field) Docs() []string { return slices.Clone(f.docs) }

// Generate renders docs, attributes and then "name: type,".
func (f *Field) Generate() string { return generate(f) }

func (f *Field) render(w *writer.Writer) {
	f.docs.render(w)
	f.attributes.render(w)
	w.WriteLinef("%s%s: %s,", visibility(f.isPub), f.name, f.ty)
}

func (f *Field) clone() Field {
	c := *f
	c.attributes = f.attributes.clone()
	c.docs = f.docs.clone()
	return c
}

type fieldList []Field

func (l *fieldList) add(fields ...*Field) {
	for _, f := range fields {
		*l = append(*l, f.clone())
	}
}

func (l fieldList) clone() fieldList { return cloneEach(l, (*Field).clone) }

func (l fieldList) render(w *writer.Writer) {
	for i := range l {
		l[i].render(w)
	}
}
