package rust

import (
	"slices"

	"github.com/okra-platform/rustgen/internal/codegen/writer"
)

// Struct is a struct item with named fields.
type Struct struct {
	name       string
	isPub      bool
	fields     fieldList
	generics   genericList
	docs       docList
	attributes attributeList
}

// NewStruct creates a private struct with no fields.
func NewStruct(name string) *Struct {
	return &Struct{name: name}
}

func (s *Struct) SetPub(isPub bool) *Struct {
	s.isPub = isPub
	return s
}

// AddField appends a copy of field.
func (s *Struct) AddField(field *Field) *Struct {
	s.fields.add(field)
	return s
}

func (s *Struct) AddFields(fields ...*Field) *Struct {
	s.fields.add(fields...)
	return s
}

func (s *Struct) AddGeneric(generic *Generic) *Struct {
	s.generics.add(generic)
	return s
}

func (s *Struct) AddGenerics(generics ...*Generic) *Struct {
	s.generics.add(generics...)
	return s
}

func (s *Struct) AddDoc(doc string) *Struct {
	s.docs.add(doc)
	return s
}

func (s *Struct) AddDocs(docs ...string) *Struct {
	s.docs.add(docs...)
	return s
}

func (s *Struct) AddAttribute(attr Attribute) *Struct {
	s.attributes.add(attr)
	return s
}

func (s *Struct) AddAttributes(attrs ...Attribute) *Struct {
	s.attributes.add(attrs...)
	return s
}

func (s *Struct) Name() string { return s.name }

func (s *Struct) IsPub() bool { return s.isPub }

func (s *Struct) Fields() []*Field {
	out := make([]*Field, len(s.fields))
	for i := range s.fields {
		f := s.fields[i].clone()
		out[i] = &f
	}
	return out
}

func (s *Struct) Generics() []*Generic { return s.generics.get() }

func (s *Struct) Docs() []string { return slices.Clone(s.docs) }

func (s *Struct) Attributes() []Attribute { return slices.Clone(s.attributes) }

func (s *Struct) Generate() string { return generate(s) }

func (s *Struct) render(w *writer.Writer) {
	s.docs.render(w)
	s.attributes.render(w)
	s.generics.renderHeader(w, visibility(s.isPub)+"struct "+s.name+s.generics.params())
	w.WriteBlock("{", "}", func() {
		s.fields.render(w)
	})
}

func (s *Struct) clone() Struct {
	c := *s
	c.fields = s.fields.clone()
	c.generics = s.generics.clone()
	c.docs = s.docs.clone()
	c.attributes = s.attributes.clone()
	return c
}
