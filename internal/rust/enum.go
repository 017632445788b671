package rust

import (
	"slices"

	"github.com/okra-platform/rustgen/internal/codegen/writer"
)

// Variant is a single arm of an enum.
type Variant struct {
	name       string
	inner      string
	attributes attributeList
	docs       docList
}

// NewVariant creates a unit variant.
func NewVariant(name string) *Variant {
	return &Variant{name: name}
}

// SetInner sets the payload text appended to the variant name verbatim,
// e.g. "(T)" or " { x: i32 }". An empty string makes it a unit variant.
func (v *Variant) SetInner(inner string) *Variant {
	v.inner = inner
	return v
}

func (v *Variant) AddAttribute(attr Attribute) *Variant {
	v.attributes.add(attr)
	return v
}

func (v *Variant) AddAttributes(attrs ...Attribute) *Variant {
	v.attributes.add(attrs...)
	return v
}

func (v *Variant) AddDoc(doc string) *Variant {
	v.docs.add(doc)
	return v
}

func (v *Variant) AddDocs(docs ...string) *Variant {
	v.docs.add(docs...)
	return v
}

func (v *Variant) Name() string { return v.name }

// Inner returns the payload text and whether one is set.
func (v *Variant) Inner() (string, bool) { return v.inner, v.inner != "" }

func (v *Variant) Attributes() []Attribute { return slices.Clone(v.attributes) }

func (v *Variant) Docs() []string { return slices.Clone(v.docs) }

// Generate renders the variant without the trailing comma.
func (v *Variant) Generate() string {
	w := writer.NewWriter(Indent)
	v.renderWith(w, "")
	return w.String()
}

func (v *Variant) renderWith(w *writer.Writer, terminator string) {
	v.docs.render(w)
	v.attributes.render(w)
	w.WriteLines(v.name + v.inner + terminator)
}

func (v *Variant) clone() Variant {
	c := *v
	c.attributes = v.attributes.clone()
	c.docs = v.docs.clone()
	return c
}

// Enum is an enum item.
type Enum struct {
	name       string
	isPub      bool
	variants   []Variant
	generics   genericList
	docs       docList
	attributes attributeList
}

// NewEnum creates a private enum with no variants.
func NewEnum(name string) *Enum {
	return &Enum{name: name}
}

func (e *Enum) SetPub(isPub bool) *Enum {
	e.isPub = isPub
	return e
}

func (e *Enum) AddVariant(variant *Variant) *Enum {
	e.variants = append(e.variants, variant.clone())
	return e
}

func (e *Enum) AddVariants(variants ...*Variant) *Enum {
	for _, v := range variants {
		e.AddVariant(v)
	}
	return e
}

func (e *Enum) AddGeneric(generic *Generic) *Enum {
	e.generics.add(generic)
	return e
}

func (e *Enum) AddGenerics(generics ...*Generic) *Enum {
	e.generics.add(generics...)
	return e
}

func (e *Enum) AddDoc(doc string) *Enum {
	e.docs.add(doc)
	return e
}

func (e *Enum) AddDocs(docs ...string) *Enum {
	e.docs.add(docs...)
	return e
}

func (e *Enum) AddAttribute(attr Attribute) *Enum {
	e.attributes.add(attr)
	return e
}

func (e *Enum) AddAttributes(attrs ...Attribute) *Enum {
	e.attributes.add(attrs...)
	return e
}

func (e *Enum) Name() string { return e.name }

func (e *Enum) IsPub() bool { return e.isPub }

func (e *Enum) Variants() []*Variant {
	out := make([]*Variant, len(e.variants))
	for i := range e.variants {
		v := e.variants[i].clone()
		out[i] = &v
	}
	return out
}

func (e *Enum) Generics() []*Generic { return e.generics.get() }

func (e *Enum) Docs() []string { return slices.Clone(e.docs) }

func (e *Enum) Attributes() []Attribute { return slices.Clone(e.attributes) }

func (e *Enum) Generate() string { return generate(e) }

func (e *Enum) render(w *writer.Writer) {
	e.docs.render(w)
	e.attributes.render(w)
	e.generics.renderHeader(w, visibility(e.isPub)+"enum "+e.name+e.generics.params())
	w.WriteBlock("{", "}", func() {
		for i := range e.variants {
			e.variants[i].renderWith(w, ",")
		}
	})
}

func (e *Enum) clone() Enum {
	c := *e
	c.variants = cloneEach(e.variants, (*Variant).clone)
	c.generics = e.generics.clone()
	c.docs = e.docs.clone()
	c.attributes = e.attributes.clone()
	return c
}
