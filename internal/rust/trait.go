package rust

import (
	"slices"

	"github.com/okra-platform/rustgen/internal/codegen/writer"
)

// Trait is a trait item: associated type declarations followed by method
// signatures.
type Trait struct {
	name            string
	isPub           bool
	signatures      []FunctionSignature
	associatedTypes []AssociatedTypeDeclaration
	generics        genericList
	docs            docList
	attributes      attributeList
}

// NewTrait creates a private, empty trait.
func NewTrait(name string) *Trait {
	return &Trait{name: name}
}

func (t *Trait) SetPub(isPub bool) *Trait {
	t.isPub = isPub
	return t
}

// AddSignature appends a required method.
func (t *Trait) AddSignature(sig *FunctionSignature) *Trait {
	t.signatures = append(t.signatures, sig.clone())
	return t
}

func (t *Trait) AddSignatures(sigs ...*FunctionSignature) *Trait {
	for _, s := range sigs {
		t.AddSignature(s)
	}
	return t
}

func (t *Trait) AddAssociatedType(decl *AssociatedTypeDeclaration) *Trait {
	t.associatedTypes = append(t.associatedTypes, decl.clone())
	return t
}

func (t *Trait) AddAssociatedTypes(decls ...*AssociatedTypeDeclaration) *Trait {
	for _, d := range decls {
		t.AddAssociatedType(d)
	}
	return t
}

func (t *Trait) AddGeneric(generic *Generic) *Trait {
	t.generics.add(generic)
	return t
}

func (t *Trait) AddGenerics(generics ...*Generic) *Trait {
	t.generics.add(generics...)
	return t
}

func (t *Trait) AddDoc(doc string) *Trait {
	t.docs.add(doc)
	return t
}

func (t *Trait) AddDocs(docs ...string) *Trait {
	t.docs.add(docs...)
	return t
}

func (t *Trait) AddAttribute(attr Attribute) *Trait {
	t.attributes.add(attr)
	return t
}

func (t *Trait) AddAttributes(attrs ...Attribute) *Trait {
	t.attributes.add(attrs...)
	return t
}

// Name is what an Impl refers to when it implements this trait.
func (t *Trait) Name() string { return t.name }

func (t *Trait) IsPub() bool { return t.isPub }

func (t *Trait) Signatures() []*FunctionSignature {
	out := make([]*FunctionSignature, len(t.signatures))
	for i := range t.signatures {
		s := t.signatures[i].clone()
		out[i] = &s
	}
	return out
}

func (t *Trait) AssociatedTypes() []*AssociatedTypeDeclaration {
	out := make([]*AssociatedTypeDeclaration, len(t.associatedTypes))
	for i := range t.associatedTypes {
		d := t.associatedTypes[i].clone()
		out[i] = &d
	}
	return out
}

func (t *Trait) Generics() []*Generic { return t.generics.get() }

func (t *Trait) Docs() []string { return slices.Clone(t.docs) }

func (t *Trait) Attributes() []Attribute { return slices.Clone(t.attributes) }

func (t *Trait) Generate() string { return generate(t) }

func (t *Trait) render(w *writer.Writer) {
	t.docs.render(w)
	t.attributes.render(w)
	t.generics.renderHeader(w, visibility(t.isPub)+"trait "+t.name+t.generics.params())
	w.WriteBlock("{", "}", func() {
		for i := range t.associatedTypes {
			t.associatedTypes[i].render(w)
		}
		for i := range t.signatures {
			t.signatures[i].renderWith(w, ";")
		}
	})
}

func (t *Trait) clone() Trait {
	c := *t
	c.signatures = cloneEach(t.signatures, (*FunctionSignature).clone)
	c.associatedTypes = cloneEach(t.associatedTypes, (*AssociatedTypeDeclaration).clone)
	c.generics = t.generics.clone()
	c.docs = t.docs.clone()
	c.attributes = t.attributes.clone()
	return c
}
