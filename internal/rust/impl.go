package rust

import (
	"slices"

	"github.com/okra-platform/rustgen/internal/codegen/writer"
)

// Impl is an impl block for a target type, optionally implementing a trait.
// The trait is referenced by name only.
type Impl struct {
	target          string
	traitName       string
	functions       []Function
	associatedTypes []AssociatedTypeDefinition
	generics        genericList
	docs            docList
	attributes      attributeList
}

// NewImpl creates an inherent impl block for target.
func NewImpl(target string) *Impl {
	return &Impl{target: target}
}

// SetImplTrait makes this a trait impl ("impl Trait for Target"). An empty
// name turns it back into an inherent impl.
func (i *Impl) SetImplTrait(traitName string) *Impl {
	i.traitName = traitName
	return i
}

// ImplementTrait is SetImplTrait(t.Name()).
func (i *Impl) ImplementTrait(t *Trait) *Impl {
	return i.SetImplTrait(t.Name())
}

func (i *Impl) AddFunction(fn *Function) *Impl {
	i.functions = append(i.functions, fn.clone())
	return i
}

func (i *Impl) AddFunctions(fns ...*Function) *Impl {
	for _, fn := range fns {
		i.AddFunction(fn)
	}
	return i
}

func (i *Impl) AddAssociatedType(def *AssociatedTypeDefinition) *Impl {
	i.associatedTypes = append(i.associatedTypes, def.clone())
	return i
}

func (i *Impl) AddAssociatedTypes(defs ...*AssociatedTypeDefinition) *Impl {
	for _, d := range defs {
		i.AddAssociatedType(d)
	}
	return i
}

func (i *Impl) AddGeneric(generic *Generic) *Impl {
	i.generics.add(generic)
	return i
}

func (i *Impl) AddGenerics(generics ...*Generic) *Impl {
	i.generics.add(generics...)
	return i
}

func (i *Impl) AddDoc(doc string) *Impl {
	i.docs.add(doc)
	return i
}

func (i *Impl) AddDocs(docs ...string) *Impl {
	i.docs.add(docs...)
	return i
}

func (i *Impl) AddAttribute(attr Attribute) *Impl {
	i.attributes.add(attr)
	return i
}

func (i *Impl) AddAttributes(attrs ...Attribute) *Impl {
	i.attributes.add(attrs...)
	return i
}

// Target returns the implemented type name.
func (i *Impl) Target() string { return i.target }

// TraitName returns the implemented trait and whether one is set.
func (i *Impl) TraitName() (string, bool) { return i.traitName, i.traitName != "" }

func (i *Impl) Functions() []*Function {
	out := make([]*Function, len(i.functions))
	for n := range i.functions {
		fn := i.functions[n].clone()
		out[n] = &fn
	}
	return out
}

func (i *Impl) AssociatedTypes() []*AssociatedTypeDefinition {
	out := make([]*AssociatedTypeDefinition, len(i.associatedTypes))
	for n := range i.associatedTypes {
		d := i.associatedTypes[n].clone()
		out[n] = &d
	}
	return out
}

func (i *Impl) Generics() []*Generic { return i.generics.get() }

func (i *Impl) Docs() []string { return slices.Clone(i.docs) }

func (i *Impl) Attributes() []Attribute { return slices.Clone(i.attributes) }

func (i *Impl) Generate() string { return generate(i) }

// render writes "impl<T> Trait for Target<T>". The parameter clause appears
// twice: it declares the parameters on the impl and applies them to the
// target type.
func (i *Impl) render(w *writer.Writer) {
	i.docs.render(w)
	i.attributes.render(w)

	params := i.generics.params()
	header := "impl" + params + " "
	if i.traitName != "" {
		header += i.traitName + " for "
	}
	header += i.target + params
	i.generics.renderHeader(w, header)

	w.WriteBlock("{", "}", func() {
		for n := range i.associatedTypes {
			i.associatedTypes[n].render(w)
		}
		for n := range i.functions {
			if n > 0 || len(i.associatedTypes) > 0 {
				w.BlankLine()
			}
			i.functions[n].render(w)
		}
	})
}

func (i *Impl) clone() Impl {
	c := *i
	c.functions = cloneEach(i.functions, (*Function).clone)
	c.associatedTypes = cloneEach(i.associatedTypes, (*AssociatedTypeDefinition).clone)
	c.generics = i.generics.clone()
	c.docs = i.docs.clone()
	c.attributes = i.attributes.clone()
	return c
}
