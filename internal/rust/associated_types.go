package rust

import (
	"slices"

	"github.com/okra-platform/rustgen/internal/codegen/writer"
)

// AssociatedTypeDeclaration declares an associated type inside a trait,
// e.g. "type Item: Debug;".
type AssociatedTypeDeclaration struct {
	name       string
	bounds     boundList
	attributes attributeList
}

// NewAssociatedTypeDeclaration creates an unbounded declaration.
func NewAssociatedTypeDeclaration(name string) *AssociatedTypeDeclaration {
	return &AssociatedTypeDeclaration{name: name}
}

func (d *AssociatedTypeDeclaration) AddTraitBound(bound string) *AssociatedTypeDeclaration {
	d.bounds.add(bound)
	return d
}

func (d *AssociatedTypeDeclaration) AddTraitBounds(bounds ...string) *AssociatedTypeDeclaration {
	d.bounds.add(bounds...)
	return d
}

func (d *AssociatedTypeDeclaration) AddAttribute(attr Attribute) *AssociatedTypeDeclaration {
	d.attributes.add(attr)
	return d
}

func (d *AssociatedTypeDeclaration) AddAttributes(attrs ...Attribute) *AssociatedTypeDeclaration {
	d.attributes.add(attrs...)
	return d
}

func (d *AssociatedTypeDeclaration) Name() string { return d.name }

func (d *AssociatedTypeDeclaration) TraitBounds() []string { return slices.Clone(d.bounds) }

func (d *AssociatedTypeDeclaration) Attributes() []Attribute { return slices.Clone(d.attributes) }

func (d *AssociatedTypeDeclaration) Generate() string { return generate(d) }

func (d *AssociatedTypeDeclaration) render(w *writer.Writer) {
	d.attributes.render(w)
	if len(d.bounds) == 0 {
		w.WriteLinef("type %s;", d.name)
		return
	}
	w.WriteLinef("type %s: %s;", d.name, d.bounds.join())
}

func (d *AssociatedTypeDeclaration) clone() AssociatedTypeDeclaration {
	return AssociatedTypeDeclaration{
		name:       d.name,
		bounds:     d.bounds.clone(),
		attributes: d.attributes.clone(),
	}
}

// AssociatedTypeDefinition binds an associated type inside an impl block,
// e.g. "type Item = u32;".
type AssociatedTypeDefinition struct {
	name        string
	implementer string
	attributes  attributeList
}

// NewAssociatedTypeDefinition creates the binding "type name = implementer;".
func NewAssociatedTypeDefinition(name, implementer string) *AssociatedTypeDefinition {
	return &AssociatedTypeDefinition{name: name, implementer: implementer}
}

func (d *AssociatedTypeDefinition) AddAttribute(attr Attribute) *AssociatedTypeDefinition {
	d.attributes.add(attr)
	return d
}

func (d *AssociatedTypeDefinition) AddAttributes(attrs ...Attribute) *AssociatedTypeDefinition {
	d.attributes.add(attrs...)
	return d
}

func (d *AssociatedTypeDefinition) Name() string { return d.name }

// Implementer returns the concrete type bound to the associated type.
func (d *AssociatedTypeDefinition) Implementer() string { return d.implementer }

func (d *AssociatedTypeDefinition) Attributes() []Attribute { return slices.Clone(d.attributes) }

func (d *AssociatedTypeDefinition) Generate() string { return generate(d) }

func (d *AssociatedTypeDefinition) render(w *writer.Writer) {
	d.attributes.render(w)
	w.WriteLinef("type %s = %s;", d.name, d.implementer)
}

func (d *AssociatedTypeDefinition) clone() AssociatedTypeDefinition {
	c := *d
	c.attributes = d.attributes.clone()
	return c
}
