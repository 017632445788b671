package rust

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrait_Basic(t *testing.T) {
	src := NewTrait("Foo").SetPub(true).Generate()
	assertSource(t, `
		pub trait Foo
		{
		}
	`, src)
	requireParses(t, "trait_item", src)
}

func TestTrait_MethodSignatures(t *testing.T) {
	src := NewTrait("Foo").
		SetPub(true).
		AddSignature(NewFunctionSignature("foo")).
		AddSignature(NewFunctionSignature("bar")).
		Generate()

	assertSource(t, `
		pub trait Foo
		{
			fn foo() -> ();
			fn bar() -> ();
		}
	`, src)
	requireParses(t, "trait_item", src)
}

func TestTrait_Generics(t *testing.T) {
	src := NewTrait("Foo").
		SetPub(true).
		AddSignature(NewFunctionSignature("foo").AddParameter(NewParameter("name", "T"))).
		AddSignature(NewFunctionSignature("bar")).
		AddGeneric(NewGeneric("T").AddTraitBounds("ToString")).
		Generate()

	assertSource(t, `
		pub trait Foo<T>
			where
				T: ToString,
		{
			fn foo(name: T) -> ();
			fn bar() -> ();
		}
	`, src)
	requireParses(t, "trait_item", src)
}

func TestTrait_GenericSignature(t *testing.T) {
	// Test: The terminator follows the where clause of a generic method
	src := NewTrait("Visitor").
		AddSignatures(NewFunctionSignature("visit").
			AddParameter(NewParameter("node", "N")).
			AddGeneric(NewGeneric("N").AddTraitBound("Display"))).
		Generate()

	assertSource(t, `
		trait Visitor
		{
			fn visit<N>(node: N) -> ()
				where
					N: Display,
			;
		}
	`, src)
	requireParses(t, "trait_item", src)
}

func TestTrait_AssociatedTypes(t *testing.T) {
	src := NewTrait("Foo").
		SetPub(true).
		AddSignature(NewFunctionSignature("get")).
		AddAssociatedType(NewAssociatedTypeDeclaration("FOO")).
		AddAssociatedType(NewAssociatedTypeDeclaration("BAR").AddTraitBounds("Debug")).
		AddAssociatedType(NewAssociatedTypeDeclaration("BAZ").AddTraitBounds("Debug", "Default")).
		Generate()

	// Test: Associated types come before method signatures
	assertSource(t, `
		pub trait Foo
		{
			type FOO;
			type BAR: Debug;
			type BAZ: Debug + Default;
			fn get() -> ();
		}
	`, src)
	requireParses(t, "trait_item", src)
}

func TestTrait_AssociatedTypeAttributes(t *testing.T) {
	src := NewTrait("Foo").
		SetPub(true).
		AddAssociatedTypes(
			NewAssociatedTypeDeclaration("BAR").AddAttribute(MustAttribute("#[bar]")),
			NewAssociatedTypeDeclaration("BAZ").AddAttributes(MustAttribute("#[bar]"), MustAttribute("#[baz]")),
		).
		Generate()

	assertSource(t, `
		pub trait Foo
		{
			#[bar]
			type BAR;
			#[bar]
			#[baz]
			type BAZ;
		}
	`, src)
	requireParses(t, "trait_item", src)
}

func TestTrait_Accessors(t *testing.T) {
	tr := NewTrait("T").
		AddSignature(NewFunctionSignature("a")).
		AddAssociatedType(NewAssociatedTypeDeclaration("Item").AddTraitBound("Clone")).
		AddDoc("/// doc").
		AddAttribute(MustAttribute("#[marker]"))

	assert.Equal(t, "T", tr.Name())
	assert.Len(t, tr.Signatures(), 1)
	assert.Equal(t, []string{"Clone"}, tr.AssociatedTypes()[0].TraitBounds())
	assert.Equal(t, []string{"/// doc"}, tr.Docs())
	assert.Len(t, tr.Attributes(), 1)
}
