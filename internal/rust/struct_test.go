package rust

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStruct_Basic(t *testing.T) {
	s := NewStruct("Basic").
		SetPub(true).
		AddAttribute(MustAttribute("#[derive(Clone)]")).
		AddField(NewField("field1", "String").
			SetPub(true).
			AddAttribute(MustAttribute("#[serde(default)]")).
			AddDoc("/// Some example documentation").
			AddDocs("/// Another line", "/// and another")).
		AddField(NewField("field2", "usize"))

	src := s.Generate()
	assertSource(t, `
		#[derive(Clone)]
		pub struct Basic
		{
			/// Some example documentation
			/// Another line
			/// and another
			#[serde(default)]
			pub field1: String,
			field2: usize,
		}
	`, src)
	requireParses(t, "struct_item", src)
}

func TestStruct_Generics(t *testing.T) {
	s := NewStruct("Generic").
		SetPub(true).
		AddGeneric(NewGeneric("T").AddTraitBounds("ToString")).
		AddGeneric(NewGeneric("S").AddTraitBounds("ToString", "Number")).
		AddFields(NewField("field1", "S"), NewField("field2", "T"))

	src := s.Generate()
	assertSource(t, `
		pub struct Generic<T, S>
			where
				T: ToString,
				S: ToString + Number,
		{
			field1: S,
			field2: T,
		}
	`, src)
	requireParses(t, "struct_item", src)
}

func TestStruct_Docs(t *testing.T) {
	src := NewStruct("Basic").
		SetPub(true).
		AddDoc("/// Some example documentation").
		AddDocs("/// Another line", "/// and another").
		Generate()

	assertSource(t, `
		/// Some example documentation
		/// Another line
		/// and another
		pub struct Basic
		{
		}
	`, src)
	requireParses(t, "struct_item", src)
}

func TestStruct_DocsBeforeAttributes(t *testing.T) {
	// Test: Docs come first regardless of the order of the calls
	src := NewStruct("S").
		AddAttribute(MustAttribute("#[derive(Debug)]")).
		AddDoc("/// doc").
		Generate()

	assertSource(t, `
		/// doc
		#[derive(Debug)]
		struct S
		{
		}
	`, src)
}

func TestStruct_FieldOrder(t *testing.T) {
	// Test: Output order equals call order for every permutation
	names := []string{"a", "b", "c"}
	perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	for _, perm := range perms {
		s := NewStruct("S")
		expected := "struct S\n{\n"
		for _, i := range perm {
			s.AddField(NewField(names[i], "u8"))
			expected += names[i] + ": u8,\n"
		}
		expected += "}"
		assertSource(t, expected, s.Generate())
	}
}

func TestStruct_Accessors(t *testing.T) {
	s := NewStruct("S").SetPub(true).AddField(NewField("a", "u8"))
	assert.Equal(t, "S", s.Name())
	assert.True(t, s.IsPub())
	fields := s.Fields()
	assert.Len(t, fields, 1)

	// Test: Accessors return copies
	fields[0].SetPub(true)
	assert.False(t, s.Fields()[0].IsPub())
}
