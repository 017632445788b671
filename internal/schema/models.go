package schema

import "strings"

// Schema is the language-neutral description a Rust module is synthesized
// from. Every ingest format produces one.
type Schema struct {
	Types    []ObjectType `json:"types" yaml:"types"`
	Enums    []EnumType   `json:"enums" yaml:"enums"`
	Services []Service    `json:"services" yaml:"services"`
	Meta     Metadata     `json:"meta" yaml:"meta"`
}

// Metadata is declared once per schema with the @rustgen(...) directive
type Metadata struct {
	Namespace string `json:"namespace" yaml:"namespace"`
	Version   string `json:"version" yaml:"version"`
	// Module overrides the configured Rust module name when set
	Module string `json:"module,omitempty" yaml:"module,omitempty"`
}

// ObjectType is a record type; GraphQL "type" and "input" blocks, JSON
// "types" entries and protobuf messages all map to it
type ObjectType struct {
	Name   string  `json:"name" yaml:"name"`
	Doc    string  `json:"doc,omitempty" yaml:"doc,omitempty"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Field is a property of an object type. Type uses the GraphQL spelling,
// with list types written as "[Elem]".
type Field struct {
	Name       string      `json:"name" yaml:"name"`
	Type       string      `json:"type" yaml:"type"`
	Required   bool        `json:"required" yaml:"required"`
	Directives []Directive `json:"directives,omitempty" yaml:"directives,omitempty"`
	Doc        string      `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// EnumType represents an enum definition
type EnumType struct {
	Name   string      `json:"name" yaml:"name"`
	Doc    string      `json:"doc,omitempty" yaml:"doc,omitempty"`
	Values []EnumValue `json:"values" yaml:"values"`
}

// EnumValue represents a single value inside an enum
type EnumValue struct {
	Name string `json:"name" yaml:"name"`
	Doc  string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Service is a set of methods, rendered as a Rust trait
type Service struct {
	Name    string   `json:"name" yaml:"name"`
	Doc     string   `json:"doc,omitempty" yaml:"doc,omitempty"`
	Methods []Method `json:"methods" yaml:"methods"`
}

// Method takes at most one input type and returns one output type
type Method struct {
	Name       string      `json:"name" yaml:"name"`
	InputType  string      `json:"inputType,omitempty" yaml:"inputType,omitempty"`
	OutputType string      `json:"outputType" yaml:"outputType"`
	Directives []Directive `json:"directives,omitempty" yaml:"directives,omitempty"`
	Doc        string      `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Directive represents an attached directive (e.g. @deprecated)
type Directive struct {
	Name string            `json:"name" yaml:"name"`
	Args map[string]string `json:"args,omitempty" yaml:"args,omitempty"`
}

// Scalars lists the built-in type names every ingest format may use.
var Scalars = []string{
	"String", "ID", "Int", "Int32", "Int64", "UInt32", "UInt64", "Float", "Float64",
	"Boolean", "Bytes", "Time", "Any",
}

// IsScalar reports whether name is one of Scalars.
func IsScalar(name string) bool {
	for _, s := range Scalars {
		if s == name {
			return true
		}
	}
	return false
}

// ListElem unwraps a list type. "[User]" yields ("User", true); any other
// type is returned unchanged with false.
func ListElem(typ string) (string, bool) {
	if strings.HasPrefix(typ, "[") && strings.HasSuffix(typ, "]") {
		return typ[1 : len(typ)-1], true
	}
	return typ, false
}

// BaseType strips every list wrapper: "[[User]]" yields "User".
func BaseType(typ string) string {
	for {
		elem, ok := ListElem(typ)
		if !ok {
			return elem
		}
		typ = elem
	}
}

// FindType returns the object type with the given name.
func (s *Schema) FindType(name string) (*ObjectType, bool) {
	for i := range s.Types {
		if s.Types[i].Name == name {
			return &s.Types[i], true
		}
	}
	return nil, false
}

// FindEnum returns the enum with the given name.
func (s *Schema) FindEnum(name string) (*EnumType, bool) {
	for i := range s.Enums {
		if s.Enums[i].Name == name {
			return &s.Enums[i], true
		}
	}
	return nil, false
}

// FindDirective returns the first directive with the given name.
func FindDirective(directives []Directive, name string) (Directive, bool) {
	for _, d := range directives {
		if d.Name == name {
			return d, true
		}
	}
	return Directive{}, false
}
