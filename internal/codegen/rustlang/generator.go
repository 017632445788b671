package rustlang

import (
	"fmt"
	"strings"

	"github.com/okra-platform/rustgen/internal/codegen"
	"github.com/okra-platform/rustgen/internal/rust"
	"github.com/okra-platform/rustgen/internal/schema"
	"github.com/rs/zerolog"
)

const (
	defaultModuleName = "types"
	serdeImport       = "use serde::{Deserialize, Serialize};"
	errorBound        = "std::error::Error"
	stubError         = "std::convert::Infallible"
)

func init() {
	codegen.DefaultRegistry.Register("rust", func(opts codegen.Options) codegen.Generator {
		return NewGenerator(opts)
	})
	codegen.DefaultRegistry.Register("rs", func(opts codegen.Options) codegen.Generator {
		return NewGenerator(opts)
	})
}

// Generator synthesizes a Rust module from a schema: enums and structs
// with serde derives, one trait per service and an unimplemented stub for
// each trait.
type Generator struct {
	opts   codegen.Options
	logger zerolog.Logger
}

// NewGenerator creates a new Rust code generator
func NewGenerator(opts codegen.Options) *Generator {
	if len(opts.Derives) == 0 {
		opts.Derives = codegen.DefaultDerives
	}
	return &Generator{
		opts:   opts,
		logger: opts.Logger.With().Str("generator", "rust").Logger(),
	}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "rust"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".rs"
}

// Generate renders the module built by Module.
func (g *Generator) Generate(s *schema.Schema) ([]byte, error) {
	m, err := g.Module(s)
	if err != nil {
		return nil, err
	}
	return []byte(m.Generate()), nil
}

// Module validates the schema and maps it onto a module tree.
func (g *Generator) Module(s *schema.Schema) (*rust.Module, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("rust generator: %w", err)
	}

	name := g.moduleName(s)
	m := rust.NewModule(name).
		SetPub(true).
		AddAttribute(rust.MustAttribute("#![allow(dead_code)]")).
		AddUseStatement(serdeImport)

	if g.opts.IncludeComments {
		if s.Meta.Namespace != "" {
			m.AddDoc("//! Namespace: " + s.Meta.Namespace)
		}
		if s.Meta.Version != "" {
			m.AddDoc("//! Version: " + s.Meta.Version)
		}
	}

	for _, e := range s.Enums {
		m.AddEnum(g.enum(e))
	}
	for _, t := range s.Types {
		m.AddStruct(g.object(t))
	}
	for _, svc := range s.Services {
		trait := g.service(svc)
		m.AddTrait(trait)
		m.AddStruct(g.stub(svc))
		m.AddImpl(g.stubImpl(svc, trait))
	}

	g.logger.Debug().
		Str("module", name).
		Int("enums", len(s.Enums)).
		Int("types", len(s.Types)).
		Int("services", len(s.Services)).
		Msg("synthesized rust module")

	return m, nil
}

func (g *Generator) moduleName(s *schema.Schema) string {
	switch {
	case s.Meta.Module != "":
		return ident(snakeCase(s.Meta.Module))
	case g.opts.ModuleName != "":
		return ident(snakeCase(g.opts.ModuleName))
	default:
		return defaultModuleName
	}
}

func (g *Generator) derive(extra ...string) rust.Attribute {
	derives := append(append([]string{}, g.opts.Derives...), extra...)
	return rust.MustAttribute("#[derive(" + strings.Join(derives, ", ") + ")]")
}

// docLines turns a schema doc string into "/// " lines.
func (g *Generator) docLines(doc string) []string {
	if !g.opts.IncludeComments || doc == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(doc, "\n") {
		if line = strings.TrimSpace(line); line == "" {
			lines = append(lines, "///")
			continue
		}
		lines = append(lines, "/// "+line)
	}
	return lines
}

func (g *Generator) enum(e schema.EnumType) *rust.Enum {
	out := rust.NewEnum(pascalCase(e.Name)).
		SetPub(true).
		AddDocs(g.docLines(e.Doc)...).
		AddAttribute(g.derive("Copy", "PartialEq", "Eq"))

	for _, value := range e.Values {
		v := rust.NewVariant(pascalCase(value.Name)).AddDocs(g.docLines(value.Doc)...)
		if v.Name() != value.Name {
			v.AddAttribute(serdeRename(value.Name))
		}
		out.AddVariant(v)
	}
	return out
}

func (g *Generator) object(t schema.ObjectType) *rust.Struct {
	out := rust.NewStruct(pascalCase(t.Name)).
		SetPub(true).
		AddDocs(g.docLines(t.Doc)...).
		AddAttribute(g.derive())

	for _, f := range t.Fields {
		out.AddField(g.field(f))
	}
	return out
}

func (g *Generator) field(f schema.Field) *rust.Field {
	snake := snakeCase(f.Name)
	out := rust.NewField(ident(snake), rustType(f.Type, f.Required)).
		SetPub(true).
		AddDocs(g.docLines(f.Doc)...)

	if snake != f.Name {
		out.AddAttribute(serdeRename(f.Name))
	}
	if !f.Required {
		out.AddAttribute(rust.MustAttribute(`#[serde(default, skip_serializing_if = "Option::is_none")]`))
	}
	if attr, ok := deprecation(f.Directives); ok {
		out.AddAttribute(attr)
	}
	return out
}

// service maps a service onto a trait with an Error associated type and one
// async method per schema method.
func (g *Generator) service(svc schema.Service) *rust.Trait {
	trait := rust.NewTrait(pascalCase(svc.Name)).
		SetPub(true).
		AddDocs(g.docLines(svc.Doc)...).
		AddAssociatedType(rust.NewAssociatedTypeDeclaration("Error").AddTraitBound(errorBound))

	for _, m := range svc.Methods {
		sig := g.signature(m, "input").AddAttributes(g.methodAttributes(m)...)
		trait.AddSignature(sig)
	}
	return trait
}

func (g *Generator) signature(m schema.Method, inputName string) *rust.FunctionSignature {
	sig := rust.NewFunctionSignature(ident(snakeCase(m.Name))).
		SetAsync(true).
		AddParameter(rust.NewParameter("self", "&Self")).
		SetReturnType("Result<" + returnType(m.OutputType) + ", Self::Error>")
	if m.InputType != "" {
		sig.AddParameter(rust.NewParameter(inputName, requiredType(m.InputType)))
	}
	return sig
}

func (g *Generator) methodAttributes(m schema.Method) []rust.Attribute {
	var attrs []rust.Attribute
	for _, doc := range g.docLines(m.Doc) {
		// signatures have no doc list; #[doc] is what /// desugars to
		attrs = append(attrs, rust.MustAttribute("#[doc = "+rustString(strings.TrimSpace(strings.TrimPrefix(doc, "///")))+"]"))
	}
	if attr, ok := deprecation(m.Directives); ok {
		attrs = append(attrs, attr)
	}
	return attrs
}

func stubName(svc schema.Service) string {
	return "Unimplemented" + pascalCase(svc.Name)
}

func (g *Generator) stub(svc schema.Service) *rust.Struct {
	return rust.NewStruct(stubName(svc)).
		SetPub(true).
		AddDoc(fmt.Sprintf("/// Placeholder implementation of [`%s`]; every method panics.", pascalCase(svc.Name))).
		AddAttribute(rust.MustAttribute("#[derive(Debug, Default, Clone, Copy)]"))
}

func (g *Generator) stubImpl(svc schema.Service, trait *rust.Trait) *rust.Impl {
	impl := rust.NewImpl(stubName(svc)).
		ImplementTrait(trait).
		AddAssociatedType(rust.NewAssociatedTypeDefinition("Error", stubError))

	for _, m := range svc.Methods {
		fn := rust.NewFunction(ident(snakeCase(m.Name))).
			SetSignature(g.signature(m, "_input")).
			SetBody("unimplemented!("+rustString(pascalCase(svc.Name)+"::"+m.Name)+")")
		impl.AddFunction(fn)
	}
	return impl
}

func serdeRename(name string) rust.Attribute {
	return rust.MustAttribute("#[serde(rename = "+rustString(name)+")]")
}

// deprecation maps an @deprecated directive onto #[deprecated].
func deprecation(directives []schema.Directive) (rust.Attribute, bool) {
	d, ok := schema.FindDirective(directives, "deprecated")
	if !ok {
		return rust.Attribute{}, false
	}
	if reason := d.Args["reason"]; reason != "" {
		return rust.MustAttribute("#[deprecated(note = "+rustString(reason)+")]"), true
	}
	return rust.MustAttribute("#[deprecated]"), true
}
