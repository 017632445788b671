package codegen

import (
	"github.com/okra-platform/rustgen/internal/schema"
	"github.com/rs/zerolog"
)

// Generator is the interface that all language-specific code generators must implement
type Generator interface {
	// Generate generates code from the schema and returns the generated code as bytes
	Generate(schema *schema.Schema) ([]byte, error)

	// Language returns the name of the target language (e.g., "rust")
	Language() string

	// FileExtension returns the file extension for generated files (e.g., ".rs")
	FileExtension() string
}

// Options contains common options for code generation
type Options struct {
	// ModuleName is the name of the generated top-level module. A module
	// name declared in the schema metadata takes precedence.
	ModuleName string

	// Derives lists the derive macros added to every generated type
	Derives []string

	// IncludeComments determines whether schema docs become doc comments
	IncludeComments bool

	// Logger receives generation diagnostics
	Logger zerolog.Logger
}

// DefaultDerives is used when Options.Derives is empty
var DefaultDerives = []string{"Debug", "Clone", "Serialize", "Deserialize"}
