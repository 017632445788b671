// Package ingest turns schema documents of several formats into the
// language-neutral schema model.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/okra-platform/rustgen/internal/schema"
)

// Loader decodes one schema document
type Loader interface {
	Load(data []byte) (*schema.Schema, error)
}

// LoaderFunc adapts a function to Loader
type LoaderFunc func(data []byte) (*schema.Schema, error)

// Load calls f(data)
func (f LoaderFunc) Load(data []byte) (*schema.Schema, error) {
	return f(data)
}

// Registry maps file extensions to loaders
type Registry struct {
	loaders map[string]Loader
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[string]Loader),
	}
}

// NewDefaultRegistry creates a registry with every built-in format
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(".gql", LoaderFunc(LoadGraphQL))
	r.Register(".graphql", LoaderFunc(LoadGraphQL))
	r.Register(".json", LoaderFunc(LoadJSON))
	r.Register(".yaml", LoaderFunc(LoadYAML))
	r.Register(".yml", LoaderFunc(LoadYAML))
	r.Register(".pb", LoaderFunc(LoadDescriptorSet))
	r.Register(".binpb", LoaderFunc(LoadDescriptorSet))
	r.Register(".desc", LoaderFunc(LoadDescriptorSet))
	return r
}

// DefaultRegistry is the registry used by the CLI
var DefaultRegistry = NewDefaultRegistry()

// Register adds or replaces the loader for an extension such as ".gql"
func (r *Registry) Register(ext string, loader Loader) {
	r.loaders[normalizeExt(ext)] = loader
}

// Load decodes data with the loader registered for path's extension.
func (r *Registry) Load(path string, data []byte) (*schema.Schema, error) {
	ext := normalizeExt(filepath.Ext(path))
	loader, ok := r.loaders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, path, strings.Join(r.Formats(), ", "))
	}

	s, err := loader.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema %s: %w", path, err)
	}
	return s, nil
}

// LoadFile reads path and decodes it with Load.
func (r *Registry) LoadFile(path string) (*schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return r.Load(path, data)
}

// Formats returns the registered extensions in sorted order
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.loaders))
	for ext := range r.loaders {
		formats = append(formats, ext)
	}
	sort.Strings(formats)
	return formats
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
