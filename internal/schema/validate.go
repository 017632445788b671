package schema

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Validate checks that names are present and unique and that every field
// and method type refers to a scalar, an object type or an enum. All
// problems are reported together, each wrapping ErrInvalidSchema.
func (s *Schema) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidSchema}, args...)...))
	}

	if s.Meta.Version != "" {
		if _, err := semver.NewVersion(s.Meta.Version); err != nil {
			fail("metadata version %q is not a semantic version", s.Meta.Version)
		}
	}

	declared := make(map[string]string)
	declare := func(kind, name string) {
		if name == "" {
			fail("%s with empty name", kind)
			return
		}
		if prev, ok := declared[name]; ok {
			fail("%s %q already declared as %s", kind, name, prev)
			return
		}
		declared[name] = kind
	}

	for _, t := range s.Types {
		declare("type", t.Name)
	}
	for _, e := range s.Enums {
		declare("enum", e.Name)
		if len(e.Values) == 0 {
			fail("enum %q has no values", e.Name)
		}
	}
	for _, svc := range s.Services {
		if svc.Name == "" {
			fail("service with empty name")
		}
	}

	resolves := func(typ string) bool {
		base := BaseType(typ)
		if IsScalar(base) {
			return true
		}
		kind, ok := declared[base]
		return ok && (kind == "type" || kind == "enum")
	}

	for _, t := range s.Types {
		for _, f := range t.Fields {
			if f.Name == "" {
				fail("type %q has a field with empty name", t.Name)
				continue
			}
			if !resolves(f.Type) {
				fail("field %s.%s has unknown type %q", t.Name, f.Name, f.Type)
			}
		}
	}
	for _, svc := range s.Services {
		for _, m := range svc.Methods {
			if m.InputType != "" && !resolves(m.InputType) {
				fail("method %s.%s has unknown input type %q", svc.Name, m.Name, m.InputType)
			}
			if m.OutputType != "" && !resolves(m.OutputType) {
				fail("method %s.%s has unknown output type %q", svc.Name, m.Name, m.OutputType)
			}
		}
	}

	return errors.Join(errs...)
}

// CheckVersion reports whether the metadata version satisfies a semver
// constraint such as ">= 1.2, < 2". An empty constraint always passes.
func (s *Schema) CheckVersion(constraint string) error {
	if constraint == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	if s.Meta.Version == "" {
		return fmt.Errorf("%w: schema declares no version but %q is required", ErrInvalidSchema, constraint)
	}
	v, err := semver.NewVersion(s.Meta.Version)
	if err != nil {
		return fmt.Errorf("%w: version %q: %v", ErrInvalidSchema, s.Meta.Version, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: schema version %s does not satisfy %s", ErrInvalidSchema, s.Meta.Version, constraint)
	}
	return nil
}
