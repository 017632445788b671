package rust

import (
	"slices"

	"github.com/okra-platform/rustgen/internal/codegen/writer"
)

// Module is a mod item. It renders its items grouped by kind (traits,
// functions, structs, impls, enums), each group in insertion order, followed
// by its submodules.
type Module struct {
	name          string
	isPub         bool
	traits        []Trait
	functions     []Function
	structs       []Struct
	impls         []Impl
	enums         []Enum
	docs          docList
	submodules    []*Module
	attributes    attributeList
	useStatements []string
}

// NewModule creates a private, empty module.
func NewModule(name string) *Module {
	return &Module{name: name}
}

func (m *Module) SetPub(isPub bool) *Module {
	m.isPub = isPub
	return m
}

func (m *Module) AddTrait(t *Trait) *Module {
	m.traits = append(m.traits, t.clone())
	return m
}

func (m *Module) AddFunction(fn *Function) *Module {
	m.functions = append(m.functions, fn.clone())
	return m
}

func (m *Module) AddStruct(s *Struct) *Module {
	m.structs = append(m.structs, s.clone())
	return m
}

func (m *Module) AddImpl(i *Impl) *Module {
	m.impls = append(m.impls, i.clone())
	return m
}

func (m *Module) AddEnum(e *Enum) *Module {
	m.enums = append(m.enums, e.clone())
	return m
}

// AddUseStatement appends a module-level statement such as
// "use super::*;". It is rendered verbatim.
func (m *Module) AddUseStatement(stmt string) *Module {
	m.useStatements = append(m.useStatements, stmt)
	return m
}

func (m *Module) AddUseStatements(stmts ...string) *Module {
	m.useStatements = append(m.useStatements, stmts...)
	return m
}

// AddSubmodule adds a copy of sub. A submodule with the same name is
// replaced in place, keeping its position.
func (m *Module) AddSubmodule(sub *Module) *Module {
	c := sub.clone()
	if i := m.submoduleIndex(c.name); i >= 0 {
		m.submodules[i] = &c
		return m
	}
	m.submodules = append(m.submodules, &c)
	return m
}

// Submodule looks up a direct submodule by name. The returned module is the
// one owned by m, so changes to it show up in m's output.
func (m *Module) Submodule(name string) (*Module, bool) {
	if i := m.submoduleIndex(name); i >= 0 {
		return m.submodules[i], true
	}
	return nil, false
}

func (m *Module) submoduleIndex(name string) int {
	return slices.IndexFunc(m.submodules, func(sub *Module) bool {
		return sub.name == name
	})
}

// AddAttribute appends an attribute. Item attributes render before the
// mod keyword, scope attributes first inside the braces.
func (m *Module) AddAttribute(attr Attribute) *Module {
	m.attributes.add(attr)
	return m
}

func (m *Module) AddAttributes(attrs ...Attribute) *Module {
	m.attributes.add(attrs...)
	return m
}

// AddDoc appends a doc line rendered inside the module, e.g. "//! Models".
func (m *Module) AddDoc(doc string) *Module {
	m.docs.add(doc)
	return m
}

func (m *Module) AddDocs(docs ...string) *Module {
	m.docs.add(docs...)
	return m
}

func (m *Module) Name() string { return m.name }

func (m *Module) IsPub() bool { return m.isPub }

func (m *Module) Docs() []string { return slices.Clone(m.docs) }

func (m *Module) Attributes() []Attribute { return slices.Clone(m.attributes) }

func (m *Module) UseStatements() []string { return slices.Clone(m.useStatements) }

// SubmoduleNames returns the direct submodule names in insertion order.
func (m *Module) SubmoduleNames() []string {
	names := make([]string, len(m.submodules))
	for i, sub := range m.submodules {
		names[i] = sub.name
	}
	return names
}

// Items returns every contained item in render order, submodules excluded.
func (m *Module) Items() []Node {
	items := m.items()
	out := make([]Node, len(items))
	for i, item := range items {
		out[i] = item.(Node)
	}
	return out
}

func (m *Module) items() []renderer {
	var items []renderer
	for i := range m.traits {
		items = append(items, &m.traits[i])
	}
	for i := range m.functions {
		items = append(items, &m.functions[i])
	}
	for i := range m.structs {
		items = append(items, &m.structs[i])
	}
	for i := range m.impls {
		items = append(items, &m.impls[i])
	}
	for i := range m.enums {
		items = append(items, &m.enums[i])
	}
	return items
}

func (m *Module) Generate() string { return generate(m) }

func (m *Module) render(w *writer.Writer) {
	attrs := attributeList(m.attributes.ofKind(ItemAttribute))
	attrs.render(w)
	w.WriteLine(visibility(m.isPub) + "mod " + m.name)
	w.WriteBlock("{", "}", func() {
		scoped := attributeList(m.attributes.ofKind(ScopeAttribute))
		scoped.render(w)
		m.docs.render(w)

		// separate each section from whatever precedes it in the block
		started := len(scoped) > 0 || len(m.docs) > 0
		section := func() {
			if started {
				w.BlankLine()
			}
			started = true
		}

		if len(m.useStatements) > 0 {
			section()
			w.WriteEach(m.useStatements)
		}
		for _, item := range m.items() {
			section()
			item.render(w)
		}
		for _, sub := range m.submodules {
			section()
			sub.render(w)
		}
	})
}

func (m *Module) clone() Module {
	c := *m
	c.traits = cloneEach(m.traits, (*Trait).clone)
	c.functions = cloneEach(m.functions, (*Function).clone)
	c.structs = cloneEach(m.structs, (*Struct).clone)
	c.impls = cloneEach(m.impls, (*Impl).clone)
	c.enums = cloneEach(m.enums, (*Enum).clone)
	c.docs = m.docs.clone()
	c.attributes = m.attributes.clone()
	c.useStatements = slices.Clone(m.useStatements)
	if m.submodules != nil {
		c.submodules = make([]*Module, len(m.submodules))
		for i, sub := range m.submodules {
			sc := sub.clone()
			c.submodules[i] = &sc
		}
	}
	return c
}
