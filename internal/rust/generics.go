package rust

import (
	"slices"
	"strings"

	"github.com/okra-platform/rustgen/internal/codegen/writer"
)

// Generic is a type parameter together with its trait bounds.
type Generic struct {
	name   string
	bounds boundList
}

// NewGeneric creates a type parameter with no bounds.
func NewGeneric(name string) *Generic {
	return &Generic{name: name}
}

// AddTraitBound appends a bound. Bounds render in insertion order.
func (g *Generic) AddTraitBound(bound string) *Generic {
	g.bounds.add(bound)
	return g
}

// AddTraitBounds appends several bounds.
func (g *Generic) AddTraitBounds(bounds ...string) *Generic {
	g.bounds.add(bounds...)
	return g
}

// Name returns the parameter name.
func (g *Generic) Name() string { return g.name }

// TraitBounds returns the bounds in insertion order.
func (g *Generic) TraitBounds() []string { return slices.Clone(g.bounds) }

// Generate renders the bound line, e.g. "T: Debug + Clone,".
func (g *Generic) Generate() string {
	return g.boundLine()
}

func (g *Generic) boundLine() string {
	return g.name + ": " + g.bounds.join() + ","
}

func (g *Generic) clone() Generic {
	return Generic{name: g.name, bounds: g.bounds.clone()}
}

// genericList is the generic parameter list shared by every generic-bearing
// node. It renders as a parameter clause after the name and a where clause
// listing one bound line per parameter.
type genericList []Generic

func (l *genericList) add(generics ...*Generic) {
	for _, g := range generics {
		*l = append(*l, g.clone())
	}
}

func (l genericList) clone() genericList {
	return cloneEach(l, (*Generic).clone)
}

func (l genericList) get() []*Generic {
	out := make([]*Generic, len(l))
	for i := range l {
		g := l[i].clone()
		out[i] = &g
	}
	return out
}

// params renders "<T, S>", or nothing when the list is empty.
func (l genericList) params() string {
	if len(l) == 0 {
		return ""
	}
	names := make([]string, len(l))
	for i, g := range l {
		names[i] = g.name
	}
	return "<" + strings.Join(names, ", ") + ">"
}

// renderWhere writes the where clause, one line per parameter. A parameter
// without bounds still gets a line ("T: ,"), which Rust accepts.
func (l genericList) renderWhere(w *writer.Writer) {
	if len(l) == 0 {
		return
	}
	w.Indent()
	w.WriteLine("where")
	w.Indent()
	for i := range l {
		w.WriteLine(l[i].boundLine())
	}
	w.Dedent()
	w.Dedent()
}

// renderHeader writes an item header followed by the where clause. The
// header line is always terminated.
func (l genericList) renderHeader(w *writer.Writer, header string) {
	w.WriteLine(header)
	l.renderWhere(w)
}

// GenerateGenerics renders the parameter clause and where clause for a list
// of generics, or an empty string when there are none.
func GenerateGenerics(generics ...*Generic) string {
	var l genericList
	l.add(generics...)
	if len(l) == 0 {
		return ""
	}
	w := writer.NewWriter(Indent)
	w.WriteLine(l.params())
	l.renderWhere(w)
	return w.String()
}
