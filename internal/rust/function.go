package rust

import (
	"fmt"
	"slices"
	"strings"

	"github.com/okra-platform/rustgen/internal/codegen/writer"
)

// unitType is rendered when a signature has no return type.
const unitType = "()"

// Parameter is a single function argument.
type Parameter struct {
	name       string
	ty         string
	attributes attributeList
}

// NewParameter creates the argument "name: ty". Neither value is validated;
// a receiver is expressed as NewParameter("self", "&Self") or similar.
func NewParameter(name, ty string) *Parameter {
	return &Parameter{name: name, ty: ty}
}

func (p *Parameter) AddAttribute(attr Attribute) *Parameter {
	p.attributes.add(attr)
	return p
}

func (p *Parameter) AddAttributes(attrs ...Attribute) *Parameter {
	p.attributes.add(attrs...)
	return p
}

func (p *Parameter) Name() string { return p.name }

func (p *Parameter) Type() string { return p.ty }

func (p *Parameter) Attributes() []Attribute { return slices.Clone(p.attributes) }

// Generate renders the attributes inline followed by "name: ty".
func (p *Parameter) Generate() string {
	return p.attributes.inline() + p.name + ": " + p.ty
}

func (p *Parameter) clone() Parameter {
	c := *p
	c.attributes = p.attributes.clone()
	return c
}

// FunctionSignature is everything of a function up to its body. Traits hold
// bare signatures; Function pairs one with a FunctionBody.
type FunctionSignature struct {
	name       string
	isPub      bool
	isAsync    bool
	parameters []Parameter
	generics   genericList
	returnType string
	attributes attributeList
}

// NewFunctionSignature creates a private, synchronous signature with no
// parameters and the unit return type.
func NewFunctionSignature(name string) *FunctionSignature {
	return &FunctionSignature{name: name}
}

func (s *FunctionSignature) SetName(name string) *FunctionSignature {
	s.name = name
	return s
}

func (s *FunctionSignature) SetPub(isPub bool) *FunctionSignature {
	s.isPub = isPub
	return s
}

func (s *FunctionSignature) SetAsync(isAsync bool) *FunctionSignature {
	s.isAsync = isAsync
	return s
}

// SetReturnType sets the return type. An empty string restores the unit
// type.
func (s *FunctionSignature) SetReturnType(ty string) *FunctionSignature {
	s.returnType = ty
	return s
}

func (s *FunctionSignature) AddParameter(param *Parameter) *FunctionSignature {
	s.parameters = append(s.parameters, param.clone())
	return s
}

func (s *FunctionSignature) AddParameters(params ...*Parameter) *FunctionSignature {
	for _, p := range params {
		s.AddParameter(p)
	}
	return s
}

func (s *FunctionSignature) AddGeneric(generic *Generic) *FunctionSignature {
	s.generics.add(generic)
	return s
}

func (s *FunctionSignature) AddGenerics(generics ...*Generic) *FunctionSignature {
	s.generics.add(generics...)
	return s
}

func (s *FunctionSignature) AddAttribute(attr Attribute) *FunctionSignature {
	s.attributes.add(attr)
	return s
}

func (s *FunctionSignature) AddAttributes(attrs ...Attribute) *FunctionSignature {
	s.attributes.add(attrs...)
	return s
}

func (s *FunctionSignature) Name() string { return s.name }

func (s *FunctionSignature) IsPub() bool { return s.isPub }

func (s *FunctionSignature) IsAsync() bool { return s.isAsync }

// ReturnType returns the declared return type, or "()" when none is set.
func (s *FunctionSignature) ReturnType() string {
	if s.returnType == "" {
		return unitType
	}
	return s.returnType
}

func (s *FunctionSignature) Parameters() []*Parameter {
	out := make([]*Parameter, len(s.parameters))
	for i := range s.parameters {
		p := s.parameters[i].clone()
		out[i] = &p
	}
	return out
}

func (s *FunctionSignature) Generics() []*Generic { return s.generics.get() }

func (s *FunctionSignature) Attributes() []Attribute { return slices.Clone(s.attributes) }

// Generate renders the signature without a terminator.
func (s *FunctionSignature) Generate() string {
	w := writer.NewWriter(Indent)
	s.renderWith(w, "")
	return w.String()
}

// renderWith writes the signature and ends it with terminator: ";" inside
// a trait, nothing before a body.
func (s *FunctionSignature) renderWith(w *writer.Writer, terminator string) {
	s.attributes.render(w)

	params := make([]string, len(s.parameters))
	for i := range s.parameters {
		params[i] = s.parameters[i].Generate()
	}

	var async string
	if s.isAsync {
		async = "async "
	}
	header := fmt.Sprintf("%s%sfn %s%s(%s) -> %s",
		visibility(s.isPub), async, s.name, s.generics.params(),
		strings.Join(params, ", "), s.ReturnType())

	if len(s.generics) == 0 {
		w.WriteLine(header + terminator)
		return
	}
	s.generics.renderHeader(w, header)
	if terminator != "" {
		w.WriteLine(terminator)
	}
}

func (s *FunctionSignature) clone() FunctionSignature {
	c := *s
	c.parameters = cloneEach(s.parameters, (*Parameter).clone)
	c.generics = s.generics.clone()
	c.attributes = s.attributes.clone()
	return c
}

// bodyChunk is one piece of body text. Rendered chunks come from Generate on
// another node and are re-indented line by line; raw chunks are caller text
// whose inner lines are written untouched.
type bodyChunk struct {
	text     string
	rendered bool
}

// FunctionBody holds the raw body chunks of a function and the attributes
// rendered at the top of the body.
type FunctionBody struct {
	chunks     []bodyChunk
	attributes attributeList
}

// NewFunctionBody creates a body from chunks of Rust source text.
func NewFunctionBody(chunks ...string) *FunctionBody {
	b := &FunctionBody{}
	for _, c := range chunks {
		b.Push(c)
	}
	return b
}

// Push appends a chunk. Only its first line is indented.
func (b *FunctionBody) Push(chunk string) *FunctionBody {
	b.chunks = append(b.chunks, bodyChunk{text: chunk})
	return b
}

// PushNode appends the rendered form of n, indented to the body's level.
func (b *FunctionBody) PushNode(n Node) *FunctionBody {
	b.chunks = append(b.chunks, bodyChunk{text: n.Generate(), rendered: true})
	return b
}

func (b *FunctionBody) AddAttribute(attr Attribute) *FunctionBody {
	b.attributes.add(attr)
	return b
}

func (b *FunctionBody) AddAttributes(attrs ...Attribute) *FunctionBody {
	b.attributes.add(attrs...)
	return b
}

func (b *FunctionBody) Chunks() []string {
	out := make([]string, len(b.chunks))
	for i, c := range b.chunks {
		out[i] = c.text
	}
	return out
}

func (b *FunctionBody) Attributes() []Attribute { return slices.Clone(b.attributes) }

func (b *FunctionBody) Generate() string { return generate(b) }

func (b *FunctionBody) render(w *writer.Writer) {
	b.attributes.render(w)
	for _, c := range b.chunks {
		if c.rendered {
			w.WriteLines(c.text)
		} else {
			w.WriteRaw(c.text)
		}
	}
}

func (b *FunctionBody) clone() FunctionBody {
	return FunctionBody{
		chunks:     slices.Clone(b.chunks),
		attributes: b.attributes.clone(),
	}
}

// Function is a signature with a body. Any Function can act as a method by
// taking a self parameter first.
type Function struct {
	signature FunctionSignature
	body      FunctionBody
}

// NewFunction creates a private function with an empty body.
func NewFunction(name string) *Function {
	return &Function{signature: FunctionSignature{name: name}}
}

func (f *Function) SetPub(isPub bool) *Function {
	f.signature.SetPub(isPub)
	return f
}

func (f *Function) SetAsync(isAsync bool) *Function {
	f.signature.SetAsync(isAsync)
	return f
}

func (f *Function) SetReturnType(ty string) *Function {
	f.signature.SetReturnType(ty)
	return f
}

func (f *Function) AddParameter(param *Parameter) *Function {
	f.signature.AddParameter(param)
	return f
}

func (f *Function) AddParameters(params ...*Parameter) *Function {
	f.signature.AddParameters(params...)
	return f
}

func (f *Function) AddGeneric(generic *Generic) *Function {
	f.signature.AddGeneric(generic)
	return f
}

func (f *Function) AddGenerics(generics ...*Generic) *Function {
	f.signature.AddGenerics(generics...)
	return f
}

// AddAttribute appends an attribute rendered above the signature.
func (f *Function) AddAttribute(attr Attribute) *Function {
	f.signature.AddAttribute(attr)
	return f
}

func (f *Function) AddAttributes(attrs ...Attribute) *Function {
	f.signature.AddAttributes(attrs...)
	return f
}

// AddBodyAttribute appends an attribute rendered at the top of the body,
// typically an inner attribute such as #![allow(unused)].
func (f *Function) AddBodyAttribute(attr Attribute) *Function {
	f.body.AddAttribute(attr)
	return f
}

// SetBody replaces every body chunk with the given one.
func (f *Function) SetBody(chunk string) *Function {
	f.body.chunks = []bodyChunk{{text: chunk}}
	return f
}

// PushIntoBody appends a chunk to the body.
func (f *Function) PushIntoBody(chunk string) *Function {
	f.body.Push(chunk)
	return f
}

// PushNode appends the rendered form of another node to the body.
func (f *Function) PushNode(n Node) *Function {
	f.body.PushNode(n)
	return f
}

// SetSignature replaces the signature with a copy of sig.
func (f *Function) SetSignature(sig *FunctionSignature) *Function {
	f.signature = sig.clone()
	return f
}

// SetFunctionBody replaces the body with a copy of body.
func (f *Function) SetFunctionBody(body *FunctionBody) *Function {
	f.body = body.clone()
	return f
}

// Signature returns a copy of the signature.
func (f *Function) Signature() *FunctionSignature {
	s := f.signature.clone()
	return &s
}

// Body returns a copy of the body.
func (f *Function) Body() *FunctionBody {
	b := f.body.clone()
	return &b
}

func (f *Function) Name() string { return f.signature.name }

func (f *Function) Attributes() []Attribute { return f.signature.Attributes() }

func (f *Function) Generate() string { return generate(f) }

func (f *Function) render(w *writer.Writer) {
	f.signature.renderWith(w, "")
	w.WriteBlock("{", "}", func() {
		f.body.render(w)
	})
}

func (f *Function) clone() Function {
	return Function{signature: f.signature.clone(), body: f.body.clone()}
}
