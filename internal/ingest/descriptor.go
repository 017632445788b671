package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okra-platform/rustgen/internal/schema"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// wellKnownTypes maps google.protobuf message types onto schema types.
var wellKnownTypes = map[string]string{
	".google.protobuf.Timestamp":   "Time",
	".google.protobuf.Duration":    "String",
	".google.protobuf.Any":         "Any",
	".google.protobuf.Struct":      "Any",
	".google.protobuf.Value":       "Any",
	".google.protobuf.ListValue":   "Any",
	".google.protobuf.StringValue": "String",
	".google.protobuf.BoolValue":   "Boolean",
	".google.protobuf.Int32Value":  "Int",
	".google.protobuf.Int64Value":  "Int64",
	".google.protobuf.UInt32Value": "UInt32",
	".google.protobuf.UInt64Value": "UInt64",
	".google.protobuf.FloatValue":  "Float",
	".google.protobuf.DoubleValue": "Float64",
	".google.protobuf.BytesValue":  "Bytes",
}

const emptyType = ".google.protobuf.Empty"

// Field numbers of FileDescriptorProto and DescriptorProto used in
// SourceCodeInfo location paths.
const (
	fileMessageTypeTag = 4
	fileEnumTypeTag    = 5
	fileServiceTag     = 6
	messageFieldTag    = 2
	enumValueTag       = 2
	serviceMethodTag   = 2
)

// LoadDescriptorSet decodes a binary FileDescriptorSet, as written by
// `protoc --descriptor_set_out` or `buf build -o`. Messages become object
// types (nested messages are flattened to OuterInner), enums become enums
// and services become services.
func LoadDescriptorSet(data []byte) (*schema.Schema, error) {
	var set descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to decode descriptor set: %w", err)
	}

	s := &schema.Schema{
		Types:    []schema.ObjectType{},
		Enums:    []schema.EnumType{},
		Services: []schema.Service{},
	}
	files := make([]*descriptorpb.FileDescriptorProto, 0, len(set.GetFile()))
	for _, file := range set.GetFile() {
		if !strings.HasPrefix(file.GetPackage(), "google.protobuf") {
			files = append(files, file)
		}
	}

	// every file names its types against its own package, so references
	// across packages resolve through one set-wide index
	idx := newTypeIndex(files)
	for _, file := range files {
		if s.Meta.Namespace == "" {
			s.Meta.Namespace = file.GetPackage()
		}
		newFileMapper(file, idx).mapInto(s)
	}
	return s, nil
}

// typeIndex maps fully-qualified proto names (".pkg.Outer.Inner") onto
// schema names ("OuterInner") and records map entry messages.
type typeIndex struct {
	names    map[string]string
	mapTypes map[string]bool
}

func newTypeIndex(files []*descriptorpb.FileDescriptorProto) *typeIndex {
	idx := &typeIndex{names: make(map[string]string), mapTypes: make(map[string]bool)}
	for _, file := range files {
		scope := "."
		if pkg := file.GetPackage(); pkg != "" {
			scope = "." + pkg + "."
		}
		for _, msg := range file.GetMessageType() {
			idx.addMessage(msg, scope, "")
		}
		for _, enum := range file.GetEnumType() {
			idx.names[scope+enum.GetName()] = enum.GetName()
		}
	}
	return idx
}

func (idx *typeIndex) addMessage(msg *descriptorpb.DescriptorProto, scope, parent string) {
	full := scope + msg.GetName()
	name := parent + msg.GetName()
	idx.names[full] = name
	if msg.GetOptions().GetMapEntry() {
		idx.mapTypes[full] = true
	}
	for _, nested := range msg.GetNestedType() {
		idx.addMessage(nested, full+".", name)
	}
	for _, enum := range msg.GetEnumType() {
		idx.names[full+"."+enum.GetName()] = name + enum.GetName()
	}
}

// localName resolves a fully-qualified reference. Names declared outside
// the set fall back to the last path segment.
func (idx *typeIndex) localName(fullName string) string {
	if name, ok := idx.names[fullName]; ok {
		return name
	}
	return fullName[strings.LastIndex(fullName, ".")+1:]
}

type fileMapper struct {
	file     *descriptorpb.FileDescriptorProto
	types    *typeIndex
	comments map[string]string
}

func newFileMapper(file *descriptorpb.FileDescriptorProto, types *typeIndex) *fileMapper {
	m := &fileMapper{
		file:     file,
		types:    types,
		comments: make(map[string]string),
	}
	for _, loc := range file.GetSourceCodeInfo().GetLocation() {
		if c := strings.TrimSpace(loc.GetLeadingComments()); c != "" {
			m.comments[pathKey(loc.GetPath())] = c
		}
	}
	return m
}

func pathKey(path []int32) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strconv.Itoa(int(p))
	}
	return strings.Join(parts, ".")
}

func (m *fileMapper) doc(path ...int32) string {
	return m.comments[pathKey(path)]
}

func (m *fileMapper) mapInto(s *schema.Schema) {
	for i, msg := range m.file.GetMessageType() {
		m.message(s, msg, "", []int32{fileMessageTypeTag, int32(i)})
	}
	for i, enum := range m.file.GetEnumType() {
		s.Enums = append(s.Enums, m.enum(enum, "", []int32{fileEnumTypeTag, int32(i)}))
	}
	for i, svc := range m.file.GetService() {
		s.Services = append(s.Services, m.service(svc, []int32{fileServiceTag, int32(i)}))
	}
}

func (m *fileMapper) message(s *schema.Schema, msg *descriptorpb.DescriptorProto, parent string, path []int32) {
	name := parent + msg.GetName()
	if msg.GetOptions().GetMapEntry() {
		return
	}

	for i, nested := range msg.GetNestedType() {
		m.message(s, nested, name, append(clonePath(path), 3, int32(i)))
	}
	for i, enum := range msg.GetEnumType() {
		s.Enums = append(s.Enums, m.enum(enum, name, append(clonePath(path), 4, int32(i))))
	}

	obj := schema.ObjectType{
		Name:   name,
		Doc:    m.doc(path...),
		Fields: []schema.Field{},
	}
	for i, field := range msg.GetField() {
		f := m.field(field)
		f.Doc = m.doc(append(clonePath(path), messageFieldTag, int32(i))...)
		obj.Fields = append(obj.Fields, f)
	}
	s.Types = append(s.Types, obj)
}

func (m *fileMapper) field(field *descriptorpb.FieldDescriptorProto) schema.Field {
	f := schema.Field{Name: field.GetJsonName()}
	if f.Name == "" {
		f.Name = field.GetName()
	}

	typ, isMessage := m.fieldType(field)
	switch {
	case m.isMap(field):
		// map<K, V> has no counterpart in the schema model
		f.Type, f.Required = "Any", true
	case field.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_REPEATED:
		f.Type, f.Required = "["+typ+"]", true
	case field.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_REQUIRED:
		f.Type, f.Required = typ, true
	default:
		// proto3 scalars always carry a value; messages, oneof members and
		// explicit optionals may be absent
		f.Type = typ
		f.Required = !isMessage && field.OneofIndex == nil && !field.GetProto3Optional() &&
			m.file.GetSyntax() == "proto3"
	}
	return f
}

// fieldType returns the schema type of a field and whether it refers to a
// message.
func (m *fileMapper) fieldType(field *descriptorpb.FieldDescriptorProto) (string, bool) {
	switch field.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:
		return "Float64", false
	case descriptorpb.FieldDescriptorProto_TYPE_FLOAT:
		return "Float", false
	case descriptorpb.FieldDescriptorProto_TYPE_INT64, descriptorpb.FieldDescriptorProto_TYPE_SINT64,
		descriptorpb.FieldDescriptorProto_TYPE_SFIXED64:
		return "Int64", false
	case descriptorpb.FieldDescriptorProto_TYPE_UINT64, descriptorpb.FieldDescriptorProto_TYPE_FIXED64:
		return "UInt64", false
	case descriptorpb.FieldDescriptorProto_TYPE_INT32, descriptorpb.FieldDescriptorProto_TYPE_SINT32,
		descriptorpb.FieldDescriptorProto_TYPE_SFIXED32:
		return "Int", false
	case descriptorpb.FieldDescriptorProto_TYPE_UINT32, descriptorpb.FieldDescriptorProto_TYPE_FIXED32:
		return "UInt32", false
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return "Boolean", false
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return "String", false
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return "Bytes", false
	case descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		return m.types.localName(field.GetTypeName()), false
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE:
		if wk, ok := wellKnownTypes[field.GetTypeName()]; ok {
			return wk, true
		}
		return m.types.localName(field.GetTypeName()), true
	}
	return "Any", false
}

func (m *fileMapper) isMap(field *descriptorpb.FieldDescriptorProto) bool {
	return field.GetType() == descriptorpb.FieldDescriptorProto_TYPE_MESSAGE &&
		m.types.mapTypes[field.GetTypeName()]
}

func (m *fileMapper) enum(enum *descriptorpb.EnumDescriptorProto, parent string, path []int32) schema.EnumType {
	out := schema.EnumType{
		Name:   parent + enum.GetName(),
		Doc:    m.doc(path...),
		Values: []schema.EnumValue{},
	}
	for i, value := range enum.GetValue() {
		out.Values = append(out.Values, schema.EnumValue{
			Name: value.GetName(),
			Doc:  m.doc(append(clonePath(path), enumValueTag, int32(i))...),
		})
	}
	return out
}

func (m *fileMapper) service(svc *descriptorpb.ServiceDescriptorProto, path []int32) schema.Service {
	out := schema.Service{
		Name:    svc.GetName(),
		Doc:     m.doc(path...),
		Methods: []schema.Method{},
	}
	for i, method := range svc.GetMethod() {
		out.Methods = append(out.Methods, schema.Method{
			Name:       method.GetName(),
			InputType:  m.methodType(method.GetInputType()),
			OutputType: m.methodType(method.GetOutputType()),
			Doc:        m.doc(append(clonePath(path), serviceMethodTag, int32(i))...),
		})
	}
	return out
}

func (m *fileMapper) methodType(fullName string) string {
	if fullName == emptyType {
		return ""
	}
	if wk, ok := wellKnownTypes[fullName]; ok {
		return wk
	}
	return m.types.localName(fullName)
}

func clonePath(path []int32) []int32 {
	return append(make([]int32, 0, len(path)+2), path...)
}
