package schema

import (
	"fmt"
	"strings"

	"github.com/wundergraph/graphql-go-tools/v2/pkg/ast"
	"github.com/wundergraph/graphql-go-tools/v2/pkg/astparser"
)

// ParseSchema parses a .rgen.gql document into the schema model.
func ParseSchema(input string) (*Schema, error) {
	doc, report := astparser.ParseGraphqlDocumentString(PreprocessGraphQL(input))
	if report.HasErrors() {
		return nil, fmt.Errorf("%w: %v", ErrParse, report)
	}

	schema := &Schema{
		Types:    []ObjectType{},
		Enums:    []EnumType{},
		Services: []Service{},
	}

	for i := range doc.RootNodes {
		node := doc.RootNodes[i]
		switch node.Kind {
		case ast.NodeKindObjectTypeDefinition:
			parseObjectType(&doc, node.Ref, schema)
		case ast.NodeKindInputObjectTypeDefinition:
			parseInputType(&doc, node.Ref, schema)
		case ast.NodeKindEnumTypeDefinition:
			parseEnumType(&doc, node.Ref, schema)
		}
	}

	return schema, nil
}

func parseObjectType(doc *ast.Document, ref int, schema *Schema) {
	typeDef := doc.ObjectTypeDefinitions[ref]
	typeName := doc.Input.ByteSliceString(typeDef.Name)

	switch {
	case typeName == metaTypeName:
		parseMetadata(doc, typeDef, schema)
		return
	case strings.HasPrefix(typeName, servicePrefix):
		parseService(doc, typeDef, strings.TrimPrefix(typeName, servicePrefix), schema)
		return
	}

	objType := ObjectType{
		Name:   typeName,
		Doc:    getDescription(doc, typeDef.Description),
		Fields: []Field{},
	}
	for _, fieldRef := range typeDef.FieldsDefinition.Refs {
		fieldDef := doc.FieldDefinitions[fieldRef]
		objType.Fields = append(objType.Fields, newField(doc,
			doc.Input.ByteSliceString(fieldDef.Name), fieldDef.Type, fieldDef.Description, fieldDef.Directives))
	}

	schema.Types = append(schema.Types, objType)
}

// parseInputType maps GraphQL input objects onto ordinary object types; the
// generated Rust does not distinguish them.
func parseInputType(doc *ast.Document, ref int, schema *Schema) {
	inputDef := doc.InputObjectTypeDefinitions[ref]

	objType := ObjectType{
		Name:   doc.Input.ByteSliceString(inputDef.Name),
		Doc:    getDescription(doc, inputDef.Description),
		Fields: []Field{},
	}
	for _, valueRef := range inputDef.InputFieldsDefinition.Refs {
		valueDef := doc.InputValueDefinitions[valueRef]
		objType.Fields = append(objType.Fields, newField(doc,
			doc.Input.ByteSliceString(valueDef.Name), valueDef.Type, valueDef.Description, valueDef.Directives))
	}

	schema.Types = append(schema.Types, objType)
}

func newField(doc *ast.Document, name string, typeRef int, desc ast.Description, directives ast.DirectiveList) Field {
	typeStr, required := parseType(doc, typeRef)
	return Field{
		Name:       name,
		Type:       typeStr,
		Required:   required,
		Doc:        getDescription(doc, desc),
		Directives: parseDirectives(doc, directives),
	}
}

func parseEnumType(doc *ast.Document, ref int, schema *Schema) {
	enumDef := doc.EnumTypeDefinitions[ref]

	enumType := EnumType{
		Name:   doc.Input.ByteSliceString(enumDef.Name),
		Doc:    getDescription(doc, enumDef.Description),
		Values: []EnumValue{},
	}
	for _, valueRef := range enumDef.EnumValuesDefinition.Refs {
		valueDef := doc.EnumValueDefinitions[valueRef]
		enumType.Values = append(enumType.Values, EnumValue{
			Name: doc.Input.ByteSliceString(valueDef.EnumValue),
			Doc:  getDescription(doc, valueDef.Description),
		})
	}

	schema.Enums = append(schema.Enums, enumType)
}

func parseMetadata(doc *ast.Document, typeDef ast.ObjectTypeDefinition, schema *Schema) {
	for _, fieldRef := range typeDef.FieldsDefinition.Refs {
		fieldDef := doc.FieldDefinitions[fieldRef]
		for _, directiveRef := range fieldDef.Directives.Refs {
			directive := doc.Directives[directiveRef]
			if doc.Input.ByteSliceString(directive.Name) != "rustgen" {
				continue
			}
			args := parseDirectiveArgs(doc, directive)
			schema.Meta.Namespace = args["namespace"]
			schema.Meta.Version = args["version"]
			schema.Meta.Module = args["module"]
			return
		}
	}
}

func parseService(doc *ast.Document, typeDef ast.ObjectTypeDefinition, name string, schema *Schema) {
	service := Service{
		Name:    name,
		Doc:     getDescription(doc, typeDef.Description),
		Methods: []Method{},
	}
	for _, fieldRef := range typeDef.FieldsDefinition.Refs {
		service.Methods = append(service.Methods, parseMethod(doc, fieldRef))
	}

	schema.Services = append(schema.Services, service)
}

func parseMethod(doc *ast.Document, fieldRef int) Method {
	fieldDef := doc.FieldDefinitions[fieldRef]

	method := Method{
		Name:       doc.Input.ByteSliceString(fieldDef.Name),
		Doc:        getDescription(doc, fieldDef.Description),
		Directives: parseDirectives(doc, fieldDef.Directives),
	}
	method.OutputType, _ = parseType(doc, fieldDef.Type)

	// only the first argument is significant: it names the input type
	if len(fieldDef.ArgumentsDefinition.Refs) > 0 {
		argDef := doc.InputValueDefinitions[fieldDef.ArgumentsDefinition.Refs[0]]
		method.InputType, _ = parseType(doc, argDef.Type)
	}

	return method
}

// parseType renders a type reference as "Name" or "[Elem]" and reports
// whether the outermost type is non-null.
func parseType(doc *ast.Document, typeRef int) (string, bool) {
	required := false
	if doc.Types[typeRef].TypeKind == ast.TypeKindNonNull {
		required = true
		typeRef = doc.Types[typeRef].OfType
	}

	switch doc.Types[typeRef].TypeKind {
	case ast.TypeKindList:
		inner, _ := parseType(doc, doc.Types[typeRef].OfType)
		return "[" + inner + "]", required
	case ast.TypeKindNamed:
		return doc.Input.ByteSliceString(doc.Types[typeRef].Name), required
	}
	return "Unknown", required
}

func parseDirectives(doc *ast.Document, directives ast.DirectiveList) []Directive {
	var result []Directive
	for _, directiveRef := range directives.Refs {
		directive := doc.Directives[directiveRef]
		result = append(result, Directive{
			Name: doc.Input.ByteSliceString(directive.Name),
			Args: parseDirectiveArgs(doc, directive),
		})
	}
	return result
}

func parseDirectiveArgs(doc *ast.Document, directive ast.Directive) map[string]string {
	args := make(map[string]string)
	for _, argRef := range directive.Arguments.Refs {
		name := doc.Input.ByteSliceString(doc.Arguments[argRef].Name)
		args[name] = parseValue(doc, doc.ArgumentValue(argRef))
	}
	return args
}

func parseValue(doc *ast.Document, value ast.Value) string {
	switch value.Kind {
	case ast.ValueKindString:
		return doc.StringValueContentString(value.Ref)
	case ast.ValueKindEnum:
		if value.Ref >= 0 && value.Ref < len(doc.EnumValues) {
			return doc.Input.ByteSliceString(doc.EnumValues[value.Ref].Name)
		}
	case ast.ValueKindBoolean:
		// Ref is 0 for false and 1 for true
		if value.Ref >= 0 && value.Ref < len(doc.BooleanValues) {
			if doc.BooleanValues[value.Ref] {
				return "true"
			}
			return "false"
		}
	case ast.ValueKindInteger:
		return fmt.Sprintf("%d", doc.IntValueAsInt(value.Ref))
	case ast.ValueKindFloat:
		return fmt.Sprintf("%g", doc.FloatValueAsFloat32(value.Ref))
	}
	return ""
}

func getDescription(doc *ast.Document, desc ast.Description) string {
	if !desc.IsDefined {
		return ""
	}
	return strings.TrimSpace(doc.Input.ByteSliceString(desc.Content))
}
