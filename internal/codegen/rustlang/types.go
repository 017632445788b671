package rustlang

import (
	"github.com/okra-platform/rustgen/internal/schema"
)

// rustType maps a schema type reference to a Rust type. Optional values
// are wrapped in Option; list types become Vec.
func rustType(typ string, required bool) string {
	base := requiredType(typ)
	if !required {
		return "Option<" + base + ">"
	}
	return base
}

func requiredType(typ string) string {
	if elem, ok := schema.ListElem(typ); ok {
		return "Vec<" + requiredType(elem) + ">"
	}

	switch typ {
	case "String", "ID", "Time":
		return "String"
	case "Int", "Int32":
		return "i32"
	case "Int64":
		return "i64"
	case "UInt32":
		return "u32"
	case "UInt64":
		return "u64"
	case "Float":
		return "f32"
	case "Float64":
		return "f64"
	case "Boolean":
		return "bool"
	case "Bytes":
		return "Vec<u8>"
	case "Any":
		return "serde_json::Value"
	default:
		return pascalCase(typ)
	}
}

// returnType is the success type of a service method.
func returnType(typ string) string {
	if typ == "" {
		return "()"
	}
	return requiredType(typ)
}
