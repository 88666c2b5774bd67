// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package render

import (
	"fmt"

	"github.com/dacolabs/csharpify/internal/infer"
	"github.com/dacolabs/csharpify/internal/style"
)

// TypeSpelling maps an inferred node to its C# type string under the given
// collection style. Nested collections are spelled at every depth.
func TypeSpelling(n *infer.Node, c style.Collection) string {
	switch n.Kind {
	case infer.KindBool:
		return "bool"
	case infer.KindInt:
		return "int"
	case infer.KindFloat:
		return "double"
	case infer.KindString:
		return "string"
	case infer.KindDateTime:
		return "DateTime"
	case infer.KindUUID:
		return "Guid"
	case infer.KindAny:
		return "object"
	case infer.KindObject, infer.KindEnum:
		return n.Name
	case infer.KindArray:
		elem := TypeSpelling(n.Elem, c)
		switch c {
		case style.CollectionArray:
			return elem + "[]"
		case style.CollectionIList:
			return "IList<" + elem + ">"
		case style.CollectionIEnumerable:
			return "IEnumerable<" + elem + ">"
		case style.CollectionIReadOnlyList:
			return "IReadOnlyList<" + elem + ">"
		default:
			return "List<" + elem + ">"
		}
	default:
		return "object"
	}
}

// Attribute returns the framework's property-name attribute spelling for a
// JSON key, or "" when no framework is selected.
func Attribute(f style.Framework, jsonKey string) string {
	switch f {
	case style.FrameworkNewtonsoft:
		return fmt.Sprintf("[JsonProperty(%q)]", jsonKey)
	case style.FrameworkSystemTextJSON:
		return fmt.Sprintf("[JsonPropertyName(%q)]", jsonKey)
	default:
		return ""
	}
}

// FrameworkUsing returns the namespace a framework's attributes live in.
func FrameworkUsing(f style.Framework) string {
	switch f {
	case style.FrameworkNewtonsoft:
		return "Newtonsoft.Json"
	case style.FrameworkSystemTextJSON:
		return "System.Text.Json.Serialization"
	default:
		return ""
	}
}

// IsValueType reports whether the node renders to a C# value type, which is
// exempt from nullability markers and default initializers. Inferred enums
// are C# enums and therefore value types.
func IsValueType(n *infer.Node) bool {
	switch n.Kind {
	case infer.KindBool, infer.KindInt, infer.KindFloat, infer.KindDateTime, infer.KindUUID, infer.KindEnum:
		return true
	default:
		return false
	}
}

// valueTypeNames is the fixed exemption set checked against already-spelled
// types, covering spellings the inferencer itself never produces.
var valueTypeNames = map[string]bool{
	"bool": true, "byte": true, "sbyte": true, "char": true,
	"short": true, "ushort": true, "int": true, "uint": true,
	"long": true, "ulong": true, "float": true, "double": true,
	"decimal": true, "DateTime": true, "DateTimeOffset": true,
	"TimeSpan": true, "Guid": true,
}

// IsValueTypeName reports whether a spelled C# type is in the fixed
// value-type exemption set.
func IsValueTypeName(name string) bool {
	return valueTypeNames[name]
}
