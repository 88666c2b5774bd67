// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package infer derives a C#-oriented type graph from raw JSON samples.
package infer

import "strings"

// Kind identifies the variant of a Node.
type Kind int

// Node kinds. The scalar kinds form the widening lattice used during
// unification; Any is its top element.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindDateTime
	KindUUID
	KindAny
	KindObject
	KindArray
	KindEnum
)

// Node is one type in the inferred graph.
type Node struct {
	Kind     Kind
	Name     string   // object and enum types; assigned after unification
	Fields   []Field  // object types, in first-seen key order
	Elem     *Node    // array element type
	Values   []string // enum literal values, in first-seen order
	Nullable bool     // a null was observed for this position

	// seen collects string observations for enum inference. It is evidence,
	// not part of the resulting type.
	seen []string
}

// Field is one named member of an object type.
type Field struct {
	JSONKey  string // verbatim JSON key
	Name     string // derived C# identifier
	Type     *Node
	Optional bool // absent in at least one sample
}

// String names the kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindDateTime:
		return "dateTime"
	case KindUUID:
		return "uuid"
	case KindAny:
		return "any"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// signature produces a canonical description of a node's shape, used to
// recognize structurally identical object types so they share one
// declaration instead of getting suffixed duplicates.
func (n *Node) signature() string {
	if n == nil {
		return "-"
	}
	switch n.Kind {
	case KindObject:
		var sb strings.Builder
		sb.WriteString("{")
		for _, f := range n.Fields {
			sb.WriteString(f.JSONKey)
			if f.Optional {
				sb.WriteString("?")
			}
			sb.WriteString(":")
			sb.WriteString(f.Type.signature())
			sb.WriteString(";")
		}
		sb.WriteString("}")
		return sb.String()
	case KindArray:
		return "[" + n.Elem.signature() + "]"
	case KindEnum:
		return "enum(" + strings.Join(n.Values, ",") + ")"
	default:
		return n.Kind.String()
	}
}
