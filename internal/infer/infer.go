// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package infer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Options gate the optional lexical inferences.
type Options struct {
	InferEnums     bool
	InferDateTimes bool
}

// Enum inference thresholds: at most maxEnumValues distinct strings, and
// each value observed twice on average, before a string field is promoted.
const maxEnumValues = 8

// Infer derives the least-upper-bound type graph consistent with every
// sample. rootName becomes the root object's type name; nested object and
// enum names are derived from their introducing JSON keys and
// disambiguated deterministically.
func Infer(samples [][]byte, rootName string, opts Options) (*Node, error) {
	if len(samples) == 0 {
		return nil, errors.New("at least one JSON sample is required")
	}

	var root *Node
	for i, data := range samples {
		v, err := decodeSample(data)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i+1, err)
		}
		root = unify(root, fromValue(v, opts))
	}

	if opts.InferEnums {
		promoteEnums(root)
	}
	normalize(root)
	NameTypes(root, rootName)

	return root, nil
}

// fromValue infers the type of a single decoded JSON value.
func fromValue(v any, opts Options) *Node {
	switch val := v.(type) {
	case nil:
		return &Node{Kind: KindNull, Nullable: true}
	case bool:
		return &Node{Kind: KindBool}
	case json.Number:
		if strings.ContainsAny(string(val), ".eE") {
			return &Node{Kind: KindFloat}
		}
		return &Node{Kind: KindInt}
	case string:
		if opts.InferDateTimes {
			if looksLikeDateTime(val) {
				return &Node{Kind: KindDateTime, seen: []string{val}}
			}
			if looksLikeUUID(val) {
				return &Node{Kind: KindUUID, seen: []string{val}}
			}
		}
		return &Node{Kind: KindString, seen: []string{val}}
	case object:
		n := &Node{Kind: KindObject}
		for _, m := range val {
			n.Fields = append(n.Fields, Field{
				JSONKey: m.key,
				Name:    ToPascalCase(m.key),
				Type:    fromValue(m.val, opts),
			})
		}
		return n
	case []any:
		n := &Node{Kind: KindArray}
		for _, elem := range val {
			n.Elem = unify(n.Elem, fromValue(elem, opts))
		}
		return n
	default:
		return &Node{Kind: KindAny}
	}
}

// unify merges two inferred nodes into their least upper bound.
//
// The widening lattice: Null lifts into nullability of the other side;
// Int and Float join at Float; DateTime and UUID demote to String when
// mixed with plain strings; every other conflict, including object versus
// scalar, widens to Any.
func unify(a, b *Node) *Node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	nullable := a.Nullable || b.Nullable

	// Null is the bottom element: it only contributes nullability.
	if a.Kind == KindNull {
		b.Nullable = true
		return b
	}
	if b.Kind == KindNull {
		a.Nullable = true
		return a
	}

	if a.Kind == b.Kind {
		switch a.Kind {
		case KindObject:
			a.Fields = unifyFields(a.Fields, b.Fields)
		case KindArray:
			a.Elem = unify(a.Elem, b.Elem)
		default:
			a.seen = append(a.seen, b.seen...)
		}
		a.Nullable = nullable
		return a
	}

	joined := joinScalars(a, b)
	joined.Nullable = nullable
	return joined
}

// joinScalars widens two nodes of different non-null kinds.
func joinScalars(a, b *Node) *Node {
	pair := func(x, y Kind) bool {
		return (a.Kind == x && b.Kind == y) || (a.Kind == y && b.Kind == x)
	}

	switch {
	case pair(KindInt, KindFloat):
		return &Node{Kind: KindFloat}
	case pair(KindDateTime, KindString), pair(KindUUID, KindString), pair(KindDateTime, KindUUID):
		return &Node{Kind: KindString, seen: append(a.seen, b.seen...)}
	default:
		return &Node{Kind: KindAny}
	}
}

// unifyFields merges two ordered field lists. Keys keep the first list's
// order, new keys append in their own order, and one-sided keys become
// optional.
func unifyFields(a, b []Field) []Field {
	index := make(map[string]int, len(a))
	for i, f := range a {
		index[f.JSONKey] = i
	}

	inB := make(map[string]bool, len(b))
	for _, f := range b {
		inB[f.JSONKey] = true
		if i, ok := index[f.JSONKey]; ok {
			a[i].Type = unify(a[i].Type, f.Type)
			a[i].Optional = a[i].Optional || f.Optional
		} else {
			f.Optional = true
			a = append(a, f)
		}
	}

	for i := range a {
		if !inB[a[i].JSONKey] {
			a[i].Optional = true
		}
	}
	return a
}

// promoteEnums converts string nodes whose observed values form a small
// repeated set into enum nodes. Values keep first-seen order.
func promoteEnums(n *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindObject:
		for i := range n.Fields {
			promoteEnums(n.Fields[i].Type)
		}
	case KindArray:
		promoteEnums(n.Elem)
	case KindString:
		distinct := make(map[string]bool, len(n.seen))
		var values []string
		for _, s := range n.seen {
			if s == "" {
				return // empty string has no enum member spelling
			}
			if distinct[s] {
				continue
			}
			distinct[s] = true
			values = append(values, s)
		}
		if len(values) == 0 || len(values) > maxEnumValues {
			return
		}
		if len(n.seen) < 2*len(values) {
			return
		}
		n.Kind = KindEnum
		n.Values = values
	}
}

// normalize resolves transient kinds left over from unification: null-only
// positions become nullable Any, and empty arrays get an Any element.
func normalize(n *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindNull:
		n.Kind = KindAny
		n.Nullable = true
	case KindObject:
		for i := range n.Fields {
			normalize(n.Fields[i].Type)
		}
	case KindArray:
		if n.Elem == nil {
			n.Elem = &Node{Kind: KindAny}
		}
		normalize(n.Elem)
	}
}

// NameTypes assigns declaration names breadth-first from the root.
// Structurally identical shapes reuse one name; colliding distinct shapes
// get a numeric suffix.
func NameTypes(root *Node, rootName string) {
	type pending struct {
		node      *Node
		candidate string
	}

	sigToName := make(map[string]string)
	used := make(map[string]bool)

	assign := func(n *Node, candidate string) {
		// A pre-assigned name (e.g. from a schema $def) wins.
		if n.Name != "" {
			used[n.Name] = true
			sigToName[n.signature()] = n.Name
			return
		}
		sig := n.signature()
		if name, ok := sigToName[sig]; ok {
			n.Name = name
			return
		}
		name := candidate
		for i := 2; used[name]; i++ {
			name = fmt.Sprintf("%s%d", candidate, i)
		}
		used[name] = true
		sigToName[sig] = name
		n.Name = name
	}

	queue := []pending{{node: root, candidate: rootName}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		n := p.node
		for n.Kind == KindArray {
			n = n.Elem
		}

		switch n.Kind {
		case KindObject:
			assign(n, p.candidate)
			dedupeFieldNames(n.Fields)
			for i := range n.Fields {
				f := &n.Fields[i]
				queue = append(queue, pending{node: f.Type, candidate: ToPascalCase(f.JSONKey)})
			}
		case KindEnum:
			assign(n, p.candidate)
		}
	}
}

// dedupeFieldNames suffixes property names within one object when distinct
// JSON keys collapse to the same identifier (e.g. "user_id" and "userId").
// Already-suffixed names pass through unchanged, so repeat visits of a
// shared node are harmless.
func dedupeFieldNames(fields []Field) {
	seen := make(map[string]bool, len(fields))
	for i := range fields {
		name := fields[i].Name
		for j := 2; seen[name]; j++ {
			name = fmt.Sprintf("%s%d", fields[i].Name, j)
		}
		seen[name] = true
		fields[i].Name = name
	}
}

// ToPascalCase converts a JSON key to a PascalCase C# identifier. Keys are
// split on non-alphanumeric runes and on lower-to-upper camelCase
// boundaries; a leading digit gets an underscore prefix.
func ToPascalCase(s string) string {
	var parts []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}

	var prev rune
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			cur.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			if prev >= 'a' && prev <= 'z' || prev >= '0' && prev <= '9' {
				flush()
			}
			cur.WriteRune(r)
		default:
			flush()
		}
		prev = r
	}
	flush()

	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(part[1:])
	}

	result := sb.String()
	if result == "" {
		return "Field"
	}
	if result[0] >= '0' && result[0] <= '9' {
		result = "_" + result
	}
	return result
}
