// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package render serializes an inferred type graph into baseline C#
// declarations: one unit per object or enum type, fields as mutable
// get/set properties. Everything stylistic beyond the binary
// array-versus-list decision is the rewrite pipeline's job.
package render

import (
	"fmt"

	"github.com/dacolabs/csharpify/internal/infer"
	"github.com/dacolabs/csharpify/internal/style"
)

// Render produces the canonical document for a type graph: root first,
// breadth-first over field declaration order, one unit per distinct type
// name. Property-name attributes are emitted pre-emptively for every field
// whose key differs from its derived name in exact spelling (or for every
// field when the attribute mode forces unconditional rendering); the
// pipeline decides what survives.
func Render(root *infer.Node, st style.Settings) *Document {
	baseline := style.CollectionList
	if st.Collection == style.CollectionArray {
		baseline = style.CollectionArray
	}

	doc := &Document{}
	emitted := make(map[string]bool)

	queue := []*infer.Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		for n.Kind == infer.KindArray {
			n = n.Elem
		}

		switch n.Kind {
		case infer.KindObject:
			if emitted[n.Name] {
				continue
			}
			emitted[n.Name] = true

			u := Unit{
				Name:    n.Name,
				Kind:    UnitClass,
				Keyword: "class",
				Partial: true,
			}
			for _, f := range n.Fields {
				slot := FieldSlot{
					JSONKey:  f.JSONKey,
					Name:     f.Name,
					Type:     f.Type,
					Optional: f.Optional,
					CSType:   TypeSpelling(f.Type, baseline),
				}
				if st.Framework != style.FrameworkNone &&
					(f.JSONKey != f.Name || st.Attributes == style.AttributeAlways) {
					slot.Attribute = Attribute(st.Framework, f.JSONKey)
				}
				u.Fields = append(u.Fields, slot)
				queue = append(queue, f.Type)
			}
			u.Rebuild()
			doc.Units = append(doc.Units, u)

		case infer.KindEnum:
			if emitted[n.Name] {
				continue
			}
			emitted[n.Name] = true

			u := Unit{
				Name:    n.Name,
				Kind:    UnitEnum,
				Keyword: "enum",
				Members: enumMembers(n.Values),
			}
			u.Rebuild()
			doc.Units = append(doc.Units, u)
		}
	}

	return doc
}

// enumMembers derives member identifiers from literal values, suffixing
// duplicates that collapse to the same identifier.
func enumMembers(values []string) []string {
	used := make(map[string]bool, len(values))
	members := make([]string, 0, len(values))
	for _, v := range values {
		m := infer.ToPascalCase(v)
		name := m
		for i := 2; used[name]; i++ {
			name = fmt.Sprintf("%s%d", m, i)
		}
		used[name] = true
		members = append(members, name)
	}
	return members
}
