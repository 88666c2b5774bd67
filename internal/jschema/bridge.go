// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"fmt"
	"strings"

	"github.com/dacolabs/csharpify/internal/infer"
)

// ToNode converts the loaded schema into the inferred-type graph, so the
// schema path and the sample path meet before rendering. Internal $defs
// references are resolved; a $def referenced from several places shares
// one node and therefore one declaration.
func (d *Document) ToNode(rootName string) (*infer.Node, error) {
	b := &bridge{
		doc:  d,
		defs: make(map[string]*infer.Node),
	}
	root, err := b.node(d.Schema, "")
	if err != nil {
		return nil, err
	}
	infer.NameTypes(root, rootName)
	return root, nil
}

type bridge struct {
	doc  *Document
	defs map[string]*infer.Node // resolved $defs, also the cycle guard
}

func (b *bridge) node(s *Schema, path string) (*infer.Node, error) {
	if s == nil {
		return &infer.Node{Kind: infer.KindAny}, nil
	}

	if s.Ref != "" {
		return b.resolveRef(s.Ref)
	}

	switch {
	case s.Type == "object" || (s.Type == "" && len(s.Properties) > 0):
		return b.objectNode(s, path)
	case s.Type == "array":
		elem, err := b.node(s.Items, path+".items")
		if err != nil {
			return nil, err
		}
		return &infer.Node{Kind: infer.KindArray, Elem: elem}, nil
	default:
		return scalarNode(s), nil
	}
}

func (b *bridge) objectNode(s *Schema, path string) (*infer.Node, error) {
	required := make(map[string]bool, len(s.Required))
	for _, r := range s.Required {
		required[r] = true
	}

	orderPath := "properties"
	if path != "" {
		orderPath = strings.TrimPrefix(path+".properties", ".")
	}

	n := &infer.Node{Kind: infer.KindObject}
	for _, name := range orderedProperties(s, b.doc.keyOrder, orderPath) {
		childPath := orderPath + "." + name
		child, err := b.node(s.Properties[name], childPath)
		if err != nil {
			return nil, err
		}
		n.Fields = append(n.Fields, infer.Field{
			JSONKey:  name,
			Name:     infer.ToPascalCase(name),
			Type:     child,
			Optional: !required[name],
		})
	}
	return n, nil
}

func (b *bridge) resolveRef(ref string) (*infer.Node, error) {
	name, ok := strings.CutPrefix(ref, "#/$defs/")
	if !ok {
		return nil, fmt.Errorf("unsupported $ref %q: only internal $defs references are supported", ref)
	}
	if n, ok := b.defs[name]; ok {
		return n, nil
	}

	target, ok := b.doc.Schema.Defs[name]
	if !ok {
		return nil, fmt.Errorf("unresolved $ref %q", ref)
	}

	// Reserve the slot before descending so a self-referential $def
	// terminates instead of recursing forever. The $def name is kept as
	// the declaration name.
	placeholder := &infer.Node{Kind: infer.KindObject, Name: infer.ToPascalCase(name)}
	b.defs[name] = placeholder

	resolved, err := b.node(target, "$defs."+name)
	if err != nil {
		return nil, err
	}
	defName := placeholder.Name
	*placeholder = *resolved
	if placeholder.Kind == infer.KindObject || placeholder.Kind == infer.KindEnum {
		placeholder.Name = defName
	}
	return placeholder, nil
}

// scalarNode maps a primitive schema to its node, honoring enum values and
// the date-time and uuid string formats.
func scalarNode(s *Schema) *infer.Node {
	if len(s.Enum) > 0 {
		var values []string
		for _, v := range s.Enum {
			str, ok := v.(string)
			if !ok {
				return &infer.Node{Kind: infer.KindAny}
			}
			values = append(values, str)
		}
		return &infer.Node{Kind: infer.KindEnum, Values: values}
	}

	switch s.Type {
	case "string":
		switch s.Format {
		case "date", "date-time":
			return &infer.Node{Kind: infer.KindDateTime}
		case "uuid":
			return &infer.Node{Kind: infer.KindUUID}
		}
		return &infer.Node{Kind: infer.KindString}
	case "integer":
		return &infer.Node{Kind: infer.KindInt}
	case "number":
		return &infer.Node{Kind: infer.KindFloat}
	case "boolean":
		return &infer.Node{Kind: infer.KindBool}
	case "null":
		return &infer.Node{Kind: infer.KindAny, Nullable: true}
	default:
		return &infer.Node{Kind: infer.KindAny}
	}
}
