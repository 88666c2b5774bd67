// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a loaded schema plus the key-order information recovered
// from its raw bytes.
type Document struct {
	Schema   *Schema
	keyOrder map[string][]string
}

// Loader loads schema documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a schema file. The format is determined from
// the file extension; YAML documents are converted to JSON before parsing
// so both paths share one schema decoder.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml"):
		jsonData, err := yamlToJSON(data)
		if err != nil {
			return nil, err
		}
		return Load(jsonData)
	case strings.HasSuffix(filePath, ".json"):
		return Load(data)
	default:
		return nil, fmt.Errorf("unsupported schema format: %s", filePath)
	}
}

// Load parses a JSON Schema from raw JSON bytes.
func Load(data []byte) (*Document, error) {
	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, err
	}

	keyOrder, err := extractKeyOrder(data)
	if err != nil {
		return nil, err
	}

	return &Document{Schema: &schema, keyOrder: keyOrder}, nil
}

// yamlToJSON re-encodes a YAML document as JSON, preserving mapping order
// by walking the YAML node tree directly.
func yamlToJSON(data []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		return encodeYAMLNode(root.Content[0])
	}
	return encodeYAMLNode(&root)
}

func encodeYAMLNode(n *yaml.Node) ([]byte, error) {
	switch n.Kind {
	case yaml.MappingNode:
		var sb strings.Builder
		sb.WriteString("{")
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				sb.WriteString(",")
			}
			key, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return nil, err
			}
			val, err := encodeYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			sb.Write(key)
			sb.WriteString(":")
			sb.Write(val)
		}
		sb.WriteString("}")
		return []byte(sb.String()), nil
	case yaml.SequenceNode:
		var sb strings.Builder
		sb.WriteString("[")
		for i, c := range n.Content {
			if i > 0 {
				sb.WriteString(",")
			}
			val, err := encodeYAMLNode(c)
			if err != nil {
				return nil, err
			}
			sb.Write(val)
		}
		sb.WriteString("]")
		return []byte(sb.String()), nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return json.Marshal(v)
	case yaml.AliasNode:
		return encodeYAMLNode(n.Alias)
	default:
		return []byte("null"), nil
	}
}
