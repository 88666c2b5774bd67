// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema loads JSON Schema documents and converts them into the
// same type graph the sample inferencer produces.
package jschema

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// Schema aliases the upstream schema type so callers only import jschema.
type Schema = jsonschema.Schema

// extractKeyOrder walks raw JSON and records the key order of every
// "properties" object, keyed by its dotted path (e.g. "properties",
// "$defs.Address.properties"). Schema property maps lose this order.
func extractKeyOrder(data []byte) (map[string][]string, error) {
	result := make(map[string][]string)

	dec := json.NewDecoder(bytes.NewReader(data))
	var walk func(path string) error
	walk = func(path string) error {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		delim, ok := tok.(json.Delim)
		if !ok {
			return nil
		}
		switch delim {
		case '{':
			var keys []string
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return err
				}
				key, ok := keyTok.(string)
				if !ok {
					continue
				}
				keys = append(keys, key)
				childPath := key
				if path != "" {
					childPath = path + "." + key
				}
				if err := walk(childPath); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil {
				return err
			}
			if path == "properties" || strings.HasSuffix(path, ".properties") {
				result[path] = keys
			}
		case '[':
			for dec.More() {
				if err := walk(path); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(""); err != nil {
		return nil, err
	}
	return result, nil
}

// orderedProperties returns a schema's property names in source order when
// known, falling back to a sorted spelling so output stays deterministic.
func orderedProperties(s *Schema, keyOrder map[string][]string, path string) []string {
	if order, ok := keyOrder[path]; ok {
		var names []string
		for _, key := range order {
			if _, exists := s.Properties[key]; exists {
				names = append(names, key)
			}
		}
		return names
	}

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
