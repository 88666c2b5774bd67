// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package convert orchestrates one JSON-to-C# conversion: settings
// resolution, type inference, canonical rendering, and the rewrite
// pipeline, in that order.
package convert

import (
	"errors"
	"fmt"

	"github.com/dacolabs/csharpify/internal/infer"
	"github.com/dacolabs/csharpify/internal/render"
	"github.com/dacolabs/csharpify/internal/rewrite"
	"github.com/dacolabs/csharpify/internal/style"
)

var (
	// ErrInput indicates malformed or unsupported JSON reaching inference.
	ErrInput = errors.New("invalid input")

	// ErrConfig indicates an invalid root name or inconsistent settings,
	// detected before inference begins.
	ErrConfig = errors.New("invalid configuration")
)

// DefaultRootName is used when the caller supplies no root type name.
const DefaultRootName = "Root"

// Convert turns one or more JSON samples into the final C# text. The
// settings snapshot is validated up front; once rendering has produced a
// document, the pipeline stages are total and cannot fail.
func Convert(samples [][]byte, rootName string, st style.Settings) (string, error) {
	if rootName == "" {
		rootName = DefaultRootName
	}
	if !style.IsIdentifier(rootName) {
		return "", fmt.Errorf("%w: root name %q is not a valid identifier", ErrConfig, rootName)
	}
	if err := st.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfig, err)
	}

	root, err := infer.Infer(samples, rootName, infer.Options{
		InferEnums:     st.InferEnums,
		InferDateTimes: st.InferDateTimes,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInput, err)
	}

	doc := render.Render(root, st)
	rewrite.Run(doc, st)

	return doc.String(), nil
}

// ConvertNode runs rendering and the pipeline over an already-built type
// graph, for callers that obtain the graph elsewhere (e.g. from a JSON
// Schema document).
func ConvertNode(root *infer.Node, st style.Settings) (string, error) {
	if err := st.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfig, err)
	}
	named := root
	for named.Kind == infer.KindArray && named.Elem != nil {
		named = named.Elem
	}
	if named.Name != "" && !style.IsIdentifier(named.Name) {
		return "", fmt.Errorf("%w: root name %q is not a valid identifier", ErrConfig, named.Name)
	}
	doc := render.Render(root, st)
	rewrite.Run(doc, st)
	return doc.String(), nil
}
