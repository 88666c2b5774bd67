// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rewrite

import (
	"sort"
	"strings"

	"github.com/dacolabs/csharpify/internal/render"
	"github.com/dacolabs/csharpify/internal/style"
)

// namespaceEmission prepends the using lines the emitted text needs plus a
// file-scoped namespace declaration. Import necessity is decided from the
// already-substituted collection spellings and from whichever attributes
// survived elimination.
type namespaceEmission struct{}

func (namespaceEmission) Name() string { return "namespace-emission" }

func (namespaceEmission) Apply(doc *render.Document, st style.Settings) {
	if st.Namespace == "" {
		return
	}

	var usings []string

	if needsGenericCollections(doc) {
		usings = append(usings, "System.Collections.Generic")
	}
	if hasAttributes(doc) {
		if u := render.FrameworkUsing(st.Framework); u != "" {
			usings = append(usings, u)
		}
	}
	sort.Strings(usings)

	var sb strings.Builder
	for _, u := range usings {
		sb.WriteString("using ")
		sb.WriteString(u)
		sb.WriteString(";\n")
	}
	if len(usings) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString("namespace ")
	sb.WriteString(st.Namespace)
	sb.WriteString(";")

	doc.Header = sb.String()
}

// needsGenericCollections reports whether any field spells a generic
// collection type. Plain arrays need no import.
func needsGenericCollections(doc *render.Document) bool {
	for i := range doc.Units {
		for _, f := range doc.Units[i].Fields {
			if strings.Contains(f.CSType, "List<") || strings.Contains(f.CSType, "IEnumerable<") {
				return true
			}
		}
	}
	return false
}

func hasAttributes(doc *render.Document) bool {
	for i := range doc.Units {
		for _, f := range doc.Units[i].Fields {
			if f.Attribute != "" {
				return true
			}
		}
	}
	return false
}
