// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rewrite

import (
	"github.com/dacolabs/csharpify/internal/render"
	"github.com/dacolabs/csharpify/internal/style"
)

// collectionSubstitution replaces the baseline collection spelling with the
// configured one. It respells each field's type from its retained type
// node rather than substituting substrings, so an identifier that happens
// to contain "List" is never touched and nested collections are respelled
// at every depth.
type collectionSubstitution struct{}

func (collectionSubstitution) Name() string { return "collection-substitution" }

func (collectionSubstitution) Apply(doc *render.Document, st style.Settings) {
	for i := range doc.Units {
		u := &doc.Units[i]
		changed := false
		for j := range u.Fields {
			f := &u.Fields[j]
			spelled := render.TypeSpelling(f.Type, st.Collection)
			if spelled != f.CSType {
				f.CSType = spelled
				changed = true
			}
		}
		if changed {
			u.Rebuild()
		}
	}
}
