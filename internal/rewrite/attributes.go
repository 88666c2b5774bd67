// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rewrite

import (
	"strings"

	"github.com/dacolabs/csharpify/internal/render"
	"github.com/dacolabs/csharpify/internal/style"
)

// attributeElimination drops a property-name attribute when the JSON key
// and the derived name differ only in case, unless attributes are forced.
// A key that matches its name case-insensitively serializes correctly
// without the attribute under both supported frameworks.
type attributeElimination struct{}

func (attributeElimination) Name() string { return "attribute-elimination" }

func (attributeElimination) Apply(doc *render.Document, st style.Settings) {
	if st.Attributes == style.AttributeAlways {
		return
	}
	for i := range doc.Units {
		u := &doc.Units[i]
		changed := false
		for j := range u.Fields {
			f := &u.Fields[j]
			if f.Attribute == "" {
				continue
			}
			if strings.EqualFold(f.JSONKey, f.Name) {
				f.Attribute = ""
				changed = true
			}
		}
		if changed {
			u.Rebuild()
		}
	}
}
