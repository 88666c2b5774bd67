// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rewrite

import (
	"github.com/dacolabs/csharpify/internal/infer"
	"github.com/dacolabs/csharpify/internal/render"
	"github.com/dacolabs/csharpify/internal/style"
)

// nullability applies the configured strategy to reference-typed fields:
// either a nullable marker or a type-appropriate default initializer,
// never both. Value types are exempt from either treatment.
type nullability struct{}

func (nullability) Name() string { return "nullability" }

func (nullability) Apply(doc *render.Document, st style.Settings) {
	if st.Nullable == style.NullableNone {
		return
	}
	for i := range doc.Units {
		u := &doc.Units[i]
		changed := false
		for j := range u.Fields {
			f := &u.Fields[j]
			if render.IsValueType(f.Type) || render.IsValueTypeName(f.CSType) {
				continue
			}
			if f.NullableMark || f.Initializer != "" {
				continue
			}
			switch st.Nullable {
			case style.NullableMarker:
				f.NullableMark = true
			case style.NullableDefaults:
				f.Initializer = initializerFor(f.Type)
			}
			changed = true
		}
		if changed {
			u.Rebuild()
		}
	}
}

// initializerFor picks the default expression for a reference-typed field:
// the empty string for strings, a collection expression for collections, a
// target-typed construction for untyped object fields, and the
// null-forgiving default for everything else.
func initializerFor(n *infer.Node) string {
	switch n.Kind {
	case infer.KindString:
		return "string.Empty"
	case infer.KindArray:
		return "[]"
	case infer.KindAny:
		return "new()"
	default:
		return "default!"
	}
}
