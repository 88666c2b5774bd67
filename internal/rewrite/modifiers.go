// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rewrite

import (
	"github.com/dacolabs/csharpify/internal/render"
	"github.com/dacolabs/csharpify/internal/style"
)

// modifierRemoval strips the partial modifier. Split declarations only
// matter for generated files that coexist with hand-written halves; pasted
// single-file output has no second half.
type modifierRemoval struct{}

func (modifierRemoval) Name() string { return "modifier-removal" }

func (modifierRemoval) Apply(doc *render.Document, _ style.Settings) {
	for i := range doc.Units {
		u := &doc.Units[i]
		if u.Partial {
			u.Partial = false
			u.Rebuild()
		}
	}
}
