// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rewrite

import (
	"github.com/dacolabs/csharpify/internal/render"
	"github.com/dacolabs/csharpify/internal/style"
)

// typeStyle converts class declarations to the requested record form.
// Records-with-properties only rename the declaration keyword; positional
// records collapse the whole declaration into a one-line parameter list.
// Enum units and zero-field declarations are left unconverted.
type typeStyle struct{}

func (typeStyle) Name() string { return "type-style" }

func (typeStyle) Apply(doc *render.Document, st style.Settings) {
	if st.TypeStyle == style.TypeStyleClass {
		return
	}
	for i := range doc.Units {
		u := &doc.Units[i]
		if u.Kind != render.UnitClass {
			continue
		}
		switch st.TypeStyle {
		case style.TypeStyleRecord:
			u.Keyword = "record"
			u.Rebuild()
		case style.TypeStyleRecordParams:
			if len(u.Fields) == 0 {
				continue
			}
			u.Kind = render.UnitRecord
			u.Keyword = "record"
			u.Rebuild()
		}
	}
}
