// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package rewrite is the ordered transformation pipeline that adapts the
// canonical rendering to the configured style. Each stage is a total
// function over a well-formed document: it mutates the units' structural
// metadata and rebuilds their text, so no stage can corrupt another's
// output by accident. The order is load-bearing; see Stages.
package rewrite

import (
	"github.com/dacolabs/csharpify/internal/render"
	"github.com/dacolabs/csharpify/internal/style"
)

// Stage is one rewrite step of the pipeline.
type Stage interface {
	// Name identifies the stage in documentation and tests.
	Name() string

	// Apply rewrites the document in place. Stages never fail.
	Apply(doc *render.Document, st style.Settings)
}

// Stages returns the fixed pipeline order. Attribute elimination must
// precede type-style conversion, which reads surviving attributes into
// positional parameters; collection substitution must precede namespace
// emission, which inspects the substituted spellings; nullability runs
// after attribute elimination so markers never land inside attribute
// arguments.
func Stages() []Stage {
	return []Stage{
		attributeElimination{},
		collectionSubstitution{},
		nullability{},
		modifierRemoval{},
		typeStyle{},
		namespaceEmission{},
	}
}

// Run applies the full pipeline to a document.
func Run(doc *render.Document, st style.Settings) {
	for _, s := range Stages() {
		s.Apply(doc, st)
	}
}
