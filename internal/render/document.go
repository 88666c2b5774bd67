// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package render

import (
	"strings"

	"github.com/dacolabs/csharpify/internal/infer"
)

// UnitKind identifies the declaration form of a rendered unit.
type UnitKind string

// Unit kinds. Classes may become positional records in the type-style
// stage; UnitRecord means the one-line parameterized form.
const (
	UnitClass  UnitKind = "class"
	UnitRecord UnitKind = "record"
	UnitEnum   UnitKind = "enum"
)

// FieldSlot is one property of a rendered unit together with the state the
// pipeline stages maintain for it. Stages mutate the slot and rebuild the
// unit text from it, so the text and the metadata never drift apart.
type FieldSlot struct {
	JSONKey  string
	Name     string
	Type     *infer.Node
	Optional bool

	CSType       string // current type spelling, collection style applied
	Attribute    string // serialization attribute, "" when absent
	NullableMark bool   // "?" suffix applied
	Initializer  string // default-initializer expression, "" when absent
}

// Unit is one named type declaration: its text plus the structural
// metadata later pipeline stages reason about.
type Unit struct {
	Name    string
	Kind    UnitKind
	Keyword string // "class" or "record"
	Partial bool   // declaration carries the partial modifier
	Fields  []FieldSlot
	Members []string // enum member names
	Text    string
}

// Document is the single-owner value threaded through the pipeline:
// rendered units in declaration order plus free-standing header text.
type Document struct {
	Header string // using lines and namespace line, "" until emitted
	Units  []Unit
}

// Rebuild regenerates the unit's text from its current metadata.
func (u *Unit) Rebuild() {
	switch u.Kind {
	case UnitEnum:
		u.Text = buildEnumText(u)
	case UnitRecord:
		u.Text = buildRecordText(u)
	default:
		u.Text = buildClassText(u)
	}
}

// String serializes the document: header and unit texts joined by blank
// lines, trailing whitespace trimmed.
func (d *Document) String() string {
	blocks := make([]string, 0, len(d.Units)+1)
	if d.Header != "" {
		blocks = append(blocks, d.Header)
	}
	for i := range d.Units {
		blocks = append(blocks, d.Units[i].Text)
	}
	return strings.TrimRight(strings.Join(blocks, "\n\n"), " \t\n")
}

func buildClassText(u *Unit) string {
	var sb strings.Builder
	sb.WriteString("public ")
	if u.Partial {
		sb.WriteString("partial ")
	}
	sb.WriteString(u.Keyword)
	sb.WriteString(" ")
	sb.WriteString(u.Name)
	sb.WriteString("\n{\n")
	for _, f := range u.Fields {
		if f.Attribute != "" {
			sb.WriteString("    ")
			sb.WriteString(f.Attribute)
			sb.WriteString("\n")
		}
		sb.WriteString("    public ")
		sb.WriteString(f.CSType)
		if f.NullableMark {
			sb.WriteString("?")
		}
		sb.WriteString(" ")
		sb.WriteString(f.Name)
		sb.WriteString(" { get; set; }")
		if f.Initializer != "" {
			sb.WriteString(" = ")
			sb.WriteString(f.Initializer)
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// buildRecordText spells the one-line positional form. Surviving
// attributes move onto the parameters with the property target; default
// initializers have no positional equivalent and are dropped.
func buildRecordText(u *Unit) string {
	var sb strings.Builder
	sb.WriteString("public record ")
	sb.WriteString(u.Name)
	sb.WriteString("(")
	for i, f := range u.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		if f.Attribute != "" {
			sb.WriteString("[property: ")
			sb.WriteString(strings.TrimPrefix(strings.TrimSuffix(f.Attribute, "]"), "["))
			sb.WriteString("] ")
		}
		sb.WriteString(f.CSType)
		if f.NullableMark {
			sb.WriteString("?")
		}
		sb.WriteString(" ")
		sb.WriteString(f.Name)
	}
	sb.WriteString(");")
	return sb.String()
}

func buildEnumText(u *Unit) string {
	var sb strings.Builder
	sb.WriteString("public enum ")
	sb.WriteString(u.Name)
	sb.WriteString("\n{\n")
	for i, m := range u.Members {
		sb.WriteString("    ")
		sb.WriteString(m)
		if i < len(u.Members)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}
