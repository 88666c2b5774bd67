// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rewrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/csharpify/internal/infer"
	"github.com/dacolabs/csharpify/internal/render"
	"github.com/dacolabs/csharpify/internal/style"
)

func document(t *testing.T, sample string, st style.Settings) *render.Document {
	t.Helper()
	root, err := infer.Infer([][]byte{[]byte(sample)}, "Root", infer.Options{
		InferEnums:     st.InferEnums,
		InferDateTimes: st.InferDateTimes,
	})
	require.NoError(t, err)
	return render.Render(root, st)
}

func TestAttributeElimination_DropsCaseOnlyDifferences(t *testing.T) {
	st := style.Default()
	st.Framework = style.FrameworkNewtonsoft

	doc := document(t, `{"user_id":1,"id":2}`, st)
	attributeElimination{}.Apply(doc, st)

	text := doc.Units[0].Text
	assert.Contains(t, text, `[JsonProperty("user_id")]`)
	assert.NotContains(t, text, `[JsonProperty("id")]`)
}

func TestAttributeElimination_Idempotent(t *testing.T) {
	st := style.Default()
	st.Framework = style.FrameworkNewtonsoft

	doc := document(t, `{"user_id":1,"id":2,"other_name":"x"}`, st)

	attributeElimination{}.Apply(doc, st)
	once := doc.String()

	attributeElimination{}.Apply(doc, st)
	twice := doc.String()

	assert.Equal(t, once, twice)
}

func TestAttributeElimination_AlwaysModeKeepsEverything(t *testing.T) {
	st := style.Default()
	st.Framework = style.FrameworkNewtonsoft
	st.Attributes = style.AttributeAlways

	doc := document(t, `{"id":1,"Name":"x"}`, st)
	attributeElimination{}.Apply(doc, st)

	text := doc.Units[0].Text
	assert.Contains(t, text, `[JsonProperty("id")]`)
	assert.Contains(t, text, `[JsonProperty("Name")]`)
}

func TestCollectionSubstitution_Totality(t *testing.T) {
	// The only collection spelling in final output must be the requested
	// one, for all five configurations.
	sample := `{"roles":["a"],"grid":[[1,2]],"items":[{"sku":"x"}]}`

	spellings := map[style.Collection][]string{
		style.CollectionArray:         {"[]"},
		style.CollectionList:          {"List<"},
		style.CollectionIList:         {"IList<"},
		style.CollectionIEnumerable:   {"IEnumerable<"},
		style.CollectionIReadOnlyList: {"IReadOnlyList<"},
	}

	for collection, want := range spellings {
		st := style.Default()
		st.Collection = collection

		doc := document(t, sample, st)
		Run(doc, st)
		text := doc.String()

		for _, w := range want {
			assert.Contains(t, text, w, "collection %s", collection)
		}
		for other, spelled := range spellings {
			if other == collection {
				continue
			}
			for _, s := range spelled {
				if s == "[]" {
					// "[]" is a substring of nothing else here; arrays only
					// appear when requested.
					assert.NotContains(t, text, "[]", "collection %s must not spell arrays", collection)
					continue
				}
				// Interface spellings overlap textually (IList contains
				// List); compare against properties structurally instead.
				for i := range doc.Units {
					for _, f := range doc.Units[i].Fields {
						if f.Type.Kind == infer.KindArray {
							assert.True(t, strings.HasPrefix(f.CSType, prefixFor(collection)) ||
								(collection == style.CollectionArray && strings.HasSuffix(f.CSType, "[]")),
								"field %s spelled %q under %s", f.Name, f.CSType, collection)
						}
					}
				}
			}
		}
	}
}

func prefixFor(c style.Collection) string {
	switch c {
	case style.CollectionList:
		return "List<"
	case style.CollectionIList:
		return "IList<"
	case style.CollectionIEnumerable:
		return "IEnumerable<"
	case style.CollectionIReadOnlyList:
		return "IReadOnlyList<"
	default:
		return ""
	}
}

func TestCollectionSubstitution_DoesNotTouchLookalikeIdentifiers(t *testing.T) {
	// A type named "List..." by the user must survive substitution.
	st := style.Default()
	st.Collection = style.CollectionIList

	doc := document(t, `{"listing":{"price":1},"watchList":["a"]}`, st)
	Run(doc, st)
	text := doc.String()

	assert.Contains(t, text, "public Listing Listing { get; set; }")
	assert.Contains(t, text, "public IList<string> WatchList { get; set; }")
}

func TestNullability_Marker(t *testing.T) {
	st := style.Default()
	st.Nullable = style.NullableMarker

	doc := document(t, `{"id":1,"name":"x","roles":["a"],"address":{"street":"s"},"flag":true}`, st)
	Run(doc, st)
	text := doc.String()

	assert.Contains(t, text, "public string? Name { get; set; }")
	assert.Contains(t, text, "public IEnumerable<string>? Roles { get; set; }")
	assert.Contains(t, text, "public Address? Address { get; set; }")

	// Value types stay unmarked.
	assert.Contains(t, text, "public int Id { get; set; }")
	assert.Contains(t, text, "public bool Flag { get; set; }")
}

func TestNullability_Defaults(t *testing.T) {
	st := style.Default()
	st.Nullable = style.NullableDefaults

	doc := document(t, `{"id":1,"name":"x","roles":["a"],"address":{"street":"s"},"extra":null}`, st)
	Run(doc, st)
	text := doc.String()

	assert.Contains(t, text, "public string Name { get; set; } = string.Empty;")
	assert.Contains(t, text, "public IEnumerable<string> Roles { get; set; } = [];")
	assert.Contains(t, text, "public Address Address { get; set; } = default!;")
	assert.Contains(t, text, "public object Extra { get; set; } = new();")
	assert.Contains(t, text, "public int Id { get; set; }\n")
	assert.NotContains(t, text, "int Id { get; set; } =")
}

func TestNullability_MutualExclusion(t *testing.T) {
	// No field ever carries both a marker and an initializer.
	for _, strategy := range style.Nullables() {
		st := style.Default()
		st.Nullable = strategy

		doc := document(t, `{"name":"x","roles":["a"],"nested":{"v":"s"}}`, st)
		Run(doc, st)

		for i := range doc.Units {
			for _, f := range doc.Units[i].Fields {
				assert.False(t, f.NullableMark && f.Initializer != "",
					"field %s has both marker and initializer under %s", f.Name, strategy)
			}
		}
	}
}

func TestNullability_ValueTypeExemption(t *testing.T) {
	sample := `{"b":true,"i":1,"f":1.5,"when":"2024-03-01T12:00:00Z","id":"6f1c3786-9a6e-4b1d-8c2f-0d9a1b2c3d4e"}`

	for _, strategy := range []style.Nullable{style.NullableMarker, style.NullableDefaults} {
		st := style.Default()
		st.Nullable = strategy
		st.InferDateTimes = true

		doc := document(t, sample, st)
		Run(doc, st)
		text := doc.String()

		assert.Contains(t, text, "public bool B { get; set; }")
		assert.Contains(t, text, "public int I { get; set; }")
		assert.Contains(t, text, "public double F { get; set; }")
		assert.Contains(t, text, "public DateTime When { get; set; }")
		assert.Contains(t, text, "public Guid Id { get; set; }")
		assert.NotContains(t, text, "?")
		assert.NotContains(t, text, "=")
	}
}

func TestModifierRemoval_StripsPartial(t *testing.T) {
	st := style.Default()
	doc := document(t, `{"id":1}`, st)

	assert.Contains(t, doc.Units[0].Text, "public partial class Root")
	Run(doc, st)
	assert.Contains(t, doc.Units[0].Text, "public class Root")
	assert.NotContains(t, doc.String(), "partial")
}

func TestTypeStyle_RecordKeywordOnly(t *testing.T) {
	st := style.Default()
	st.TypeStyle = style.TypeStyleRecord

	doc := document(t, `{"id":1,"name":"x"}`, st)
	Run(doc, st)
	text := doc.String()

	assert.Contains(t, text, "public record Root")
	// Fields stay as a property block.
	assert.Contains(t, text, "public int Id { get; set; }")
}

func TestTypeStyle_PositionalRecord(t *testing.T) {
	st := style.Default()
	st.TypeStyle = style.TypeStyleRecordParams

	doc := document(t, `{"id":1,"name":"x","roles":["a"]}`, st)
	Run(doc, st)
	text := doc.String()

	assert.Equal(t, "public record Root(int Id, string Name, IEnumerable<string> Roles);", text)
	assert.NotContains(t, text, "{ get; set; }")
}

func TestTypeStyle_PositionalRecordCarriesAttributes(t *testing.T) {
	st := style.Default()
	st.TypeStyle = style.TypeStyleRecordParams
	st.Framework = style.FrameworkNewtonsoft

	doc := document(t, `{"user_id":1,"name":"x"}`, st)
	Run(doc, st)
	text := doc.String()

	assert.Contains(t, text, `[property: JsonProperty("user_id")] int UserId`)
	assert.Contains(t, text, "string Name)")
}

func TestTypeStyle_ZeroFieldDeclarationUnconverted(t *testing.T) {
	st := style.Default()
	st.TypeStyle = style.TypeStyleRecordParams

	doc := document(t, `{"empty":{}}`, st)
	Run(doc, st)
	text := doc.String()

	// The empty nested type keeps its block form; only the root converts.
	assert.Contains(t, text, "public record Root(Empty Empty);")
	assert.Contains(t, text, "public class Empty\n{\n}")
}

func TestNamespaceEmission_UsingsAndOrdering(t *testing.T) {
	st := style.Default()
	st.Namespace = "Demo.Models"
	st.Framework = style.FrameworkNewtonsoft
	st.Collection = style.CollectionList

	doc := document(t, `{"user_id":1,"roles":["a"]}`, st)
	Run(doc, st)
	text := doc.String()

	idxNewtonsoft := strings.Index(text, "using Newtonsoft.Json;")
	idxCollections := strings.Index(text, "using System.Collections.Generic;")
	idxNamespace := strings.Index(text, "namespace Demo.Models;")

	require.GreaterOrEqual(t, idxNewtonsoft, 0)
	require.GreaterOrEqual(t, idxCollections, 0)
	require.GreaterOrEqual(t, idxNamespace, 0)

	// Lexicographic using order, namespace after the usings, blank line
	// before the first declaration.
	assert.Less(t, idxNewtonsoft, idxCollections)
	assert.Less(t, idxCollections, idxNamespace)
	assert.Contains(t, text, "namespace Demo.Models;\n\npublic class Root")
}

func TestNamespaceEmission_ArrayNeedsNoCollectionUsing(t *testing.T) {
	st := style.Default()
	st.Namespace = "Demo"
	st.Collection = style.CollectionArray

	doc := document(t, `{"roles":["a"]}`, st)
	Run(doc, st)
	text := doc.String()

	assert.NotContains(t, text, "System.Collections.Generic")
	assert.Contains(t, text, "namespace Demo;")
}

func TestNamespaceEmission_SkippedWithoutNamespace(t *testing.T) {
	st := style.Default()

	doc := document(t, `{"roles":["a"]}`, st)
	Run(doc, st)

	assert.Empty(t, doc.Header)
	assert.NotContains(t, doc.String(), "namespace")
}

func TestNamespaceEmission_NoFrameworkUsingWhenAttributesEliminated(t *testing.T) {
	st := style.Default()
	st.Namespace = "Demo"
	st.Framework = style.FrameworkNewtonsoft

	// The only attribute differs in case alone, so elimination removes it
	// and the framework using must not appear.
	doc := document(t, `{"id":1}`, st)
	Run(doc, st)
	text := doc.String()

	assert.NotContains(t, text, "Newtonsoft")
	assert.Contains(t, text, "namespace Demo;")
}

func TestStages_FixedOrder(t *testing.T) {
	names := make([]string, 0, 6)
	for _, s := range Stages() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		"attribute-elimination",
		"collection-substitution",
		"nullability",
		"modifier-removal",
		"type-style",
		"namespace-emission",
	}, names)
}
