// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/csharpify/internal/infer"
	"github.com/dacolabs/csharpify/internal/style"
)

const sampleJSON = `{"id":123,"name":"John Doe","roles":["admin","user"]}`

func TestConvert_DefaultConfiguration(t *testing.T) {
	out, err := Convert([][]byte{[]byte(sampleJSON)}, "Root", style.Default())
	require.NoError(t, err)

	assert.Contains(t, out, "public class Root")
	assert.Contains(t, out, "public int Id { get; set; }")
	assert.Contains(t, out, "public string Name { get; set; }")
	assert.Contains(t, out, "public IEnumerable<string> Roles { get; set; }")

	assert.NotContains(t, out, "namespace")
	assert.NotContains(t, out, "using")
	assert.NotContains(t, out, "JsonProperty")
	assert.NotContains(t, out, "partial")
}

func TestConvert_PositionalRecord(t *testing.T) {
	st := style.Default()
	st.TypeStyle = style.TypeStyleRecordParams

	out, err := Convert([][]byte{[]byte(sampleJSON)}, "Root", st)
	require.NoError(t, err)

	assert.Equal(t, "public record Root(int Id, string Name, IEnumerable<string> Roles);", out)
	assert.NotContains(t, out, "{ get; set; }")
	assert.Equal(t, 1, strings.Count(out, "\n")+1, "positional record output is a single line")
}

func TestConvert_AttributeScenarios(t *testing.T) {
	st := style.Default()
	st.Framework = style.FrameworkNewtonsoft

	// Key differing beyond case keeps its annotation by default.
	out, err := Convert([][]byte{[]byte(`{"user_id":1}`)}, "Root", st)
	require.NoError(t, err)
	assert.Contains(t, out, `[JsonProperty("user_id")]`)
	assert.Contains(t, out, "public int UserId { get; set; }")

	// Case-only difference loses it under the default mode...
	out, err = Convert([][]byte{[]byte(`{"id":1}`)}, "Root", st)
	require.NoError(t, err)
	assert.NotContains(t, out, "JsonProperty")
	assert.Contains(t, out, "public int Id { get; set; }")

	// ...but keeps it when rendering is forced for every field.
	st.Attributes = style.AttributeAlways
	out, err = Convert([][]byte{[]byte(`{"id":1}`)}, "Root", st)
	require.NoError(t, err)
	assert.Contains(t, out, `[JsonProperty("id")]`)
}

func TestConvert_NestedObjectDeclarations(t *testing.T) {
	out, err := Convert([][]byte{[]byte(`{"name":"x","address":{"street":"s","zip":"z"}}`)}, "Root", style.Default())
	require.NoError(t, err)

	assert.Contains(t, out, "public class Root")
	assert.Contains(t, out, "public class Address")
	assert.Contains(t, out, "public Address Address { get; set; }")
	assert.Less(t, strings.Index(out, "public class Root"), strings.Index(out, "public class Address"),
		"root declared before first-discovered nested type")
}

func TestConvert_DefaultRootName(t *testing.T) {
	out, err := Convert([][]byte{[]byte(`{"id":1}`)}, "", style.Default())
	require.NoError(t, err)

	assert.Contains(t, out, "public class Root")
}

func TestConvert_InvalidRootName(t *testing.T) {
	_, err := Convert([][]byte{[]byte(`{}`)}, "9lives", style.Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestConvert_InvalidSettings(t *testing.T) {
	st := style.Default()
	st.Collection = "hashset"

	_, err := Convert([][]byte{[]byte(`{}`)}, "Root", st)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestConvert_MalformedInput(t *testing.T) {
	_, err := Convert([][]byte{[]byte(`{"broken":`)}, "Root", style.Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInput)
}

func TestConvert_NamespaceWrapsOutput(t *testing.T) {
	st := style.Default()
	st.Namespace = "Acme.Generated"

	out, err := Convert([][]byte{[]byte(sampleJSON)}, "Root", st)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "using System.Collections.Generic;"),
		"imports precede the namespace line:\n%s", out)
	assert.Contains(t, out, "namespace Acme.Generated;\n\npublic class Root")
}

func TestConvert_CollidingKeysStayDistinct(t *testing.T) {
	out, err := Convert([][]byte{[]byte(`{"user_id": 1, "userId": 2}`)}, "Root", style.Default())
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "public int UserId { get; set; }"))
	assert.Contains(t, out, "public int UserId2 { get; set; }")
}

func TestConvertNode_InvalidRootName(t *testing.T) {
	root := &infer.Node{
		Kind: infer.KindObject,
		Name: "9 totally invalid",
		Fields: []infer.Field{
			{JSONKey: "id", Name: "Id", Type: &infer.Node{Kind: infer.KindInt}},
		},
	}

	_, err := ConvertNode(root, style.Default())
	assert.ErrorIs(t, err, ErrConfig)
}

func TestConvert_NoTrailingWhitespace(t *testing.T) {
	out, err := Convert([][]byte{[]byte(sampleJSON)}, "Root", style.Default())
	require.NoError(t, err)

	assert.Equal(t, strings.TrimRight(out, " \t\n"), out)
}
