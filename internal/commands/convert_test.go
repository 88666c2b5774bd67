// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/csharpify/internal/convert"
	"github.com/dacolabs/csharpify/internal/style"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCmd_StdinDefaults(t *testing.T) {
	out, err := execute(t, `{"id": 1, "name": "x"}`, "convert")
	require.NoError(t, err)

	assert.Contains(t, out, "public class Root")
	assert.Contains(t, out, "public int Id { get; set; }")
	assert.Contains(t, out, "public string Name { get; set; }")
}

func TestConvertCmd_FlagsOverrideDefaults(t *testing.T) {
	out, err := execute(t, `{"id": 1}`, "convert",
		"--root", "Order",
		"--type-style", "record-params",
		"--namespace", "Acme.Models",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "namespace Acme.Models;")
	assert.Contains(t, out, "public record Order(int Id);")
}

func TestConvertCmd_FromSchema(t *testing.T) {
	schema := `{
		"type": "object",
		"required": ["id"],
		"properties": {"id": {"type": "integer"}}
	}`
	out, err := execute(t, schema, "convert", "--from-schema", "--root", "Item")
	require.NoError(t, err)

	assert.Contains(t, out, "public class Item")
	assert.Contains(t, out, "public int Id { get; set; }")
}

func TestConvertCmd_FromSchemaInvalidRootName(t *testing.T) {
	schema := `{"type": "object", "properties": {"id": {"type": "integer"}}}`
	_, err := execute(t, schema, "convert", "--from-schema", "--root", "9 totally invalid")
	assert.ErrorIs(t, err, convert.ErrConfig)
}

func TestDeclarationCount_IgnoresPropertyLines(t *testing.T) {
	text := `public class Root
{
    public int Id { get; set; }
    public string Name { get; set; }
    public bool Ok { get; set; }
}

public enum Status
{
    Open
}

public record Point(int X);`

	assert.Equal(t, 3, declarationCount(text))
}

func TestConvertCmd_InvalidFlagValue(t *testing.T) {
	_, err := execute(t, `{"id": 1}`, "convert", "--collection", "vector")
	assert.Error(t, err)
}

func TestConvertCmd_MalformedInput(t *testing.T) {
	_, err := execute(t, `{"id": `, "convert")
	assert.Error(t, err)
}

func TestResolveSettings_LayersChangedFlagsOnly(t *testing.T) {
	defaults := style.Default()
	defaults.Namespace = "Project.Defaults"

	cmd := newConvertCmd()
	require.NoError(t, cmd.Flags().Set("collection", "array"))

	st := resolveSettings(cmd, defaults, &convertOptions{collection: "array"})
	assert.Equal(t, style.CollectionArray, st.Collection)
	assert.Equal(t, "Project.Defaults", st.Namespace, "unset flags keep project defaults")
	assert.Equal(t, defaults.TypeStyle, st.TypeStyle)
}
