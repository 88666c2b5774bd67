// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"

	"github.com/dacolabs/csharpify/internal/style"
)

// RunConvertForm runs the interactive form for the convert command. It
// fills the settings and root name in place, starting from whatever
// defaults the caller resolved.
func RunConvertForm(rootName *string, st *style.Settings) error {
	collection := string(st.Collection)
	typeStyle := string(st.TypeStyle)
	nullable := string(st.Nullable)
	framework := string(st.Framework)
	attributes := string(st.Attributes)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Root type name").
				Placeholder("Root").
				Validate(identifierValidator).
				Value(rootName),
			huh.NewSelect[string]().
				Title("Collection type").
				Options(stringOptions(style.Collections())...).
				Value(&collection),
			huh.NewSelect[string]().
				Title("Type style").
				Options(stringOptions(style.TypeStyles())...).
				Value(&typeStyle),
			huh.NewSelect[string]().
				Title("Nullability").
				Options(stringOptions(style.Nullables())...).
				Value(&nullable),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Serialization framework").
				Options(stringOptions(style.Frameworks())...).
				Value(&framework),
			huh.NewSelect[string]().
				Title("Attribute rendering").
				Options(stringOptions(style.AttributeModes())...).
				Value(&attributes),
			huh.NewInput().
				Title("Namespace (optional)").
				Placeholder("MyApp.Models").
				Validate(namespaceValidator).
				Value(&st.Namespace),
		),
	).WithTheme(Theme())

	if err := form.Run(); err != nil {
		return err
	}

	st.Collection = style.Collection(collection)
	st.TypeStyle = style.TypeStyle(typeStyle)
	st.Nullable = style.Nullable(nullable)
	st.Framework = style.Framework(framework)
	st.Attributes = style.AttributeMode(attributes)
	return nil
}

func stringOptions[T ~string](values []T) []huh.Option[string] {
	options := make([]huh.Option[string], len(values))
	for i, v := range values {
		options[i] = huh.NewOption(string(v), string(v))
	}
	return options
}
