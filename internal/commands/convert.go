// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/csharpify/internal/convert"
	"github.com/dacolabs/csharpify/internal/jschema"
	"github.com/dacolabs/csharpify/internal/prompts"
	"github.com/dacolabs/csharpify/internal/session"
	"github.com/dacolabs/csharpify/internal/style"
)

type convertOptions struct {
	rootName    string
	collection  string
	typeStyle   string
	nullable    string
	framework   string
	attributes  string
	namespace   string
	enums       bool
	dateTimes   bool
	fromSchema  bool
	output      string
	interactive bool
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file...]",
		Short: "Convert JSON to C# type definitions",
		Long: `Convert one or more JSON samples (or a JSON Schema) into C# type
definitions. Multiple samples of the same document shape are unified into
a single consistent set of types.

Reads from stdin when no file is given or when the file is "-".`,
		Example: `  # From a file, defaults from csharpify.yaml
  csharpify convert payload.json --root Order

  # From stdin, positional records in a namespace
  cat payload.json | csharpify convert --root Order --type-style record-params --namespace MyApp.Models

  # Unify several samples
  csharpify convert day1.json day2.json --root Report

  # From a JSON Schema instead of samples
  csharpify convert schema.json --from-schema --root Order

  # Pick every option interactively
  csharpify convert payload.json -i`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.rootName, "root", "r", "", "Root type name (default Root)")
	cmd.Flags().StringVar(&opts.collection, "collection", "", fmt.Sprintf("Collection type (%s)", joinValues(style.Collections())))
	cmd.Flags().StringVar(&opts.typeStyle, "type-style", "", fmt.Sprintf("Type declaration style (%s)", joinValues(style.TypeStyles())))
	cmd.Flags().StringVar(&opts.nullable, "nullable", "", fmt.Sprintf("Nullability strategy (%s)", joinValues(style.Nullables())))
	cmd.Flags().StringVar(&opts.framework, "framework", "", fmt.Sprintf("Serialization framework (%s)", joinValues(style.Frameworks())))
	cmd.Flags().StringVar(&opts.attributes, "attributes", "", fmt.Sprintf("Attribute rendering (%s)", joinValues(style.AttributeModes())))
	cmd.Flags().StringVar(&opts.namespace, "namespace", "", "Namespace to wrap the output in")
	cmd.Flags().BoolVar(&opts.enums, "enums", false, "Infer enums from small repeated string sets")
	cmd.Flags().BoolVar(&opts.dateTimes, "datetimes", false, "Infer DateTime and Guid from string patterns")
	cmd.Flags().BoolVar(&opts.fromSchema, "from-schema", false, "Treat the input as a JSON Schema document")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write output to a .cs file instead of stdout")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Choose options interactively")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, opts *convertOptions) error {
	sc, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	st := resolveSettings(cmd, sc.Config.Defaults, opts)
	rootName := opts.rootName

	if opts.interactive {
		if rootName == "" {
			rootName = convert.DefaultRootName
		}
		if err := prompts.RunConvertForm(&rootName, &st); err != nil {
			return err
		}
	}

	samples, err := readSamples(cmd, args)
	if err != nil {
		return err
	}

	var text string
	switch {
	case opts.fromSchema:
		if len(samples) != 1 {
			return fmt.Errorf("--from-schema takes exactly one input document")
		}
		doc, err := jschema.Load(samples[0])
		if err != nil {
			return fmt.Errorf("%w: %v", convert.ErrInput, err)
		}
		if rootName == "" {
			rootName = convert.DefaultRootName
		}
		if !style.IsIdentifier(rootName) {
			return fmt.Errorf("%w: root name %q is not a valid identifier", convert.ErrConfig, rootName)
		}
		root, err := doc.ToNode(rootName)
		if err != nil {
			return fmt.Errorf("%w: %v", convert.ErrInput, err)
		}
		text, err = convert.ConvertNode(root, st)
		if err != nil {
			return err
		}
	default:
		text, err = convert.Convert(samples, rootName, st)
		if err != nil {
			return err
		}
	}

	if opts.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(opts.output, []byte(text+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Output", Value: opts.output},
		{Label: "Types", Value: fmt.Sprintf("%d declaration(s)", declarationCount(text))},
	}, "Conversion complete")
	return nil
}

// declarationCount counts type declarations in the output, ignoring the
// property lines that also start with "public".
func declarationCount(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "public class "),
			strings.HasPrefix(line, "public partial class "),
			strings.HasPrefix(line, "public record "),
			strings.HasPrefix(line, "public enum "):
			count++
		}
	}
	return count
}

// resolveSettings layers explicitly-set flags over the project defaults.
// The snapshot is resolved fresh on every invocation.
func resolveSettings(cmd *cobra.Command, defaults style.Settings, opts *convertOptions) style.Settings {
	st := defaults
	flags := cmd.Flags()

	if flags.Changed("collection") {
		st.Collection = style.Collection(opts.collection)
	}
	if flags.Changed("type-style") {
		st.TypeStyle = style.TypeStyle(opts.typeStyle)
	}
	if flags.Changed("nullable") {
		st.Nullable = style.Nullable(opts.nullable)
	}
	if flags.Changed("framework") {
		st.Framework = style.Framework(opts.framework)
	}
	if flags.Changed("attributes") {
		st.Attributes = style.AttributeMode(opts.attributes)
	}
	if flags.Changed("namespace") {
		st.Namespace = opts.namespace
	}
	if flags.Changed("enums") {
		st.InferEnums = opts.enums
	}
	if flags.Changed("datetimes") {
		st.InferDateTimes = opts.dateTimes
	}
	return st
}

// readSamples reads every input document: named files, or stdin when no
// file (or "-") is given.
func readSamples(cmd *cobra.Command, args []string) ([][]byte, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	samples := make([][]byte, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return nil, fmt.Errorf("failed to read stdin: %w", err)
			}
			samples = append(samples, data)
			continue
		}
		data, err := os.ReadFile(arg) //nolint:gosec // path is provided by caller
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", arg, err)
		}
		samples = append(samples, data)
	}
	return samples, nil
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
