// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dacolabs/csharpify/internal/config"
	"github.com/dacolabs/csharpify/internal/prompts"
	"github.com/dacolabs/csharpify/internal/session"
	"github.com/dacolabs/csharpify/internal/style"
)

type initOptions struct {
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a csharpify.yaml with default conversion settings",
		Long: `Create a csharpify.yaml configuration file in the current directory.
The stored settings become the defaults for every convert invocation run
from this directory.`,
		Example: `  # Interactive mode
  csharpify init

  # Write built-in defaults without prompting
  csharpify init --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Write built-in defaults without prompting")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("csharpify.yaml already exists; project already initialized")
	}

	cfg := config.New()

	if !opts.nonInteractive {
		rootName := "Root" // placeholder for the form; not persisted
		st := cfg.Defaults
		if err := prompts.RunConvertForm(&rootName, &st); err != nil {
			return err
		}
		cfg.Defaults = st
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", session.ConfigFileName, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: configPath},
		{Label: "Collection", Value: string(cfg.Defaults.Collection)},
		{Label: "Type style", Value: string(cfg.Defaults.TypeStyle)},
		{Label: "Nullability", Value: string(cfg.Defaults.Nullable)},
		{Label: "Framework", Value: frameworkLabel(cfg.Defaults.Framework)},
	}, "Project initialized")
	return nil
}

func frameworkLabel(f style.Framework) string {
	if f == style.FrameworkNone {
		return "none (no attributes)"
	}
	return string(f)
}
