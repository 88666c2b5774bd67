// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/dacolabs/csharpify/internal/session"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csharpify",
		Short: "Convert JSON samples and JSON Schemas to C# type definitions",
	}

	registerConvertCmd(rootCmd)
	registerInitCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerConvertCmd(parent *cobra.Command) {
	cmd := newConvertCmd()
	cmd.PersistentPreRunE = session.PreRunLoad
	parent.AddCommand(cmd)
}

func registerInitCmd(parent *cobra.Command) {
	parent.AddCommand(newInitCmd())
}

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(newVersionCmd())
}
