// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/acalejos/scout/internal/session"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scout",
		Short: "Compile schema specifications into structure definitions",
	}

	registerInitCmd(rootCmd)
	registerGenerateCmd(rootCmd)
	registerTargetsCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerTargetsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "targets",
		Short:             "Manage extraction targets",
		PersistentPreRunE: session.PreRunLoad,
	}

	registerTargetsAddCmd(cmd)
	registerTargetsListCmd(cmd)
	registerTargetsDescribeCmd(cmd)
	registerTargetsRemoveCmd(cmd)

	parent.AddCommand(cmd)
}
