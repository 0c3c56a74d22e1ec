// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acalejos/scout/internal/version"
)

func registerVersionCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Info())
		},
	}

	parent.AddCommand(cmd)
}
