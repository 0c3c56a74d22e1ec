// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/acalejos/scout/internal/project"
	"github.com/acalejos/scout/internal/prompts"
)

type initOptions struct {
	name        string
	description string
}

func registerInitCmd(parent *cobra.Command) {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a scout.yaml project file",
		Example: `  # Interactive mode
  scout init

  # Non-interactive
  scout init --name my-project`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Project name")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Project description")

	parent.AddCommand(cmd)
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	path := filepath.Join(cwd, project.FileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", project.FileName)
	}

	if opts.name == "" {
		if err := prompts.RunInitForm(&opts.name, &opts.description); err != nil {
			return err
		}
	}

	p := project.New(opts.name, opts.description)
	if err := p.Save(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", project.FileName, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Project", Value: opts.name},
		{Label: "File", Value: project.FileName},
	}, "Project initialized")

	return nil
}
