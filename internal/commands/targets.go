// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/acalejos/scout/internal/gen/printer"
	"github.com/acalejos/scout/internal/project"
	"github.com/acalejos/scout/internal/prompts"
	"github.com/acalejos/scout/internal/session"
)

type targetAddOptions struct {
	source   string
	typeName string
	format   string
	output   string
	prefix   string
}

func registerTargetsAddCmd(parent *cobra.Command) {
	opts := &targetAddOptions{}

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add an extraction target",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			return runTargetsAdd(cmd, name, opts)
		},
	}

	cmd.Flags().StringVar(&opts.source, "source", "", "Source URL or file")
	cmd.Flags().StringVar(&opts.typeName, "type", "", "Generated type name")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Type name prefix")

	parent.AddCommand(cmd)
}

func runTargetsAdd(cmd *cobra.Command, name string, opts *targetAddOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	if name == "" || opts.source == "" || opts.typeName == "" {
		existing := make(map[string]struct{}, len(ctx.Project.Targets))
		for n := range ctx.Project.Targets {
			existing[n] = struct{}{}
		}
		if err := prompts.RunTargetAddForm(&name, &opts.source, &opts.typeName, &opts.format, existing, printer.Available()); err != nil {
			return err
		}
	}

	if _, exists := ctx.Project.Targets[name]; exists {
		return fmt.Errorf("target %q already exists", name)
	}

	if ctx.Project.Targets == nil {
		ctx.Project.Targets = make(map[string]project.Target)
	}
	ctx.Project.Targets[name] = project.Target{
		Source:   opts.source,
		TypeName: opts.typeName,
		Format:   opts.format,
		Output:   opts.output,
		Prefix:   opts.prefix,
	}

	if err := ctx.Save(); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Target", Value: name},
		{Label: "Source", Value: opts.source},
		{Label: "Type", Value: opts.typeName},
	}, "Target added")

	return nil
}

func registerTargetsListCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List extraction targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}

			if len(ctx.Project.Targets) == 0 {
				fmt.Println("no targets defined")
				return nil
			}

			names := make([]string, 0, len(ctx.Project.Targets))
			for name := range ctx.Project.Targets {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				t := ctx.Project.Targets[name]
				fmt.Printf("%s\t%s\t%s\n", name, t.TypeName, t.Source)
			}
			return nil
		},
	}

	parent.AddCommand(cmd)
}

func registerTargetsDescribeCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "describe <name>",
		Short: "Show the full configuration of a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}

			name := args[0]
			t, exists := ctx.Project.Targets[name]
			if !exists {
				return fmt.Errorf("target %q not found", name)
			}

			prompts.PrintResult([]prompts.ResultField{
				{Label: "Target", Value: name},
				{Label: "Source", Value: t.Source},
				{Label: "Type", Value: t.TypeName},
				{Label: "Format", Value: t.Format},
				{Label: "Output", Value: t.Output},
				{Label: "Prefix", Value: t.Prefix},
			}, "")

			return nil
		},
	}

	parent.AddCommand(cmd)
}

func registerTargetsRemoveCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an extraction target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}

			name := args[0]
			if _, exists := ctx.Project.Targets[name]; !exists {
				return fmt.Errorf("target %q not found", name)
			}
			delete(ctx.Project.Targets, name)

			if err := ctx.Save(); err != nil {
				return fmt.Errorf("failed to save project: %w", err)
			}

			fmt.Printf("removed target %q\n", name)
			return nil
		},
	}

	parent.AddCommand(cmd)
}
