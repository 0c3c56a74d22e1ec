// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acalejos/scout/internal/gen"
	"github.com/acalejos/scout/internal/gen/printer"
	"github.com/acalejos/scout/internal/prompts"
	"github.com/acalejos/scout/internal/spec"

	// Import printers to auto-register.
	_ "github.com/acalejos/scout/internal/gen/printer/gostruct"
	_ "github.com/acalejos/scout/internal/gen/printer/jsonout"
	_ "github.com/acalejos/scout/internal/gen/printer/markdown"
)

type generateOptions struct {
	specPath string
	format   string
	output   string
	prefix   string
}

func registerGenerateCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compile a schema spec file into a structure definition",
		Long: fmt.Sprintf(`Compile a schema spec file into a structure definition.

Available formats: %s`, strings.Join(printer.Available(), ", ")),
		Example: `  # Interactive mode
  scout generate

  # Compile a YAML spec to Go structs on stdout
  scout generate --spec schema.yaml --format gostruct

  # Write JSON Schema to a file
  scout generate --spec schema.yaml --format jsonschema --output schemas/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.specPath, "spec", "s", "", "Schema spec file (.yaml or .json)")
	cmd.Flags().StringVar(&opts.format, "format", "", fmt.Sprintf("Output format (%s)", strings.Join(printer.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (stdout if empty)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Prefix qualifying the generated type name")

	parent.AddCommand(cmd)
}

func runGenerate(opts *generateOptions) error {
	if err := prompts.RunGenerateForm(&opts.specPath, &opts.format, printer.Available()); err != nil {
		return err
	}

	schema, err := loadSpec(opts.specPath)
	if err != nil {
		return err
	}

	def, err := gen.Generate(schema)
	if err != nil {
		return err
	}

	// Registration renames the definition to its prefix-qualified form
	// before any printer renders it.
	registry := gen.NewRegistry(opts.prefix)
	if err := registry.Register(def); err != nil {
		return err
	}

	p, err := printer.Get(opts.format)
	if err != nil {
		return err
	}

	out, err := p.Print(def)
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Print(string(out))
		return nil
	}

	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	name := spec.ToSnakeCase(def.Name) + p.FileExtension()
	path := filepath.Join(opts.output, name)
	if err := os.WriteFile(path, out, 0o644); err != nil { //nolint:gosec // generated source, not a secret
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Type", Value: def.Name},
		{Label: "Format", Value: opts.format},
		{Label: "File", Value: path},
	}, "Generated")

	return nil
}

// loadSpec reads and parses a schema spec file, picking the decoder from
// the file extension.
func loadSpec(path string) (*spec.Schema, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return spec.ParseYAML(data)
	case strings.HasSuffix(path, ".json"):
		return spec.ParseJSON(data)
	}
	return nil, fmt.Errorf("unsupported spec file format: %s", filepath.Ext(path))
}
