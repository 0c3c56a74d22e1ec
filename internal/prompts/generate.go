// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package prompts

import "github.com/charmbracelet/huh"

// FormatSelect returns a select field for choosing an output format.
func FormatSelect(value *string, formats []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}
	return huh.NewSelect[string]().
		Title("Output format").
		Options(options...).
		Value(value)
}

// RunGenerateForm prompts for any generate inputs still missing after flag
// parsing. specPath and format are filled only when empty.
func RunGenerateForm(specPath, format *string, formats []string) error {
	var groups []*huh.Group

	if *specPath == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Spec file").
				Placeholder("schema.yaml").
				Validate(requiredValidator("spec file")).
				Value(specPath),
		))
	}
	if *format == "" {
		groups = append(groups, huh.NewGroup(FormatSelect(format, formats)))
	}

	if len(groups) == 0 {
		return nil
	}
	return huh.NewForm(groups...).WithTheme(Theme()).Run()
}

// RunTargetAddForm runs the interactive form for targets add, validating
// the target name against existing targets.
func RunTargetAddForm(name, source, typeName, format *string, existing map[string]struct{}, formats []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target name").
				Placeholder("products").
				Validate(identifierValidator(existing)).
				Value(name),
			huh.NewInput().
				Title("Source").
				Placeholder("https://example.com/catalog").
				Validate(requiredValidator("source")).
				Value(source),
			huh.NewInput().
				Title("Type name").
				Placeholder("Product").
				Validate(requiredValidator("type name")).
				Value(typeName),
		),
		huh.NewGroup(FormatSelect(format, formats)),
	).WithTheme(Theme()).Run()
}
