// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package prompts

import "github.com/charmbracelet/huh"

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(name, description *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Placeholder("my-project").
				Validate(requiredValidator("project name")).
				Value(name),
			huh.NewInput().
				Title("Description").
				Placeholder("What this project extracts").
				Value(description),
		),
	).WithTheme(Theme()).Run()
}
