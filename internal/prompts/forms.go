// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

package prompts

import "github.com/charmbracelet/huh"

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(document *string, writeSample *bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Document source").
				Options(
					huh.NewOption("Use existing generated document", false),
					huh.NewOption("Write a sample document", true),
				).
				Height(3).
				Value(writeSample),
		),
		huh.NewGroup(
			huh.NewInput().
				TitleFunc(func() string {
					if *writeSample {
						return "Path for the sample document"
					}
					return "Path to the generated OpenAPI document"
				}, writeSample).
				Placeholder("e.g., openapi.json").
				Validate(requiredValidator("document path")).
				Value(document),
		),
	).WithTheme(Theme()).Run()
}

// RunApplyForm prompts for any apply parameters not provided as flags.
// outputUnchanged reports whether the output flag was left at its default.
func RunApplyForm(filters *[]string, output *string, outputUnchanged bool, available []string) error {
	var groups []*huh.Group

	if len(*filters) == 0 {
		options := make([]huh.Option[string], 0, len(available))
		for _, name := range available {
			options = append(options, huh.NewOption(name, name))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Filters to apply").
				Options(options...).
				Value(filters),
		))
	}

	if outputUnchanged {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Output path (empty rewrites the document in place)").
				Placeholder("e.g., openapi.public.json").
				Value(output),
		))
	}

	if len(groups) == 0 {
		return nil
	}
	return huh.NewForm(groups...).WithTheme(Theme()).Run()
}
