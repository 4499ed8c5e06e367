// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(format, wrapper, output *string, emitType *bool, formats []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Target format").
				Options(formatOptions(formats)...).
				Value(format),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Optional wrapper").
				Description("Generic type whose fields the builder treats as optional. Leave empty for the format default.").
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					return IdentifierValidator(s)
				}).
				Value(wrapper),
			huh.NewInput().
				Title("Output directory").
				Placeholder(".").
				Value(output),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Also emit the record types?").
				Value(emitType),
		),
	).WithTheme(Theme()).Run()
}
