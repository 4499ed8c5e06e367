// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunGenerateForm prompts for the generate values that were not given as
// flags. Groups for values already set are skipped.
func RunGenerateForm(format, output *string, askOutput bool, formats []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Options(formatOptions(formats)...).
				Value(format),
		).WithHideFunc(func() bool { return *format != "" }),
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Validate(requiredValidator("output directory")).
				Value(output),
		).WithHideFunc(func() bool { return !askOutput }),
	).WithTheme(Theme()).Run()
}
