// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package prompts provides interactive terminal prompts for CLI commands.
package prompts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Theme returns the shared huh theme used across all CLI forms.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form.Base = theme.Form.Base.MarginTop(1)
	theme.Group.Base = theme.Group.Base.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#f9ca24"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("#bababa"))
	return theme
}

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

// PrintResult prints a styled summary with green checkmarks and gray labels.
func PrintResult(w io.Writer, fields []ResultField, successMsg string) {
	success := lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
	check := success.Render("✓")

	_, _ = fmt.Fprintln(w)
	for _, f := range fields {
		_, _ = fmt.Fprintf(w, "%s %s %s\n", check, label.Render(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		_, _ = fmt.Fprintln(w, success.Render("\n"+successMsg))
	}
}

// PrintErrors prints a styled list of failures.
func PrintErrors(w io.Writer, errs []string) {
	failure := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f56"))
	cross := failure.Render("✗")

	_, _ = fmt.Fprintln(w, "\nErrors:")
	for _, e := range errs {
		_, _ = fmt.Fprintf(w, "  %s %s\n", cross, e)
	}
}

// IdentifierValidator checks that s is a single type identifier, optionally
// package-qualified (option.Option).
func IdentifierValidator(s string) error {
	if s == "" {
		return errors.New("name is required")
	}
	start := true
	for _, r := range s {
		switch {
		case r == '.' && !start:
			start = true
			continue
		case start && !unicode.IsLetter(r) && r != '_':
			return errors.New("must start with letter or underscore")
		case !start && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_':
			return errors.New("must contain only letters, numbers, underscores")
		}
		start = false
	}
	if start {
		return errors.New("must not end with a dot")
	}
	return nil
}

func requiredValidator(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func formatOptions(formats []string) []huh.Option[string] {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}
	return options
}
