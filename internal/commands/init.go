// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rfaulhaber/proc-macro-workshop/internal/config"
	"github.com/rfaulhaber/proc-macro-workshop/internal/prompts"
	"github.com/rfaulhaber/proc-macro-workshop/internal/render"
)

type initOptions struct {
	format         string
	wrapper        string
	output         string
	pkg            string
	emitType       bool
	nonInteractive bool
}

func newInitCmd(printers render.Register) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a buildergen project",
		Long: `Initialize a buildergen project with a buildergen.yaml configuration file.
Values not given as flags are asked for interactively when running in a terminal.`,
		Example: `  # Interactive mode
  buildergen init

  # Non-interactive
  buildergen init --format rust --wrapper Option --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, printers, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "go", "Target format")
	cmd.Flags().StringVarP(&opts.wrapper, "wrapper", "w", "", "Optional wrapper type name")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory for generated files")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Package name for generated Go files")
	cmd.Flags().BoolVar(&opts.emitType, "emit-type", false, "Also declare the record types")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, printers render.Register, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("buildergen.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive && prompts.IsInteractive() {
		if err := prompts.RunInitForm(&opts.format, &opts.wrapper, &opts.output, &opts.emitType, printers.Available()); err != nil {
			return err
		}
	}

	if _, err := printers.Get(opts.format); err != nil {
		return err
	}

	cfg := config.Config{
		Version:         config.CurrentConfigVersion,
		OptionalWrapper: opts.wrapper,
		Format:          opts.format,
		Output:          opts.output,
		Package:         opts.pkg,
		EmitType:        opts.emitType,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	wrapper := opts.wrapper
	if wrapper == "" {
		p, _ := printers.Get(opts.format)
		wrapper = p.DefaultWrapper() + " (default)"
	}
	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Format", Value: opts.format},
		{Label: "Optional wrapper", Value: wrapper},
	}, "Initialization completed")

	return nil
}
