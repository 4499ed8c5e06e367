// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfaulhaber/proc-macro-workshop/internal/logger"
	"github.com/rfaulhaber/proc-macro-workshop/internal/render"
	"github.com/rfaulhaber/proc-macro-workshop/internal/session"
)

type planOptions struct {
	format  string
	wrapper string
}

func newPlanCmd(printers render.Register) *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan <definition-file>...",
		Short: "Print the builder plan for record definitions",
		Long: `Print the synthesized builder plan as YAML: storage fields with their
initial state, setters, and the assembly steps with the required fields
checked in declaration order.

The format only selects the default optional wrapper.`,
		Example: `  # Show the plan for a definition file
  buildergen plan point.yaml

  # Classify Maybe<T> fields as optional
  buildergen plan --wrapper Maybe point.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, printers, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Format whose default wrapper applies")
	cmd.Flags().StringVarP(&opts.wrapper, "wrapper", "w", "", "Optional wrapper type name")

	return cmd
}

func runPlan(cmd *cobra.Command, printers render.Register, opts *planOptions, files []string) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	printer, err := resolvePrinter(printers, opts.format, sess.Config)
	if err != nil {
		return err
	}
	wrapper := resolveWrapper(opts.wrapper, sess.Config, printer)
	log := logger.FromContext(cmd.Context())

	out := cmd.OutOrStdout()
	first := true
	for _, file := range files {
		plans, err := loadPlans(file, wrapper, log)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		for _, p := range plans {
			data, err := p.YAML()
			if err != nil {
				return fmt.Errorf("failed to encode plan %s: %w", p.TypeName, err)
			}
			if !first {
				if _, err := fmt.Fprintln(out, "---"); err != nil {
					return err
				}
			}
			first = false
			if _, err := out.Write(data); err != nil {
				return err
			}
		}
	}
	return nil
}
