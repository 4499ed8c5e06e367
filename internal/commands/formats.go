// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfaulhaber/proc-macro-workshop/internal/render"
)

func newFormatsCmd(printers render.Register) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range printers.Available() {
				p, _ := printers.Get(name)
				if _, err := fmt.Fprintf(out, "%-6s %-4s wrapper %s\n", name, p.FileExtension(), p.DefaultWrapper()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
