// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/rfaulhaber/proc-macro-workshop/internal/render"
	"github.com/rfaulhaber/proc-macro-workshop/internal/session"
)

// NewRootCmd creates and returns the root command for the CLI.
// getenv supplies environment overrides for the configuration.
func NewRootCmd(printers render.Register, getenv func(string) string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "buildergen",
		Short: "Generate builder types from record definitions",
		Long: `buildergen reads record type definitions and generates a companion
builder type for each: chainable setters, required field tracking and a
build step that reports the first missing required field.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().Bool(session.TraceFlag, false, "Log each field classification and the synthesized plan")

	builders := &cobra.Group{ID: "builders", Title: "Builder commands:"}
	rootCmd.AddGroup(builders)

	rootCmd.AddCommand(newInitCmd(printers))
	rootCmd.AddCommand(withSession(newGenerateCmd(printers), getenv, builders.ID))
	rootCmd.AddCommand(withSession(newPlanCmd(printers), getenv, builders.ID))
	rootCmd.AddCommand(newFormatsCmd(printers))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func withSession(cmd *cobra.Command, getenv func(string) string, group string) *cobra.Command {
	cmd.PersistentPreRunE = session.PreRunLoad(getenv)
	cmd.GroupID = group
	return cmd
}
