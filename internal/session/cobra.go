// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"

	"github.com/spf13/cobra"
)

// TraceFlag is the persistent flag that forces debug logging.
const TraceFlag = "trace"

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's
// context, returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("project context not loaded")
	}
	return ctx, nil
}

// PreRunLoad returns a PersistentPreRunE function that loads the project
// context and stores it in the command's context.
func PreRunLoad(getenv func(string) string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		trace := false
		if f := cmd.Flags().Lookup(TraceFlag); f != nil {
			trace, _ = cmd.Flags().GetBool(TraceFlag)
		}
		ctx, err := Load(cmd.Context(), Options{
			Getenv:    getenv,
			LogOutput: cmd.ErrOrStderr(),
			Trace:     trace,
		})
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}
}
