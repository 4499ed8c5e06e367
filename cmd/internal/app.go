// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/rfaulhaber/proc-macro-workshop/internal/commands"
	"github.com/rfaulhaber/proc-macro-workshop/internal/render"
	"github.com/rfaulhaber/proc-macro-workshop/internal/render/gosrc"
	"github.com/rfaulhaber/proc-macro-workshop/internal/render/rust"
)

// RegisterPrinters returns every available output format.
func RegisterPrinters() render.Register {
	printers := make(render.Register)
	printers.Add(&gosrc.Printer{})
	printers.Add(&rust.Printer{})
	return printers
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd(RegisterPrinters(), getenv)
	return rootCmd.ExecuteContext(ctx)
}
