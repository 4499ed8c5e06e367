// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package render turns builder plans into source text.
package render

import (
	"fmt"
	"sort"

	"github.com/rfaulhaber/proc-macro-workshop/internal/builder"
)

// Printer defines the interface all target-language printers must implement.
type Printer interface {
	// Name returns the printer's identifier (e.g., "go", "rust")
	Name() string

	// Render converts builder plans to source text for one output file.
	Render(plans []*builder.Plan, opts Options) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".go", ".rs")
	FileExtension() string

	// DefaultWrapper returns the optional wrapper name idiomatic for the target.
	DefaultWrapper() string
}

// Options are printer settings shared by all targets.
type Options struct {
	// Package is the package or module the generated file belongs to.
	Package string
	// Imports are extra import paths the generated file needs.
	Imports []string
	// Source names the definition file, for the generated-code banner.
	Source string
	// EmitType also declares the record types themselves.
	EmitType bool
}

// Register maps printer names to printers.
type Register map[string]Printer

// Add registers p under its own name.
func (r Register) Add(p Printer) {
	r[p.Name()] = p
}

// Get retrieves a printer by name.
func (r Register) Get(name string) (Printer, error) {
	p, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	return p, nil
}

// Available returns all registered printer names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
