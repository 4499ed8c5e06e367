// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rfaulhaber/proc-macro-workshop/internal/builder"
	"github.com/rfaulhaber/proc-macro-workshop/internal/config"
	"github.com/rfaulhaber/proc-macro-workshop/internal/logger"
	"github.com/rfaulhaber/proc-macro-workshop/internal/render"
	"github.com/rfaulhaber/proc-macro-workshop/internal/schema"
)

// resolveWrapper picks the optional wrapper name: flag, then the resolved
// config (file with environment applied), then the printer default.
func resolveWrapper(flag string, cfg *config.Config, p render.Printer) string {
	if flag != "" {
		return flag
	}
	if cfg != nil && cfg.OptionalWrapper != "" {
		return cfg.OptionalWrapper
	}
	return p.DefaultWrapper()
}

// resolvePrinter picks the printer named by the flag or the config.
func resolvePrinter(printers render.Register, flag string, cfg *config.Config) (render.Printer, error) {
	name := flag
	if name == "" && cfg != nil {
		name = cfg.Format
	}
	if name == "" {
		return nil, fmt.Errorf("no output format given. Available formats: %s",
			strings.Join(printers.Available(), ", "))
	}
	p, err := printers.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported format %q. Available formats: %s",
			name, strings.Join(printers.Available(), ", "))
	}
	return p, nil
}

// loadPlans reads the definitions in file and synthesizes a plan for each.
func loadPlans(file, wrapper string, log logger.Logger) ([]*builder.Plan, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}

	defs, err := schema.LoadFile(os.DirFS(filepath.Dir(abs)), filepath.Base(abs), wrapper)
	if err != nil {
		return nil, fmt.Errorf("failed to load definitions: %w", err)
	}

	schemas, err := schema.ExtractAll(defs)
	if err != nil {
		return nil, err
	}

	return builder.SynthesizeAll(schemas, builder.WithWrapper(wrapper), builder.WithLogger(log))
}

// outputName is the generated file name for a definition file.
func outputName(file, ext string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_builder" + ext
}

// packageFromDir derives a package name from the output directory.
// Returns "" when the directory name is not usable as an identifier.
func packageFromDir(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, r := range strings.ToLower(filepath.Base(abs)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		return ""
	}
	return name
}
