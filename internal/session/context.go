// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rfaulhaber/proc-macro-workshop/internal/config"
	"github.com/rfaulhaber/proc-macro-workshop/internal/logger"
)

// ErrInvalidConfig indicates the config file exists but is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved configuration for one command run. The logger
// built from it is stored alongside and read back with logger.FromContext.
type Context struct {
	// Config is the resolved configuration: file, then environment, then flags.
	Config *config.Config

	// Dir is the project directory the config was looked up in.
	Dir string

	// FromFile reports whether a buildergen.yaml was found.
	FromFile bool
}

// Options control Load.
type Options struct {
	// Dir is the project directory. Empty means the working directory.
	Dir string
	// Getenv reads environment overrides. Nil disables them.
	Getenv func(string) string
	// LogOutput receives log lines. Nil means stderr.
	LogOutput io.Writer
	// Trace forces debug logging regardless of the config file.
	Trace bool
}

// Load resolves the project configuration and returns a new
// context.Context with the session Context stored in it.
// A missing buildergen.yaml is not an error: defaults apply.
func Load(ctx context.Context, opts Options) (context.Context, error) {
	dir := opts.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = cwd
	}

	cfg := config.Default()
	fromFile := false

	configPath := filepath.Join(dir, config.FileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg = loaded
		fromFile = true
	}

	cfg.ApplyEnv(opts.Getenv)
	if opts.Trace {
		cfg.Trace = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	logCfg := logger.DefaultConfig()
	if opts.LogOutput != nil {
		logCfg.Output = opts.LogOutput
	}
	if cfg.Trace {
		logCfg.Level = logger.DebugLevel
	}
	logCfg.JSON = cfg.LogFormat == config.LogFormatJSON
	log := logger.New(logCfg)
	log.Debug("configuration loaded", "dir", dir, "file", fromFile, "format", cfg.Format)

	sess := &Context{
		Config:   cfg,
		Dir:      dir,
		FromFile: fromFile,
	}

	ctx = logger.WithContext(ctx, log)
	return context.WithValue(ctx, contextKey{}, sess), nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sess, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sess
	}
	return nil
}
