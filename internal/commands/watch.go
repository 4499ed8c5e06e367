// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rfaulhaber/proc-macro-workshop/internal/logger"
)

// watchDebounce batches the bursts of write events editors produce on save.
var watchDebounce = 200 * time.Millisecond

// watchDefinitions calls regenerate for each definition file that changes,
// until ctx is canceled. Failures are logged to the context's logger and
// watching continues.
func watchDefinitions(ctx context.Context, files []string, regenerate func(string) error) error {
	log := logger.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	// Editors often replace files on save, so the parent directories are
	// watched rather than the files.
	tracked := make(map[string]string, len(files))
	dirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		tracked[abs] = file
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	log.Info("watching definitions", "files", len(tracked), "directories", len(dirs))

	pending := make(map[string]bool)
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			log.Info("stopping file watcher")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			file, ok := tracked[abs]
			if !ok {
				continue
			}
			log.Debug("definition changed", "file", file, "op", event.Op.String())
			pending[file] = true
			fire = time.After(watchDebounce)
		case <-fire:
			for file := range pending {
				if err := regenerate(file); err != nil {
					log.Error("regeneration failed", "file", file, "error", err)
				}
			}
			clear(pending)
			fire = nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error", "error", err)
		}
	}
}
