//go:build !js && !wasm

package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/peter-r-g/CodeItOut/colors"
)

// Editors often write a file in several steps
const settle = 100 * time.Millisecond

// watchFile runs path once and then again in a new Script after every write
func watchFile(ctx context.Context, opts options, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, "resolving path")
	}
	// Watch the directory so renames and recreations are still seen
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, "watching %s", path)
	}

	runFile(ctx, opts, path, os.Stdout)
	colors.CYAN.Fprintf(os.Stderr, "watching %s\n", path)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(settle)
			} else {
				timer.Reset(settle)
			}
			fire = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			colors.RED.Fprintln(os.Stderr, "watch error:", err)
		case <-fire:
			fire = nil
			colors.CYAN.Fprintf(os.Stderr, "\n%s changed\n", path)
			runFile(ctx, opts, path, os.Stdout)
		}
	}
}
