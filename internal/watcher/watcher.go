// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package watcher repeats a build whenever files under the project tree
// change, coalescing bursts of change events into a single rebuild.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/ctxlog"
	"github.com/fsnotify/fsnotify"
)

// DebounceInterval is the quiescence window: change events closer together
// than this trigger at most one rebuild.
const DebounceInterval = 500 * time.Millisecond

// timeNow allows tests to control the debounce clock.
var timeNow = time.Now

// Loop watches a directory tree and reruns a build on changes.
//
// The observer goroutine communicates with the control flow only through
// the fsnotify event channel; the debounce timestamp is owned exclusively
// by the single consumer of that channel.
type Loop struct {
	// Dir is the root of the watched tree.
	Dir string
	// ArtifactExt names the primary artifact extension; events on matching
	// files are always ignored so the build output cannot retrigger itself.
	ArtifactExt string
	// Debounce is the quiescence interval.
	Debounce time.Duration
	// Rebuild runs one full batch, synchronously.
	Rebuild func(context.Context)

	lastTrigger time.Time
}

// New creates a watch loop over dir invoking rebuild on changes.
func New(dir string, rebuild func(context.Context)) *Loop {
	return &Loop{
		Dir:         dir,
		ArtifactExt: ".pdf",
		Debounce:    DebounceInterval,
		Rebuild:     rebuild,
	}
}

// Run executes one build immediately, then watches for changes until the
// context is cancelled. A failed batch does not stop the loop. Any rebuild
// in flight when the context is cancelled runs to completion.
func (l *Loop) Run(ctx context.Context) error {
	l.Rebuild(ctx)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close() //nolint:errcheck

	if err := addDirsRecursive(ctx, w, l.Dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			ctxlog.Info(ctx, "stopping watcher")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Create != 0 {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					_ = addDirsRecursive(ctx, w, ev.Name)
				}
			}

			if !l.shouldRebuild(ev.Name, timeNow()) {
				continue
			}

			ctxlog.Info(ctx, "change detected, rebuilding", "path", ev.Name)
			l.Rebuild(ctx)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			ctxlog.Warn(ctx, "watcher error", "error", err)
		}
	}
}

// shouldRebuild applies the artifact filter and the quiescence window.
// Events inside the window are coalesced, not queued: at most one rebuild
// happens per window no matter how many files changed.
func (l *Loop) shouldRebuild(name string, at time.Time) bool {
	if strings.HasSuffix(name, l.ArtifactExt) {
		return false
	}

	if at.Sub(l.lastTrigger) <= l.Debounce {
		return false
	}

	l.lastTrigger = at

	return true
}

func addDirsRecursive(ctx context.Context, w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable subtrees are skipped, not fatal
		}

		if d.IsDir() {
			if err := w.Add(path); err != nil {
				ctxlog.Warn(ctx, "watch add failed", "dir", path, "error", err)
			}
		}

		return nil
	})
}
