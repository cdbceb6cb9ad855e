// Copyright (c) 2025, ZEMACS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editorcfg

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"

	"github.com/copyleftdev/zemacs/syntax"
)

// Watcher reloads a Preset file on disk changes and hands the rebuilt
// syntax.Table to onReload. This is ambient host-process plumbing, not
// part of the editor core: the core's own operations (§5 of the spec)
// have no suspension points and no goroutines. onReload is invoked from
// the watcher's own goroutine; callers that hand the new Table to a live
// Scanner are responsible for only doing so between scans, the same
// single-writer discipline the core already asks of every caller.
type Watcher struct {
	path     string
	onReload func(*syntax.Table, error)
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// NewWatcher constructs a Watcher for path without starting it.
func NewWatcher(path string, onReload func(*syntax.Table, error)) *Watcher {
	return &Watcher{path: path, onReload: onReload}
}

// Start begins watching the preset file for changes, loading it once
// immediately so onReload is called with the initial state.
func (w *Watcher) Start() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(w.path); err != nil {
		fw.Close()
		return err
	}
	w.watcher = fw
	w.done = make(chan struct{})

	w.reload()
	go w.run()
	return nil
}

// Stop shuts the watcher down. It is safe to call Stop without a prior
// Start error, but calling it twice is not.
func (w *Watcher) Stop() {
	if w.done != nil {
		close(w.done)
	}
	if w.watcher != nil {
		w.watcher.Close()
	}
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("editorcfg: watch error", "path", w.path, "error", err)
		}
	}
}

func (w *Watcher) reload() {
	preset, err := OpenPreset(w.path)
	if err != nil {
		w.onReload(nil, err)
		return
	}
	tbl, err := preset.Table()
	w.onReload(tbl, err)
}
