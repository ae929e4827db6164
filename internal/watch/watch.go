// Package watch implements the CLI's "render --watch" mode: re-run a
// callback every time a single source file is saved. It is a direct
// adaptation of the teacher's recursive, debounced devtools.Watcher
// (pkg/lotus/devtools/watcher.go) narrowed from "watch a directory tree
// of .go files" to "watch one file of any extension", since gotex has no
// live TUI to hot-reload — only a source file to re-render on save (a
// --macros file is not watched).
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 150 * time.Millisecond

// File watches path and calls onChange(path) after each write, debounced
// so a single save (which can emit several fsnotify events) only
// triggers one re-render. It blocks until the watcher errors or its
// event channel closes.
func File(path string, onChange func(string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return err
	}

	onChange(path)

	var timer *time.Timer
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() { onChange(path) })
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
