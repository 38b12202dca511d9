package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gosuri/uilive"
)

// watch runs the script at path, then again after every change until
// interrupted.
func watch(cfg config, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to initialize watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, editors often replace the file on save.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	out := uilive.New()
	out.RefreshInterval = 100 * time.Millisecond
	out.Start()
	defer out.Stop()

	rerun := make(chan struct{}, 1)
	trigger := func() {
		select {
		case rerun <- struct{}{}:
		default:
		}
	}
	trigger()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalChan)

	var debounceTimer *time.Timer
	for {
		select {
		case <-rerun:
			if err := runFile(out, cfg, path); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
			out.Flush()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isScriptChange(event, path) {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(cfg.delay, trigger)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(out, "Watch error: %v\n", err)
			out.Flush()

		case <-signalChan:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil
		}
	}
}

// isScriptChange tells whether event rewrote the script file.
func isScriptChange(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(path) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
