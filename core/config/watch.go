// File: watch.go
// Title: Configuration File Watching
// Description: Reloads the configuration when its file changes on disk and
//              notifies registered handlers. Uses fsnotify on the parent
//              directory so that atomic editor saves are picked up.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with polling
// - 2025-10-19 v0.2.0: fsnotify events replace the polling loop

package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	tkerror "github.com/msto63/toolkit/core/error"
	"github.com/msto63/toolkit/core/log"
)

type watcher struct {
	fs   *fsnotify.Watcher
	done chan struct{}
	wg   sync.WaitGroup
}

// OnChange registers a handler called after every successful reload
func (c *Config) OnChange(handler ChangeHandler) {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()
	c.watchers = append(c.watchers, handler)
}

// Watch starts watching the configuration file. It is a no-op if the
// configuration was not loaded from a file or is already watched.
func (c *Config) Watch() error {
	return c.startWatching()
}

// Close stops watching. It is safe to call on unwatched configurations.
func (c *Config) Close() error {
	c.watchMu.Lock()
	w := c.watch
	c.watch = nil
	c.watchMu.Unlock()

	if w == nil {
		return nil
	}
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}

func (c *Config) startWatching() error {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()

	if c.watch != nil || c.filePath == "" {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return tkerror.Wrap(err, "failed to create file watcher").
			WithCode(tkerror.CodeConfigError).
			WithOperation("config.watch")
	}
	if err := fsw.Add(filepath.Dir(c.filePath)); err != nil {
		_ = fsw.Close()
		return tkerror.Wrap(err, "failed to watch config directory").
			WithCode(tkerror.CodeConfigError).
			WithOperation("config.watch").
			WithDetail("filePath", c.filePath)
	}

	w := &watcher{fs: fsw, done: make(chan struct{})}
	c.watch = w
	w.wg.Add(1)
	go c.watchLoop(w)
	return nil
}

func (c *Config) watchLoop(w *watcher) {
	defer w.wg.Done()

	target := filepath.Clean(c.filePath)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := c.reload(); err != nil {
				c.logger.WarnWithErr("config reload failed", err, log.Fields{"file": c.filePath})
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			c.logger.ErrorWithErr("config watcher error", err, log.Fields{"file": c.filePath})
		}
	}
}

// reload re-reads the file and swaps the data. Handlers receive a snapshot
// of the previous state and the reloaded configuration itself.
func (c *Config) reload() error {
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return tkerror.Wrap(err, "failed to read config file").
			WithCode(tkerror.CodeConfigError).
			WithOperation("config.reload")
	}
	if len(content) == 0 {
		// truncated mid-write, wait for the next event
		return nil
	}

	data, err := parseContent(content, c.format)
	if err != nil {
		return err
	}
	if c.defaults != nil {
		data = mergeDefaults(data, c.defaults)
	}

	c.mu.Lock()
	old := &Config{
		data:      c.data,
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: c.envPrefix,
		defaults:  c.defaults,
		logger:    c.logger,
	}
	c.data = data
	c.mu.Unlock()

	c.logger.Debug("config reloaded", log.Fields{"file": c.filePath})

	c.watchMu.Lock()
	handlers := append([]ChangeHandler(nil), c.watchers...)
	c.watchMu.Unlock()
	for _, h := range handlers {
		h(old, c)
	}
	return nil
}
