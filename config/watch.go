// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/hero/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch watches the given config file and calls fn with the reloaded
// config whenever the file is written or replaced. Files that fail to load
// are logged and skipped. It watches the directory of the file, so that
// editors that replace the file on save are handled. It does not return
// until the context is done, so it should typically be called in a
// separate goroutine. It returns an error if the watch cannot be set up.
func Watch(ctx context.Context, filename string, fn func(cf *Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Log(err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(filename)
	if err != nil {
		return errors.Log(err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Log(err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cf, err := Load(abs)
			if err != nil {
				continue
			}
			slog.Info("config: reloaded", "file", filename)
			fn(cf)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watch", "err", err)
		}
	}
}
