// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/readmore/base/errors"
	"github.com/fsnotify/fsnotify"
)

// watch calls fun, and again every time the file is written or
// replaced, until the context is done. Errors from fun are logged.
// The directory of the file is watched, so that files replaced by
// editors with a rename are still followed.
func watch(ctx context.Context, file string, fun func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return errors.Wrap(err)
	}
	errors.Log(fun())
	base := filepath.Base(file)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			slog.Debug("readmore: file changed", "file", ev.Name, "op", ev.Op)
			errors.Log(fun())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
