// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog logger used by readmore
// programs, with a user-selected verbosity level and colored output.
package logx

import "log/slog"

// UserLevel is the verbosity [slog.Level] selected by the user. Messages
// at or above it are shown. It defaults to [slog.LevelWarn], or to
// [slog.LevelDebug] in builds with the debug tag.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the level for the verbosity flags of a command:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - none: [slog.LevelWarn]
//
// The first flag set in that order wins.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	}
	return slog.LevelWarn
}

// SetLevelFromFlags sets [UserLevel] from the verbosity flags,
// and installs the default logger at that level.
func SetLevelFromFlags(vv, v, q bool) {
	UserLevel = LevelFromFlags(vv, v, q)
	SetDefaultLogger()
}
