// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger setup,
// with a user-settable level and colored level names on terminals.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through exec to the end user's preference. The default
// user verbosity level is [slog.LevelInfo].
var UserLevel = defaultUserLevel

// UseColor is whether to use color in log messages. It is on by default.
var UseColor = true

// SetDefaultLogger sets the default logger to be a text handler
// writing to [os.Stderr] that uses [UserLevel] and colors
// level names if [UseColor] is on and the terminal supports it.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a new text [slog.Handler] writing to w,
// filtered by [UserLevel].
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{Level: &levelVar{}}
	if UseColor && out.Profile != termenv.Ascii {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			level, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelString(out, level))
			return a
		}
	}
	return slog.NewTextHandler(w, opts)
}

// LevelString returns the name of the given level colored
// for the given terminal output.
func LevelString(out *termenv.Output, level slog.Level) string {
	st := out.String(level.String())
	switch {
	case level >= slog.LevelError:
		st = st.Foreground(termenv.ANSIRed).Bold()
	case level >= slog.LevelWarn:
		st = st.Foreground(termenv.ANSIYellow)
	case level >= slog.LevelInfo:
		st = st.Foreground(termenv.ANSICyan)
	default:
		st = st.Foreground(termenv.ANSIBrightBlack)
	}
	return st.String()
}

// levelVar is a [slog.Leveler] that always reports the current [UserLevel],
// so that changes to it take effect without reinstalling the logger.
type levelVar struct{}

func (levelVar) Level() slog.Level {
	return UserLevel
}
