// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ghlog is a thin leveled shim over the standard log package,
// matching the plain log.Printf texture used throughout the teacher
// repo's GitHub-facing code (no structured logging framework).
package ghlog

import (
	"log"
	"os"
)

// Logger writes leveled messages to an underlying *log.Logger. The zero
// value is not usable; use New or Default.
type Logger struct {
	l     *log.Logger
	debug bool
}

// New returns a Logger writing to stderr. debug controls whether Debug
// messages are emitted.
func New(debug bool) *Logger {
	return &Logger{l: log.New(os.Stderr, "", log.LstdFlags), debug: debug}
}

var std = New(os.Getenv("GHDATA_DEBUG") != "")

// Default returns the package-level logger.
func Default() *Logger { return std }

func (lg *Logger) Infof(format string, args ...any) {
	lg.l.Printf("INFO  "+format, args...)
}

func (lg *Logger) Warnf(format string, args ...any) {
	lg.l.Printf("WARN  "+format, args...)
}

func (lg *Logger) Errorf(format string, args ...any) {
	lg.l.Printf("ERROR "+format, args...)
}

func (lg *Logger) Debugf(format string, args ...any) {
	if !lg.debug {
		return
	}
	lg.l.Printf("DEBUG "+format, args...)
}

func Infof(format string, args ...any)  { std.Infof(format, args...) }
func Warnf(format string, args ...any)  { std.Warnf(format, args...) }
func Errorf(format string, args ...any) { std.Errorf(format, args...) }
func Debugf(format string, args ...any) { std.Debugf(format, args...) }
