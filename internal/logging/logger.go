// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the process-wide logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than reaching for L directly.
var L = clog.New(os.Stderr)

// Configure applies a textual level ("debug", "info", "warn", "error") and an
// optional output writer to L. Unknown levels fall back to info.
func Configure(level string, w io.Writer) {
	if w != nil {
		L = clog.NewWithOptions(w, clog.Options{ReportTimestamp: true})
	}
	lvl, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = clog.InfoLevel
	}
	L.SetLevel(lvl)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}

// With returns a child logger carrying the given key/value pairs.
func With(keyvals ...interface{}) *clog.Logger {
	return L.With(keyvals...)
}
