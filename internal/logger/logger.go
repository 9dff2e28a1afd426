/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide console logger. It writes to
// stderr and can be silenced with SetOutput(io.Discard).
package logger

import (
	"io"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "", 0)

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	logger = log.New(w, "", 0)
}

// Success logs a completed step, marked with a check.
func Success(format string, args ...any) {
	logger.Printf("✓ "+format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Printf(format, args...)
}
