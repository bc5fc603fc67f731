// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag provides structured, colored trace output for validation
// decisions and per-ply mask cardinalities. It wraps gosl/io's
// colored-print helpers behind a small interface so callers (and tests)
// can swap in a silent logger instead of inspecting stdout.
package diag

import "github.com/cpmech/gosl/io"

// Logger is satisfied by both Verbose and Silent, and by ply.Logger (the
// core package only needs Tracef/Warnf, kept deliberately tiny so it has
// no import on this package).
type Logger interface {
	Tracef(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// verbose prints every trace and warning via gosl's colored printers:
// io.Pforan for routine trace lines, io.PfYel for warnings.
type verbose struct{}

// NewVerbose returns a Logger that prints every message.
func NewVerbose() Logger { return verbose{} }

func (verbose) Tracef(format string, args ...interface{}) {
	io.Pforan(format+"\n", args...)
}

func (verbose) Warnf(format string, args ...interface{}) {
	io.PfYel("warning: "+format+"\n", args...)
}

// silent discards every message; the default for non-verbose runs.
type silent struct{}

// NewSilent returns a Logger that discards every message.
func NewSilent() Logger { return silent{} }

func (silent) Tracef(string, ...interface{}) {}
func (silent) Warnf(string, ...interface{})  {}
