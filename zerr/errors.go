// Copyright (c) 2025, ZEMACS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zerr defines the error taxonomy of the editor core, along with
// small helpers for logging and propagating errors in the style used
// across this module. The syntax scanner returns these errors; the
// gapbuffer and undo packages have no error results.
package zerr

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// Sentinel errors for the editor core's error taxonomy. Callers recover
// the specific kind with errors.Is, never by string-matching Error().
var (
	// ErrAllocationFailure names the "storage could not be grown" kind.
	// No function in this module returns it: Buffer and Manager
	// operations have no error results, and a failed allocation panics
	// in the Go runtime.
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrEndOfBuffer is returned when a scan is requested at or past the
	// end of the buffer after whitespace has been skipped.
	ErrEndOfBuffer = errors.New("end of buffer")

	// ErrUnbalancedParentheses is returned when the scanner reaches end of
	// buffer while inside an open group, or when nesting exceeds the
	// scanner's depth limit.
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")

	// ErrMismatchedParentheses is returned when a closer is found that
	// does not match the opener of its enclosing group.
	ErrMismatchedParentheses = errors.New("mismatched parentheses")

	// ErrUnexpectedCloseParen is returned when a top-level scan encounters
	// a closer before any opener.
	ErrUnexpectedCloseParen = errors.New("unexpected close paren")

	// ErrUnbalancedString is returned when the scanner reaches end of
	// buffer while inside a string literal.
	ErrUnbalancedString = errors.New("unbalanced string")

	// ErrInvalidSyntax is returned when an opener has no registered
	// matching closer in the syntax table.
	ErrInvalidSyntax = errors.New("invalid syntax: opener has no matching closer")

	// ErrNotImplemented is returned by operations this module deliberately
	// does not implement (backward scan_sexp_n).
	ErrNotImplemented = errors.New("not implemented")
)

// Log logs the given error, if non-nil, with its caller location, and
// returns it unchanged. The intended usage is:
//
//	return zerr.Log(editorcfg.SavePreset(p, filename))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return err
}

// Log1 logs the error, if non-nil, and returns v unchanged either way.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return v
}

// Must panics if err is non-nil. Intended for invariants that this
// package's own invariants guarantee cannot fail, not for caller input.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// callerInfo returns "file:line" of the function that invoked Log/Log1
// (two frames above callerInfo itself), matching the teacher corpus's
// base/errors.CallerInfo.
func callerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "???"
	}
	return file + ":" + strconv.Itoa(line)
}
