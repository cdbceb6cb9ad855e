// Copyright (c) 2025, ZEMACS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"errors"
	"testing"

	"github.com/copyleftdev/zemacs/gapbuffer"
	"github.com/copyleftdev/zemacs/zerr"
)

// FuzzScanSexp checks that ScanSexp never panics on arbitrary input and,
// whenever it does return a position, that position lies within the
// buffer's bounds (a smoke-test companion to the exact scenarios in
// scanner_test.go, which pin specific offsets and error kinds).
func FuzzScanSexp(f *testing.F) {
	f.Add([]byte("(a (b c) d)"))
	f.Add([]byte("( [ a ) ]"))
	f.Add([]byte("; comment\n(foo)"))
	f.Add([]byte(`"foo" "bar \"baz\""`))
	f.Add([]byte(""))
	f.Add([]byte(")))((("))
	f.Fuzz(func(t *testing.T, content []byte) {
		buf := gapbuffer.NewFromBytes(content)
		tbl := NewStandardTable()

		p, err := ScanSexp(buf, tbl, 0)
		if err != nil {
			knownKinds := []error{
				zerr.ErrEndOfBuffer,
				zerr.ErrUnbalancedParentheses,
				zerr.ErrMismatchedParentheses,
				zerr.ErrUnexpectedCloseParen,
				zerr.ErrUnbalancedString,
				zerr.ErrInvalidSyntax,
			}
			matched := false
			for _, k := range knownKinds {
				if errors.Is(err, k) {
					matched = true
					break
				}
			}
			if !matched {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}
		if p < 0 || p > buf.Len() {
			t.Fatalf("position %d out of bounds [0, %d]", p, buf.Len())
		}
	})
}
