// Copyright (c) 2025, ZEMACS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"fmt"

	"github.com/copyleftdev/zemacs/gapbuffer"
	"github.com/copyleftdev/zemacs/zerr"
)

// reader is the minimal buffer surface the scanner needs: logical length
// and random byte access. gapbuffer.Buffer satisfies it directly.
type reader interface {
	Len() int
	At(int) byte
}

// SkipWhitespace advances p past any run of Whitespace bytes and whole
// line comments (a CommentStart byte through, and including, the next LF
// or end of buffer), returning the resulting position. It is idempotent:
// calling it again on its own result is a no-op.
func SkipWhitespace(buf *gapbuffer.Buffer, table *Table, p int) int {
	return skipWhitespace(buf, table, p)
}

func skipWhitespace(buf reader, table *Table, p int) int {
	l := buf.Len()
	for p < l {
		c := buf.At(p)
		switch table.Class(c) {
		case Whitespace:
			p++
		case CommentStart:
			p++
			for p < l && buf.At(p) != '\n' {
				p++
			}
			if p < l {
				p++ // consume the newline itself
			}
		default:
			return p
		}
	}
	return p
}

// maxScanDepth bounds the scanner's recursion through nested openers, per
// the design notes' requirement that deep nesting either be documented or
// converted to an explicit stack. This module documents the limit rather
// than converting to an explicit stack, since 10000 levels of nesting
// already far exceeds any real source file's structure.
const maxScanDepth = 10000

// ScanSexp returns the position immediately after one complete
// s-expression starting at or after p: a balanced bracketed form, a
// string literal, or a maximal run of non-delimiter atom bytes.
func ScanSexp(buf *gapbuffer.Buffer, table *Table, p int) (int, error) {
	return scanSexp(buf, table, p, 0)
}

func scanSexp(buf reader, table *Table, p int, depth int) (int, error) {
	if depth > maxScanDepth {
		return 0, fmt.Errorf("scan_sexp: nesting exceeds %d levels: %w", maxScanDepth, zerr.ErrUnbalancedParentheses)
	}

	p = skipWhitespace(buf, table, p)
	l := buf.Len()
	if p >= l {
		return 0, fmt.Errorf("scan_sexp: at end of buffer: %w", zerr.ErrEndOfBuffer)
	}

	c := buf.At(p)
	switch table.Class(c) {
	case OpenParen:
		closeByte, ok := table.MatchingCloser(c)
		if !ok {
			return 0, fmt.Errorf("scan_sexp: opener %q has no matching closer: %w", c, zerr.ErrInvalidSyntax)
		}
		cur := p + 1
		for {
			q := skipWhitespace(buf, table, cur)
			if q >= l {
				return 0, fmt.Errorf("scan_sexp: unterminated group opened at %d: %w", p, zerr.ErrUnbalancedParentheses)
			}
			if buf.At(q) == closeByte {
				return q + 1, nil
			}
			if table.Class(buf.At(q)) == CloseParen {
				return 0, fmt.Errorf("scan_sexp: %q at %d does not match opener %q at %d: %w", buf.At(q), q, c, p, zerr.ErrMismatchedParentheses)
			}
			next, err := scanSexp(buf, table, q, depth+1)
			if err != nil {
				return 0, err
			}
			cur = next
		}
	case StringQuote:
		q := p + 1
		for {
			if q >= l {
				return 0, fmt.Errorf("scan_sexp: unterminated string starting at %d: %w", p, zerr.ErrUnbalancedString)
			}
			c := buf.At(q)
			switch table.Class(c) {
			case Escape:
				q += 2
			case StringQuote:
				return q + 1, nil
			default:
				q++
			}
		}
	case CloseParen:
		return 0, fmt.Errorf("scan_sexp: unexpected close paren %q at %d: %w", c, p, zerr.ErrUnexpectedCloseParen)
	case CommentEnd:
		return p + 1, nil
	default:
		// Word, Symbol, Punctuation, and Escape (outside of a string,
		// '\' is a valid single-atom byte, per the design notes'
		// resolved open question) all fall through to atom scanning: a
		// maximal run of bytes whose class is not a delimiter.
		q := p + 1
		for q < l && !isDelimiterClass(table.Class(buf.At(q))) {
			q++
		}
		return q, nil
	}
}

func isDelimiterClass(c Class) bool {
	switch c {
	case Whitespace, OpenParen, CloseParen, StringQuote, CommentStart:
		return true
	default:
		return false
	}
}

// ScanSexpN applies ScanSexp n times in sequence, starting at p, and
// returns the position after the last call. n must be >= 0; negative n
// (backward scanning) is not implemented.
func ScanSexpN(buf *gapbuffer.Buffer, table *Table, p, n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("scan_sexp_n: backward scanning: %w", zerr.ErrNotImplemented)
	}
	cur := p
	for i := 0; i < n; i++ {
		next, err := ScanSexp(buf, table, cur)
		if err != nil {
			return 0, err
		}
		cur = next
	}
	return cur, nil
}

// LineColumn converts a byte offset into a (line, column) pair, both
// 1-indexed, by counting newlines up to pos. It performs no unicode
// grapheme segmentation, consistent with the byte-addressed buffer this
// module is built on; callers needing rune-aware columns must do that
// accounting themselves.
func LineColumn(buf *gapbuffer.Buffer, pos int) (line, col int) {
	line, col = 1, 1
	l := buf.Len()
	if pos > l {
		pos = l
	}
	for i := 0; i < pos; i++ {
		if buf.At(i) == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
