// Copyright (c) 2025, ZEMACS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax provides a byte-class lookup table and a recursive
// s-expression scanner that walks a gapbuffer.Buffer to find the bounds
// of balanced forms, strings, and atoms, without building a parse tree.
package syntax

// Class is the syntax category assigned to a byte value.
type Class int

const (
	Whitespace Class = iota
	Word
	Symbol
	OpenParen
	CloseParen
	StringQuote
	Escape
	CommentStart
	CommentEnd
	Punctuation
)

// Table maps each of the 256 possible byte values to a Class, and tracks
// which opener bytes pair with which closer bytes.
type Table struct {
	classes [256]Class
	closers map[byte]byte
	openers map[byte]byte
}

// NewStandardTable returns the default Lisp-like table described by the
// spec: whitespace, [a-zA-Z0-9] words, '_'/'-' symbols, '"' strings, '\'
// escape, ';' line comments, and the three bracket pairs.
func NewStandardTable() *Table {
	t := &Table{closers: map[byte]byte{}, openers: map[byte]byte{}}
	for b := 0; b < 256; b++ {
		t.classes[b] = Punctuation
	}
	for _, b := range []byte(" \t\n\r") {
		t.classes[b] = Whitespace
	}
	for b := byte('a'); b <= 'z'; b++ {
		t.classes[b] = Word
	}
	for b := byte('A'); b <= 'Z'; b++ {
		t.classes[b] = Word
	}
	for b := byte('0'); b <= '9'; b++ {
		t.classes[b] = Word
	}
	t.classes['_'] = Symbol
	t.classes['-'] = Symbol
	t.classes['"'] = StringQuote
	t.classes['\\'] = Escape
	t.classes[';'] = CommentStart

	t.SetPair('(', ')')
	t.SetPair('[', ']')
	t.SetPair('{', '}')
	return t
}

// Class returns the syntax class assigned to byte b.
func (t *Table) Class(b byte) Class {
	return t.classes[b]
}

// SetClass overrides the class assigned to byte b.
func (t *Table) SetClass(b byte, c Class) {
	t.classes[b] = c
}

// SetPair registers open/close as a balanced pair, forcing their classes
// to OpenParen and CloseParen respectively.
func (t *Table) SetPair(open, close byte) {
	if t.closers == nil {
		t.closers = map[byte]byte{}
	}
	if t.openers == nil {
		t.openers = map[byte]byte{}
	}
	t.closers[open] = close
	t.openers[close] = open
	t.classes[open] = OpenParen
	t.classes[close] = CloseParen
}

// MatchingCloser returns the closer registered for opener, and whether
// one was registered at all.
func (t *Table) MatchingCloser(opener byte) (byte, bool) {
	c, ok := t.closers[opener]
	return c, ok
}

// IsCloser reports whether b is registered as the closer of some pair.
func (t *Table) IsCloser(b byte) bool {
	_, ok := t.openers[b]
	return ok
}
