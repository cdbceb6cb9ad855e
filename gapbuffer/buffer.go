// Copyright (c) 2025, ZEMACS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gapbuffer implements a gap buffer: a contiguous byte array with
// an interior unused region (the "gap") that makes localized edits near
// the same position cheap. It also owns the set of markers registered
// against it, updating them in place on every insert and delete.
package gapbuffer

// MinCapacity is the capacity floor every Buffer is clamped up to, per the
// minimum capacity requirement of the data model.
const MinCapacity = 1024

// growFactor is the multiplier applied to capacity when ensureGap must
// reallocate, matching the teacher gap buffer's doubling strategy.
const growFactor = 2

// Buffer is a gap buffer over a contiguous byte slice. The zero value is
// not usable; construct one with New.
type Buffer struct {
	data     []byte
	gapStart int
	gapEnd   int
	markers  []*Marker
}

// New creates an empty Buffer whose backing storage has at least the
// requested capacity, clamped up to MinCapacity.
func New(capacity int) *Buffer {
	c := capacity
	if c < MinCapacity {
		c = MinCapacity
	}
	return &Buffer{
		data:     make([]byte, c),
		gapStart: 0,
		gapEnd:   c,
	}
}

// NewFromBytes creates a Buffer whose initial logical content is b.
func NewFromBytes(b []byte) *Buffer {
	buf := New(len(b) * growFactor)
	buf.Insert(0, b)
	return buf
}

// Len returns the logical length of the buffer's content.
func (b *Buffer) Len() int {
	return len(b.data) - (b.gapEnd - b.gapStart)
}

// Cap returns the total capacity of the backing storage, including the
// gap. Exposed for diagnostics and tests; not part of the core contract.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// physical maps a logical position to its physical offset in data. p must
// be in [0, Len()].
func (b *Buffer) physical(p int) int {
	if p < b.gapStart {
		return p
	}
	return p + (b.gapEnd - b.gapStart)
}

// At returns the byte at logical position p. The caller must ensure
// 0 <= p < Len(); behavior is undefined otherwise, per the core contract.
func (b *Buffer) At(p int) byte {
	return b.data[b.physical(p)]
}

// Slice copies n logical bytes starting at logical position p into a
// freshly allocated slice, transparently crossing the gap.
func (b *Buffer) Slice(p, n int) []byte {
	out := make([]byte, n)
	b.CopyAt(p, n, out)
	return out
}

// CopyAt copies n logical bytes starting at p into out, which must have
// length >= n. It never reads the garbage bytes inside the gap.
func (b *Buffer) CopyAt(p, n int, out []byte) {
	if n == 0 {
		return
	}
	end := p + n
	if p >= b.gapStart || end <= b.gapStart {
		// Entirely on one side of the gap.
		copy(out, b.data[b.physical(p):b.physical(p)+n])
		return
	}
	// Straddles the gap: copy the pre-gap part, then the post-gap part.
	left := b.gapStart - p
	copy(out[:left], b.data[p:b.gapStart])
	copy(out[left:], b.data[b.gapEnd:b.gapEnd+(n-left)])
}

// Bytes returns a freshly allocated, contiguous copy of the buffer's full
// logical content. This is the core's to_owned_bytes operation.
func (b *Buffer) Bytes() []byte {
	return b.Slice(0, b.Len())
}

// RegisterMarker starts tracking m, updating its Pos on every future edit.
// m's address must remain stable for as long as it stays registered.
func (b *Buffer) RegisterMarker(m *Marker) {
	b.markers = append(b.markers, m)
}

// Unregister stops tracking m. It is a no-op if m is not currently
// registered. Markers are caller-owned; the caller must unregister (or
// simply stop using) a marker before it goes out of scope if it was
// registered against a buffer that will outlive it.
func (b *Buffer) Unregister(m *Marker) {
	for i, mk := range b.markers {
		if mk == m {
			b.markers = append(b.markers[:i], b.markers[i+1:]...)
			return
		}
	}
}

// moveGap relocates the gap so that gapStart == p, shifting the minimum
// number of bytes required and never reading through the gap itself.
func (b *Buffer) moveGap(p int) {
	g := b.gapStart
	switch {
	case p < g:
		shift := g - p
		// Bytes [p, g) move to [gapEnd-shift, gapEnd). Source and
		// destination overlap when shift > gapEnd-g; copy handles
		// overlapping ranges like memmove.
		copy(b.data[b.gapEnd-shift:b.gapEnd], b.data[p:g])
		b.gapStart = p
		b.gapEnd -= shift
	case p > g:
		shift := p - g
		// Bytes [gapEnd, gapEnd+shift) move to [g, p): copy forwards.
		copy(b.data[g:p], b.data[b.gapEnd:b.gapEnd+shift])
		b.gapStart += shift
		b.gapEnd += shift
	}
}

// ensureGap grows the backing storage, if needed, so the gap can hold at
// least need more bytes without relocating gapStart.
func (b *Buffer) ensureGap(need int) {
	if b.gapEnd-b.gapStart >= need {
		return
	}
	l := b.Len()
	newCap := len(b.data) * growFactor
	if want := l + need + MinCapacity; want > newCap {
		newCap = want
	}
	newData := make([]byte, newCap)
	copy(newData[:b.gapStart], b.data[:b.gapStart])
	newGapEnd := newCap - (len(b.data) - b.gapEnd)
	copy(newData[newGapEnd:], b.data[b.gapEnd:])
	b.data = newData
	b.gapEnd = newGapEnd
}

// Insert places text at logical position p, growing storage as needed and
// updating every registered marker per the insertion_type tie-break rule.
func (b *Buffer) Insert(p int, text []byte) {
	if len(text) == 0 {
		return
	}
	b.moveGap(p)
	b.ensureGap(len(text))
	copy(b.data[b.gapStart:b.gapStart+len(text)], text)
	b.gapStart += len(text)

	for _, m := range b.markers {
		if m.Pos > p || (m.Pos == p && m.Advance) {
			m.Pos += len(text)
		}
	}
}

// InsertString is a convenience wrapper around Insert for string text.
func (b *Buffer) InsertString(p int, text string) {
	b.Insert(p, []byte(text))
}

// Delete removes up to n bytes starting at logical position p, clamping n
// down to Len()-p, and updates every registered marker. delete(p, 0) is a
// no-op, and a count running past the end of the buffer deletes through
// the end instead of failing.
func (b *Buffer) Delete(p, n int) {
	if n <= 0 {
		return
	}
	l := b.Len()
	if n > l-p {
		n = l - p
	}
	if n <= 0 {
		return
	}
	b.moveGap(p)
	b.gapEnd += n

	e := p + n
	for _, m := range b.markers {
		switch {
		case m.Pos >= e:
			m.Pos -= n
		case m.Pos > p:
			m.Pos = p
		}
	}
}
