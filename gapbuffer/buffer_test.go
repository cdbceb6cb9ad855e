// Copyright (c) 2025, ZEMACS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gapbuffer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClampsMinCapacity(t *testing.T) {
	b := New(0)
	assert.Equal(t, MinCapacity, b.Cap())
	assert.Equal(t, 0, b.Len())
	b.InsertString(0, "x")
	assert.Equal(t, "x", string(b.Bytes()))
}

// TestBasicEditTrio is scenario A from the spec.
func TestBasicEditTrio(t *testing.T) {
	b := New(0)
	b.InsertString(0, "World")
	assert.Equal(t, "World", string(b.Bytes()))

	b.InsertString(0, "Hello ")
	assert.Equal(t, "Hello World", string(b.Bytes()))

	b.InsertString(5, ",")
	assert.Equal(t, "Hello, World", string(b.Bytes()))

	b.Delete(5, 1)
	assert.Equal(t, "Hello World", string(b.Bytes()))
}

// TestMarkers is scenario B from the spec.
func TestMarkers(t *testing.T) {
	b := NewFromBytes([]byte("ABC"))
	m1 := NewMarker(b, 1, false)
	m2 := NewMarker(b, 1, true)

	b.InsertString(1, "X")
	assert.Equal(t, "AXBC", string(b.Bytes()))
	assert.Equal(t, 1, m1.Pos)
	assert.Equal(t, 2, m2.Pos)

	b.Delete(1, 1)
	assert.Equal(t, "ABC", string(b.Bytes()))
	assert.Equal(t, 1, m1.Pos)
	assert.Equal(t, 1, m2.Pos)
}

func TestMarkerSwallowedByDeletionCollapsesToStart(t *testing.T) {
	b := NewFromBytes([]byte("ABCDEF"))
	m := NewMarker(b, 3, false)
	b.Delete(1, 4) // removes "BCDE", m.Pos was inside the deleted range
	assert.Equal(t, "AF", string(b.Bytes()))
	assert.Equal(t, 1, m.Pos)
}

func TestMarkerPastDeletionShiftsLeft(t *testing.T) {
	b := NewFromBytes([]byte("ABCDEF"))
	m := NewMarker(b, 5, false)
	b.Delete(1, 2) // removes "BC"
	assert.Equal(t, "ADEF", string(b.Bytes()))
	assert.Equal(t, 3, m.Pos)
}

func TestUnregisterStopsTracking(t *testing.T) {
	b := NewFromBytes([]byte("ABC"))
	m := NewMarker(b, 1, false)
	b.Unregister(m)
	b.InsertString(0, "XYZ")
	assert.Equal(t, 1, m.Pos, "unregistered marker must not be touched by later edits")
}

func TestInsertEmptyIsNoOp(t *testing.T) {
	b := NewFromBytes([]byte("ABC"))
	m := NewMarker(b, 1, true)
	b.InsertString(1, "")
	assert.Equal(t, "ABC", string(b.Bytes()))
	assert.Equal(t, 1, m.Pos)
}

func TestDeleteZeroIsNoOp(t *testing.T) {
	b := NewFromBytes([]byte("ABC"))
	m := NewMarker(b, 1, false)
	b.Delete(1, 0)
	assert.Equal(t, "ABC", string(b.Bytes()))
	assert.Equal(t, 1, m.Pos)
}

func TestDeletePastEndClamps(t *testing.T) {
	b := NewFromBytes([]byte("ABC"))
	b.Delete(1, 100)
	assert.Equal(t, "A", string(b.Bytes()))
}

func TestInsertAtBoundaries(t *testing.T) {
	b := NewFromBytes([]byte("BC"))
	b.InsertString(0, "A")
	assert.Equal(t, "ABC", string(b.Bytes()))
	b.InsertString(b.Len(), "D")
	assert.Equal(t, "ABCD", string(b.Bytes()))
}

func TestGrowPreservesContentAcrossReallocation(t *testing.T) {
	b := New(8)
	require.Equal(t, MinCapacity, b.Cap())

	big := make([]byte, MinCapacity*3)
	for i := range big {
		big[i] = byte('a' + i%26)
	}
	b.Insert(0, big)
	assert.Equal(t, big, b.Bytes())
	assert.GreaterOrEqual(t, b.Cap(), len(big))
}

func TestCopyAtStraddlesGap(t *testing.T) {
	b := NewFromBytes([]byte("0123456789"))
	// Move the gap into the middle via an edit, then read across it.
	b.InsertString(5, "X")
	b.Delete(5, 1)
	out := make([]byte, 4)
	b.CopyAt(3, 4, out)
	assert.Equal(t, "3456", string(out))
}

func TestBytesRoundTrip(t *testing.T) {
	b := NewFromBytes([]byte("hello, gap buffer"))
	fresh := NewFromBytes(b.Bytes())
	assert.Equal(t, b.Len(), fresh.Len())
	assert.Equal(t, b.Bytes(), fresh.Bytes())
}

// TestDifferentialFuzz is scenario D from the spec: 5,000 steps against a
// naive reference implementation using a fixed seed for reproducibility.
func TestDifferentialFuzz(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	gb := New(0)
	var ref []byte

	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "

	for i := 0; i < 5000; i++ {
		l := len(ref)
		if l == 0 || rng.Float64() < 0.6 {
			p := rng.Intn(l + 1)
			n := 1 + rng.Intn(50)
			text := make([]byte, n)
			for j := range text {
				text[j] = alphabet[rng.Intn(len(alphabet))]
			}
			gb.Insert(p, text)
			ref = append(ref[:p:p], append(append([]byte{}, text...), ref[p:]...)...)
		} else {
			p := rng.Intn(l)
			n := 1 + rng.Intn(50)
			if n > l-p {
				n = l - p
			}
			gb.Delete(p, n)
			ref = append(ref[:p:p], ref[p+n:]...)
		}
		require.Equal(t, ref, gb.Bytes(), "step %d", i)
	}
}

func TestMarkerInvariantStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	gb := NewFromBytes([]byte("seed text for markers"))
	markers := make([]*Marker, 0, 16)
	for i := 0; i < 16; i++ {
		p := rng.Intn(gb.Len() + 1)
		markers = append(markers, NewMarker(gb, p, i%2 == 0))
	}

	for i := 0; i < 500; i++ {
		l := gb.Len()
		if l == 0 || rng.Float64() < 0.6 {
			p := rng.Intn(l + 1)
			gb.InsertString(p, "abc")
		} else {
			p := rng.Intn(l)
			gb.Delete(p, 1+rng.Intn(3))
		}
		for _, m := range markers {
			assert.GreaterOrEqual(t, m.Pos, 0)
			assert.LessOrEqual(t, m.Pos, gb.Len())
		}
	}
}
