// Copyright (c) 2025, ZEMACS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo implements a two-stack history of edit primitives over a
// gapbuffer.Buffer. It records Insert and Delete entries (not whole
// commands), groups them into atomic UndoGroups, and replays inverses to
// implement Undo and Redo.
package undo

import "github.com/copyleftdev/zemacs/gapbuffer"

// DefaultMaxSteps is the default cap on the number of groups kept on the
// undo stack before the oldest is evicted.
const DefaultMaxSteps = 1000

// entryKind distinguishes the two producible UndoEntry variants. The
// MarkerMove variant from the design notes is intentionally never
// constructed: this module treats markers as derived state that undo does
// not restore.
type entryKind int

const (
	kindInsert entryKind = iota
	kindDelete
)

// entry is one edit primitive: either "len bytes were inserted at pos" or
// "text was deleted starting at pos". Delete entries own their recorded
// bytes; Insert entries store only a length.
type entry struct {
	kind entryKind
	pos  int
	len  int    // valid for kindInsert
	text []byte // valid for kindDelete
}

// Group is an ordered list of entries representing one atomic,
// user-visible edit.
type Group struct {
	entries []entry
}

// Empty reports whether the group has no entries. Empty groups are never
// pushed onto either stack.
func (g *Group) Empty() bool {
	return g == nil || len(g.entries) == 0
}

// Manager is a two-stack (undo/redo) history of Groups, plus the group
// currently being assembled, if any.
type Manager struct {
	undoStack stack[*Group]
	redoStack stack[*Group]
	current   *Group
	MaxSteps  int
}

// NewManager constructs a Manager with the given max-steps cap. A
// non-positive maxSteps selects DefaultMaxSteps.
func NewManager(maxSteps int) *Manager {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Manager{MaxSteps: maxSteps}
}

// BeginGroup starts a new open group. It is a no-op if a group is already
// open.
func (m *Manager) BeginGroup() {
	if m.current != nil {
		return
	}
	m.current = &Group{}
}

// EndGroup closes the open group. If it is non-empty, it is pushed onto
// the undo stack and the redo stack is cleared; the safety cap then
// evicts the oldest undo group if MaxSteps was exceeded. An empty open
// group, or no open group at all, is a no-op that does not touch the redo
// stack (the stricter rule from the design notes: only a non-empty push
// clears redo history).
func (m *Manager) EndGroup() {
	g := m.current
	m.current = nil
	if g.Empty() {
		return
	}
	m.undoStack.push(g)
	m.redoStack.clear(freeGroup)
	for m.undoStack.len() > m.MaxSteps {
		m.undoStack.dropOldest(freeGroup)
	}
}

// freeGroup releases the owned bytes of every Delete entry in g. It is
// called for a group dropped by the safety cap or cleared from the redo
// stack by EndGroup. Groups popped by Undo/Redo are not passed to it;
// their bytes are ordinary heap memory reclaimed by the GC once
// unreferenced.
func freeGroup(g *Group) {
	for i := range g.entries {
		g.entries[i].text = nil
	}
}

// RecordInsert appends an Insert entry to the open group, opening one
// first if none is in progress.
func (m *Manager) RecordInsert(pos, length int) {
	m.BeginGroup()
	m.current.entries = append(m.current.entries, entry{kind: kindInsert, pos: pos, len: length})
}

// RecordDelete copies text into manager-owned storage and appends a
// Delete entry to the open group. Callers must call RecordDelete before
// applying the deletion to the buffer, per the locked ordering in the
// design notes: the caller copies the text to be deleted, records it,
// then deletes it.
func (m *Manager) RecordDelete(pos int, text []byte) {
	m.BeginGroup()
	owned := make([]byte, len(text))
	copy(owned, text)
	m.current.entries = append(m.current.entries, entry{kind: kindDelete, pos: pos, text: owned})
}

// Undo pops one group from the undo stack and applies the inverse of each
// of its entries, in reverse order, to buf. The inverse entries recorded
// along the way form a fresh group pushed onto the redo stack. Returns
// false if the undo stack was empty.
func (m *Manager) Undo(buf *gapbuffer.Buffer) bool {
	return m.transfer(buf, &m.undoStack, &m.redoStack)
}

// Redo is the mirror image of Undo: it pops from the redo stack and
// pushes the constructed inverse group back onto the undo stack.
func (m *Manager) Redo(buf *gapbuffer.Buffer) bool {
	return m.transfer(buf, &m.redoStack, &m.undoStack)
}

// transfer implements the shared Undo/Redo algorithm: pop a group from
// from, apply inverses in reverse order, push the constructed inverse
// group onto to.
func (m *Manager) transfer(buf *gapbuffer.Buffer, from, to *stack[*Group]) bool {
	g, ok := from.pop()
	if !ok {
		return false
	}
	inverse := &Group{entries: make([]entry, 0, len(g.entries))}
	for i := len(g.entries) - 1; i >= 0; i-- {
		inverse.entries = append(inverse.entries, applyInverse(buf, g.entries[i]))
	}
	to.push(inverse)
	return true
}

// applyInverse applies the inverse of e to buf and returns the entry that
// records that inverse action (so it can be replayed again later by a
// subsequent undo/redo).
func applyInverse(buf *gapbuffer.Buffer, e entry) entry {
	switch e.kind {
	case kindInsert:
		// Inverse of "len bytes were inserted at pos" is: capture those
		// bytes, then delete them.
		text := buf.Slice(e.pos, e.len)
		buf.Delete(e.pos, e.len)
		return entry{kind: kindDelete, pos: e.pos, text: text}
	default: // kindDelete
		// Inverse of "text was deleted starting at pos" is: re-insert it.
		buf.Insert(e.pos, e.text)
		return entry{kind: kindInsert, pos: e.pos, len: len(e.text)}
	}
}

// CanUndo reports whether Undo would pop a group.
func (m *Manager) CanUndo() bool { return m.undoStack.len() > 0 }

// CanRedo reports whether Redo would pop a group.
func (m *Manager) CanRedo() bool { return m.redoStack.len() > 0 }
