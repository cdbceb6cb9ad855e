// Copyright (c) 2025, ZEMACS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/copyleftdev/zemacs/gapbuffer"
	"github.com/copyleftdev/zemacs/undo"
)

// undoDemoCmd runs scenario C from the editor core spec as a scripted,
// runnable sequence: two tracked inserts, an undo, a redo, a tracked
// delete, then an undo of that delete.
var undoDemoCmd = &cobra.Command{
	Use:   "undo-demo",
	Short: "Run a scripted insert/undo/redo/delete sequence and print each step",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		buf := gapbuffer.New(0)
		mgr := undo.NewManager(0)

		step := func(label string) {
			fmt.Fprintf(out, "%-24s %q\n", label, buf.Bytes())
		}

		mgr.BeginGroup()
		buf.InsertString(0, "Hello")
		mgr.RecordInsert(0, len("Hello"))
		mgr.EndGroup()
		step("insert \"Hello\"")

		mgr.BeginGroup()
		buf.InsertString(5, " World")
		mgr.RecordInsert(5, len(" World"))
		mgr.EndGroup()
		step("insert \" World\"")

		mgr.Undo(buf)
		step("undo")

		mgr.Redo(buf)
		step("redo")

		mgr.BeginGroup()
		removed := buf.Slice(0, 5)
		mgr.RecordDelete(0, removed)
		buf.Delete(0, 5)
		mgr.EndGroup()
		step("delete \"Hello\"")

		mgr.Undo(buf)
		step("undo delete")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(undoDemoCmd)
}
