// Copyright (c) 2025, ZEMACS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/copyleftdev/zemacs/gapbuffer"
	"github.com/copyleftdev/zemacs/undo"
)

var (
	insertAt   int
	insertText string
	deleteAt   int
	deleteLen  int
)

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Apply one tracked edit to a file and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		buf := gapbuffer.NewFromBytes(content)
		mgr := undo.NewManager(0)

		mgr.BeginGroup()
		switch {
		case cmd.Flags().Changed("insert-at"):
			buf.InsertString(insertAt, insertText)
			mgr.RecordInsert(insertAt, len(insertText))
		case cmd.Flags().Changed("delete-at"):
			removed := buf.Slice(deleteAt, deleteLen)
			mgr.RecordDelete(deleteAt, removed)
			buf.Delete(deleteAt, deleteLen)
		default:
			mgr.EndGroup()
			return fmt.Errorf("edit: one of --insert-at or --delete-at is required")
		}
		mgr.EndGroup()

		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	},
}

func init() {
	editCmd.Flags().IntVar(&insertAt, "insert-at", 0, "logical position to insert at")
	editCmd.Flags().StringVar(&insertText, "text", "", "text to insert")
	editCmd.Flags().IntVar(&deleteAt, "delete-at", 0, "logical position to delete from")
	editCmd.Flags().IntVar(&deleteLen, "len", 0, "number of bytes to delete")
	rootCmd.AddCommand(editCmd)
}
