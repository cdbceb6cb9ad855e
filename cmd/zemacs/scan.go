// Copyright (c) 2025, ZEMACS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/copyleftdev/zemacs/gapbuffer"
	"github.com/copyleftdev/zemacs/syntax"
)

var scanCount int

var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Scan a file for balanced s-expressions and print their offsets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		buf := gapbuffer.NewFromBytes(content)
		tbl := syntax.NewStandardTable()

		pos := 0
		for i := 0; i < scanCount; i++ {
			start := pos
			next, err := syntax.ScanSexp(buf, tbl, pos)
			if err != nil {
				return fmt.Errorf("scan %d: %w", i, err)
			}
			sl, sc := syntax.LineColumn(buf, start)
			el, ec := syntax.LineColumn(buf, next)
			fmt.Fprintf(cmd.OutOrStdout(), "sexp %d: [%d, %d) (%d:%d)-(%d:%d)\n", i, start, next, sl, sc, el, ec)
			pos = next
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().IntVar(&scanCount, "count", 1, "number of s-expressions to scan")
	rootCmd.AddCommand(scanCmd)
}
