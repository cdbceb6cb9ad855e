// Copyright (c) 2025, ZEMACS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command zemacs is a small command-line front end over the editor core
// (gapbuffer, undo, syntax). It owns no wire protocol of its own: it
// exists to give the in-process API a runnable front door, standing in
// for the RPC tool dispatcher that is out of scope for this module.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zemacs",
	Short: "zemacs drives the editor core from the command line",
	Long: `zemacs is a debugging and demonstration harness over the editor
core: a gap buffer, its markers, an undo/redo history, and a syntax-class
driven s-expression scanner. It is not an editor in its own right.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
