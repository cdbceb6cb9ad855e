// Copyright (c) 2025, ZEMACS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package editorcfg loads and saves the ambient configuration a host
// process wraps around the editor core: a SyntaxTable preset (so an
// operator can describe a different bracket/string dialect in a config
// file instead of code) and undo-manager tuning knobs. It deliberately
// never serializes a Buffer or an undo.Manager's history: that remains
// entirely in-memory, per the core's persistence non-goal.
package editorcfg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/copyleftdev/zemacs/syntax"
)

// PairPreset is one balanced-pair entry in a serialized Preset.
type PairPreset struct {
	Open  string `toml:"open" yaml:"open"`
	Close string `toml:"close" yaml:"close"`
}

// ClassPreset assigns a syntax class name to an explicit list of bytes,
// given as single-character strings for config-file readability.
type ClassPreset struct {
	Class string   `toml:"class" yaml:"class"`
	Bytes []string `toml:"bytes" yaml:"bytes"`
}

// Preset is a serializable projection of a syntax.Table.
type Preset struct {
	Name    string        `toml:"name" yaml:"name"`
	Classes []ClassPreset `toml:"classes" yaml:"classes"`
	Pairs   []PairPreset  `toml:"pairs" yaml:"pairs"`
}

// UndoTuning carries the undo.Manager knobs a deployment might want to
// set from a config file rather than a rebuild.
type UndoTuning struct {
	MaxUndoSteps int `toml:"max_undo_steps" yaml:"max_undo_steps"`
}

var classNames = map[string]syntax.Class{
	"whitespace":    syntax.Whitespace,
	"word":          syntax.Word,
	"symbol":        syntax.Symbol,
	"open_paren":    syntax.OpenParen,
	"close_paren":   syntax.CloseParen,
	"string_quote":  syntax.StringQuote,
	"escape":        syntax.Escape,
	"comment_start": syntax.CommentStart,
	"comment_end":   syntax.CommentEnd,
	"punctuation":   syntax.Punctuation,
}

// Table builds a syntax.Table from the preset, starting from the standard
// table so a preset only needs to describe its deltas.
func (p *Preset) Table() (*syntax.Table, error) {
	tbl := syntax.NewStandardTable()
	for _, cp := range p.Classes {
		class, ok := classNames[cp.Class]
		if !ok {
			return nil, fmt.Errorf("editorcfg: unknown syntax class %q in preset %q", cp.Class, p.Name)
		}
		for _, bs := range cp.Bytes {
			b, err := presetByte(bs)
			if err != nil {
				return nil, err
			}
			tbl.SetClass(b, class)
		}
	}
	for _, pr := range p.Pairs {
		open, err := presetByte(pr.Open)
		if err != nil {
			return nil, err
		}
		closeB, err := presetByte(pr.Close)
		if err != nil {
			return nil, err
		}
		tbl.SetPair(open, closeB)
	}
	return tbl, nil
}

// presetByte decodes a single config-file byte, accepting either a
// literal one-character string or a "0xNN" hex escape for bytes that
// can't round-trip cleanly through TOML/YAML strings.
func presetByte(s string) (byte, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	if len(s) == 4 && s[:2] == "0x" {
		v, err := strconv.ParseUint(s[2:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("editorcfg: invalid byte literal %q: %w", s, err)
		}
		return byte(v), nil
	}
	return 0, fmt.Errorf("editorcfg: byte literal must be one character or 0xNN, got %q", s)
}

// OpenPreset reads a Preset from filename, dispatching on its extension
// (.toml or .yaml/.yml).
func OpenPreset(filename string) (*Preset, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodePreset(f, filepath.Ext(filename))
}

func decodePreset(r io.Reader, ext string) (*Preset, error) {
	var p Preset
	switch ext {
	case ".toml":
		if err := toml.NewDecoder(r).Decode(&p); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(r).Decode(&p); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("editorcfg: unsupported preset extension %q", ext)
	}
	return &p, nil
}

// SavePreset writes p to filename using the encoding implied by its
// extension.
func SavePreset(p *Preset, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	switch filepath.Ext(filename) {
	case ".toml":
		enc := toml.NewEncoder(f)
		return enc.Encode(p)
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(f)
		defer enc.Close()
		return enc.Encode(p)
	default:
		return fmt.Errorf("editorcfg: unsupported preset extension %q", filepath.Ext(filename))
	}
}
