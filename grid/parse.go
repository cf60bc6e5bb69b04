// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package grid arranges tiles in the terminal. It parses the argument
// list into groups of commands, owns the resulting tiles by
// coordinate, and computes each tile's geometry from the terminal
// size.
package grid

import (
	"errors"
	"fmt"
)

// Command is one tile's argv: the program and its arguments.
type Command []string

// Orientation says which axis the primary separator splits.
type Orientation int

const (
	// RowMajor: groups are rows, cells within a group sit side by
	// side. Chosen when "//" appears before "::" or no "::" appears.
	RowMajor Orientation = iota
	// ColumnMajor: groups are columns, cells within a group stack
	// vertically. Chosen when "::" appears first.
	ColumnMajor
)

// Layout is the parsed arrangement of commands before any tiles
// exist: the orientation plus the command groups along the primary
// axis. Groups may have different lengths; each divides its span of
// the terminal independently.
type Layout struct {
	Orientation Orientation
	Groups      [][]Command
}

// ParseArgs splits the raw argument list into a command layout. The
// separator "//" starts a new row and "::" starts a new column;
// whichever appears first becomes the primary axis for the whole
// session. "a :: b // c" reads as two columns with the second split
// into two stacked tiles, while "a // b :: c" reads as two rows with
// the second split into two side-by-side tiles.
func ParseArgs(args []string) (Layout, error) {
	if len(args) == 0 {
		return Layout{}, errors.New("no commands given")
	}

	orientation := RowMajor
	primary, secondary := "//", "::"
	for _, arg := range args {
		if arg == "//" {
			break
		}
		if arg == "::" {
			orientation = ColumnMajor
			primary, secondary = "::", "//"
			break
		}
	}

	var groups [][]Command
	for groupIndex, group := range splitTokens(args, primary) {
		var cells []Command
		for cellIndex, cell := range splitTokens(group, secondary) {
			if len(cell) == 0 {
				return Layout{}, fmt.Errorf("empty command at group %d, cell %d", groupIndex+1, cellIndex+1)
			}
			cells = append(cells, Command(cell))
		}
		groups = append(groups, cells)
	}
	return Layout{Orientation: orientation, Groups: groups}, nil
}

// splitTokens splits a token list on a separator token. Empty
// segments are kept so validation can point at them.
func splitTokens(tokens []string, separator string) [][]string {
	var result [][]string
	var current []string
	for _, token := range tokens {
		if token == separator {
			result = append(result, current)
			current = nil
			continue
		}
		current = append(current, token)
	}
	return append(result, current)
}
