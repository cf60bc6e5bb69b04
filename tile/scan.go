// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tile

import "github.com/mattn/go-runewidth"

// scanState tracks whether a rune stream is currently inside an ANSI
// escape sequence. Width accounting is suspended from the ESC byte
// until the sequence terminator: 'm' for SGR color/attribute
// sequences, 'K' for erase-in-line. Those two cover everything the
// supported command set emits; an unterminated sequence simply keeps
// the scanner in escape state, which also means the state must
// persist across chunk boundaries rather than reset per push.
type scanState int

const (
	scanNormal scanState = iota
	scanEscape
)

// step advances the state machine by one rune and reports whether the
// rune is visible content. ESC itself, and every rune up to and
// including the terminator, are invisible.
func (state *scanState) step(r rune) bool {
	switch *state {
	case scanEscape:
		if r == 'm' || r == 'K' {
			*state = scanNormal
		}
		return false
	default:
		if r == 0x1b {
			*state = scanEscape
			return false
		}
		return true
	}
}

// runeCellWidth returns the number of terminal columns a rune
// occupies. Variation selectors are forced to zero width: terminals
// disagree on whether an emoji presentation selector widens its base
// character, and counting them breaks column arithmetic for tools
// that emit them (notably anything printing emoji spinners).
func runeCellWidth(r rune) int {
	if r >= 0xFE00 && r <= 0xFE0F {
		return 0
	}
	return runewidth.RuneWidth(r)
}
