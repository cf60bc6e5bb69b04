// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tile

// lineBuffer accumulates a tile's combined output as a sequence of
// logical lines. A logical line ends either at a newline in the
// stream or when visible content overflows the tile's inner width, in
// which case the overflowing rune starts a new line.
//
// Lines store raw runes verbatim, including carriage returns and
// escape sequences. Carriage-return overwrites and erase-in-line are
// resolved at render time (see resolveLine), not at ingest, so the
// buffer never loses information and can re-flow losslessly when the
// tile is resized.
//
// The write cursor (column) counts display cells, not runes: wide
// East Asian runes advance it by two, escape sequences and combining
// marks by zero. It resets on carriage return without erasing
// anything, mirroring terminal behavior.
type lineBuffer struct {
	lines  [][]rune
	column int
	scan   scanState
	width  int
}

// newLineBuffer returns an empty buffer that wraps at the given
// display width. The buffer always holds at least one (possibly
// empty) line.
func newLineBuffer(width int) *lineBuffer {
	return &lineBuffer{lines: [][]rune{nil}, width: width}
}

// push appends a chunk of output, splitting it into logical lines.
// Scanner state carries over from the previous push: a chunk may end
// in the middle of an escape sequence or a UTF-8-complete but
// semantically unfinished line, and the next chunk continues it.
func (buffer *lineBuffer) push(text string) {
	for _, r := range text {
		visible := buffer.scan.step(r)
		switch r {
		case '\n':
			buffer.appendRune(r)
			buffer.lines = append(buffer.lines, nil)
			buffer.column = 0
		case '\r':
			buffer.appendRune(r)
			buffer.column = 0
		default:
			cellWidth := 0
			if visible {
				cellWidth = runeCellWidth(r)
			}
			if cellWidth > 0 && buffer.width > 0 && buffer.column+cellWidth > buffer.width {
				buffer.lines = append(buffer.lines, nil)
				buffer.column = 0
			}
			buffer.appendRune(r)
			buffer.column += cellWidth
		}
	}
}

// reflow re-wraps the entire buffer at a new width by replaying the
// stored lines through push. Lines broken by overflow carry no
// newline rune, so replaying them joins and re-splits the content at
// the new boundary; lines broken by a real newline keep it.
func (buffer *lineBuffer) reflow(width int) {
	stored := buffer.lines
	buffer.lines = [][]rune{nil}
	buffer.column = 0
	buffer.scan = scanNormal
	buffer.width = width
	for _, line := range stored {
		buffer.push(string(line))
	}
}

// count returns the number of logical lines. Never zero.
func (buffer *lineBuffer) count() int {
	return len(buffer.lines)
}

// line returns the raw runes of the logical line at index, or nil
// when the index is out of range.
func (buffer *lineBuffer) line(index int) []rune {
	if index < 0 || index >= len(buffer.lines) {
		return nil
	}
	return buffer.lines[index]
}

func (buffer *lineBuffer) appendRune(r rune) {
	last := len(buffer.lines) - 1
	buffer.lines[last] = append(buffer.lines[last], r)
}
