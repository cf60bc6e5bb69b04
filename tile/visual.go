// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tile

import "strings"

// visualCell is one terminal column of a resolved logical line. A
// wide rune occupies two cells: a head holding the rune and a
// continuation with empty content and zero width. Combining marks and
// variation selectors ride along in the head cell's content.
//
// source is the index into the logical line's raw runes of the rune
// that last wrote this cell. Selection endpoints are raw indices, so
// source is what maps a screen click back onto the stored text.
type visualCell struct {
	prefix  string // escape sequences re-emitted before this cell
	content string // head rune plus any combining marks; empty for continuations
	width   int
	source  int
}

// visualLine is the on-screen form of one logical line after carriage
// return overwrites and erase-in-line have been applied. trailing
// holds escape sequences stored after the last visible rune; they are
// re-emitted at the end of the row so a reverse-video toggle or color
// change that closes the line survives rendering.
type visualLine struct {
	cells    []visualCell
	trailing string
}

// resolveLine replays a logical line's raw runes through a cursor
// model: visible runes write cells at the cursor and advance it by
// their display width, carriage return moves the cursor to column
// zero without erasing, and a plain erase-in-line sequence (ESC [ K)
// truncates the cells from the cursor forward. Escape sequences
// accumulate and attach as a prefix to the next written cell.
//
// Overwriting one half of a wide rune blanks the other half, the way
// a terminal discards a torn double-width glyph.
func resolveLine(raw []rune) visualLine {
	var line visualLine
	var pending strings.Builder
	var escape []rune
	cursor := 0
	inEscape := false

	for index, r := range raw {
		if inEscape {
			escape = append(escape, r)
			if r == 'm' || r == 'K' {
				inEscape = false
				sequence := string(escape)
				escape = escape[:0]
				if sequence == "\x1b[K" {
					line.truncateFrom(cursor)
				} else {
					pending.WriteString(sequence)
				}
			}
			continue
		}
		switch {
		case r == 0x1b:
			inEscape = true
			escape = append(escape[:0], r)
		case r == '\n':
			// Structural terminator: a logical line holds at most
			// one, as its final rune.
		case r == '\r':
			cursor = 0
		default:
			cellWidth := runeCellWidth(r)
			if cellWidth <= 0 {
				if !line.attachCombining(cursor, r) {
					pending.WriteRune(r)
				}
				continue
			}
			line.write(cursor, visualCell{
				prefix:  pending.String(),
				content: string(r),
				width:   cellWidth,
				source:  index,
			})
			pending.Reset()
			cursor += cellWidth
		}
	}

	line.trailing = pending.String() + string(escape)
	return line
}

// columns returns the number of terminal columns the resolved line
// occupies.
func (line *visualLine) columns() int {
	return len(line.cells)
}

// plainText returns the resolved content without escapes, one rune
// sequence per occupied column. Blanked cells contribute a space.
func (line *visualLine) plainText() string {
	var builder strings.Builder
	for _, cell := range line.cells {
		builder.WriteString(cell.content)
	}
	return builder.String()
}

// sourceAt maps a terminal column to the raw rune index that produced
// it. Columns past the end of the content map to end, the raw length,
// which as a selection endpoint means "after the last rune". Blanked
// filler cells inherit the nearest earlier real source.
func (line *visualLine) sourceAt(column, end int) int {
	if column >= len(line.cells) || column < 0 {
		return end
	}
	for index := column; index >= 0; index-- {
		if line.cells[index].source >= 0 {
			return line.cells[index].source
		}
	}
	return 0
}

// write places a cell at the given column, extending the line with
// blank filler if needed and blanking any wide rune the new cell
// tears in half.
func (line *visualLine) write(column int, cell visualCell) {
	needed := column + cell.width
	for len(line.cells) < needed {
		line.cells = append(line.cells, blankCell())
	}
	line.clearTorn(column, column+cell.width)
	line.cells[column] = cell
	if cell.width == 2 {
		line.cells[column+1] = visualCell{source: cell.source}
	}
}

// clearTorn blanks wide runes that partially overlap [from, to): a
// continuation just inside the span means its head (one column left
// of the span) must blank, and a continuation just past the span
// means its head inside the span is being replaced.
func (line *visualLine) clearTorn(from, to int) {
	if from > 0 && line.isContinuation(from) {
		line.cells[from-1] = blankCell()
	}
	if to < len(line.cells) && line.isContinuation(to) {
		line.cells[to] = blankCell()
	}
}

// truncateFrom drops all cells at and after the given column. A head
// whose continuation is cut off blanks rather than render half a
// glyph.
func (line *visualLine) truncateFrom(column int) {
	if column < 0 || column >= len(line.cells) {
		return
	}
	line.cells = line.cells[:column]
	if last := len(line.cells) - 1; last >= 0 && line.cells[last].width == 2 {
		line.cells[last] = blankCell()
	}
}

// attachCombining appends a zero-width rune to the head cell the
// cursor just passed. Reports false when there is no cell to attach
// to, which happens for a combining mark at the start of a line.
func (line *visualLine) attachCombining(column int, r rune) bool {
	index := column - 1
	if index >= len(line.cells) {
		index = len(line.cells) - 1
	}
	for index >= 0 && line.cells[index].width == 0 {
		index--
	}
	if index < 0 {
		return false
	}
	line.cells[index].content += string(r)
	return true
}

func (line *visualLine) isContinuation(column int) bool {
	cell := line.cells[column]
	return cell.width == 0 && cell.content == ""
}

func blankCell() visualCell {
	return visualCell{content: " ", width: 1, source: -1}
}
