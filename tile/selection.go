// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tile

import "strings"

// position addresses a raw rune within the buffer: a logical line
// index and a rune index within that line. index may equal the line's
// length, meaning "just past the last rune", which is how a selection
// extends over a line's trailing newline.
type position struct {
	line  int
	index int
}

func (p position) less(q position) bool {
	if p.line != q.line {
		return p.line < q.line
	}
	return p.index < q.index
}

// selection is the drag range between the click anchor and the
// current drag cursor. The endpoints are unordered; users drag
// backwards as often as forwards. Normalization happens at use.
type selection struct {
	active bool
	anchor position
	cursor position
}

// locate maps a screen position to the raw rune under it. The visual
// column resolves through the same cell model rendering uses, so a
// click lands on whatever character the overwrites left visible
// there. Positions outside the content area clamp to its edges, and
// columns past the end of a line map to the position after its last
// rune.
func (tile *Tile) locate(screenX, screenY int) position {
	column := screenX - tile.innerX
	if column < 0 {
		column = 0
	}
	row := screenY - tile.innerY
	if row < 0 {
		row = 0
	}
	line := row + tile.scroll
	if last := tile.buffer.count() - 1; line > last {
		line = last
	}
	raw := tile.buffer.line(line)
	resolved := resolveLine(raw)
	return position{line: line, index: resolved.sourceAt(column, len(raw))}
}

// Click anchors a new selection at the rune under the screen
// position, collapsing any previous selection to a point.
func (tile *Tile) Click(screenX, screenY int) {
	p := tile.locate(screenX, screenY)
	tile.selection = selection{active: true, anchor: p, cursor: p}
}

// Hold drags the selection cursor to the rune under the screen
// position. Without a prior Click it does nothing.
func (tile *Tile) Hold(screenX, screenY int) {
	if !tile.selection.active {
		return
	}
	tile.selection.cursor = tile.locate(screenX, screenY)
}

// Copy extracts the selected text as the screen shows it: escape
// sequences drop out, a carriage return discards the output line
// accumulated so far, and stored newlines become newlines in the
// result. A collapsed or inactive selection yields the empty string.
func (tile *Tile) Copy() string {
	start, end, ok := tile.selectionRange()
	if !ok {
		return ""
	}

	var lines []string
	var current strings.Builder
	state := scanNormal
	for lineIndex := start.line; lineIndex <= end.line; lineIndex++ {
		raw := tile.buffer.line(lineIndex)
		if raw == nil {
			break
		}
		from := 0
		if lineIndex == start.line {
			from = min(start.index, len(raw))
		}
		to := len(raw)
		if lineIndex == end.line {
			to = min(end.index, len(raw))
		}
		for _, r := range raw[from:to] {
			visible := state.step(r)
			switch {
			case r == '\n':
				lines = append(lines, current.String())
				current.Reset()
			case r == '\r':
				current.Reset()
			case visible:
				current.WriteRune(r)
			}
		}
	}
	lines = append(lines, current.String())
	return strings.Join(lines, "\n")
}

// selectionRange returns the normalized half-open selection span, or
// ok false when there is no selection or it is collapsed.
func (tile *Tile) selectionRange() (start, end position, ok bool) {
	if !tile.selection.active {
		return position{}, position{}, false
	}
	start, end = tile.selection.anchor, tile.selection.cursor
	if end.less(start) {
		start, end = end, start
	}
	if start == end {
		return position{}, position{}, false
	}
	return start, end, true
}

func inSelection(p, start, end position) bool {
	return !p.less(start) && p.less(end)
}
