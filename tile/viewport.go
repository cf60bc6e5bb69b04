// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tile

// The viewport shows visibleRows() consecutive logical lines starting
// at scroll. Autoscroll ("sticky") pins scroll to MaxScroll so new
// output stays in view; any upward movement disengages it, and it
// re-engages only by scrolling back to the exact bottom.

// visibleRows is the number of content rows the tile displays.
func (tile *Tile) visibleRows() int {
	return tile.innerHeight + 1
}

// MaxScroll returns the largest valid scroll offset: zero when the
// content fits the viewport.
func (tile *Tile) MaxScroll() int {
	max := tile.buffer.count() - tile.visibleRows()
	if max < 0 {
		return 0
	}
	return max
}

// Scroll returns the current scroll offset, always within
// [0, MaxScroll].
func (tile *Tile) Scroll() int {
	return tile.scroll
}

// Sticky reports whether autoscroll is engaged.
func (tile *Tile) Sticky() bool {
	return tile.sticky
}

// ScrollUp moves the viewport toward older output by count lines and
// disengages autoscroll.
func (tile *Tile) ScrollUp(count int) {
	tile.sticky = false
	tile.scroll -= count
	if tile.scroll < 0 {
		tile.scroll = 0
	}
}

// ScrollDown moves the viewport toward newer output by count lines.
// Landing on the exact bottom re-engages autoscroll.
func (tile *Tile) ScrollDown(count int) {
	tile.scroll += count
	max := tile.MaxScroll()
	if tile.scroll >= max {
		tile.scroll = max
		tile.sticky = true
	}
}

// ScrollToTop jumps to the oldest output and disengages autoscroll.
func (tile *Tile) ScrollToTop() {
	tile.sticky = false
	tile.scroll = 0
}

// ScrollToBottom jumps to the newest output and engages autoscroll.
func (tile *Tile) ScrollToBottom() {
	tile.scroll = tile.MaxScroll()
	tile.sticky = true
}

// clampScroll restores the scroll invariant after the buffer or the
// geometry changed.
func (tile *Tile) clampScroll() {
	max := tile.MaxScroll()
	if tile.sticky || tile.scroll > max {
		tile.scroll = max
	}
}
