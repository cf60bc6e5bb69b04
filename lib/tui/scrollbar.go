// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar produces a single-column scrollbar for a tile's
// content area: an up arrow on the first row, a down arrow on the
// last, and a proportional thumb on the track between them. The
// result has one single-cell string per content row, ready to
// overdraw the rightmost column of the tile.
//
// The thumb indicates the visible region within the total content and
// uses the selected border color when the tile is selected, so the
// scrollbar reads as part of the border it replaces.
func RenderScrollbar(theme Theme, rows, totalLines, visibleLines, scrollOffset int, selected bool) []string {
	if rows <= 0 {
		return nil
	}

	style := lipgloss.NewStyle().Foreground(theme.BorderForeground(selected))

	cells := make([]string, rows)

	// Too short for arrows: render bare track.
	if rows < 3 {
		for index := range cells {
			cells[index] = style.Render("│")
		}
		return cells
	}

	cells[0] = style.Render("▲")
	cells[rows-1] = style.Render("▼")
	trackHeight := rows - 2

	// Content fits — thumb spans the full track.
	if totalLines <= visibleLines || totalLines <= 0 {
		for index := 1; index < rows-1; index++ {
			cells[index] = style.Render("█")
		}
		return cells
	}

	// Thumb size: proportional to visible/total, minimum 1 row.
	thumbSize := trackHeight * visibleLines / totalLines
	if thumbSize < 1 {
		thumbSize = 1
	}

	// Thumb position: proportional to scroll offset within scrollable range.
	scrollableRange := totalLines - visibleLines
	trackRange := trackHeight - thumbSize
	thumbOffset := 0
	if scrollableRange > 0 && trackRange > 0 {
		thumbOffset = scrollOffset * trackRange / scrollableRange
	}
	if thumbOffset+thumbSize > trackHeight {
		thumbOffset = trackHeight - thumbSize
	}

	for index := 0; index < trackHeight; index++ {
		if index >= thumbOffset && index < thumbOffset+thumbSize {
			cells[index+1] = style.Render("█")
		} else {
			cells[index+1] = style.Render("│")
		}
	}

	return cells
}
