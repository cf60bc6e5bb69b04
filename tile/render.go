// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tile

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bureau-foundation/tilemux/lib/tui"
)

// Chrome is the styled border furniture of a tile: everything except
// the content rows. It changes only when geometry, selection state,
// or the theme change, so the compositor caches it between frames
// while content rows rebuild on every dirty frame.
type Chrome struct {
	Top     string
	Title   string
	Divider string
	Bottom  string
}

// RenderChrome builds the tile's border rows and title bar. The title
// shows the full command line, truncated with an ellipsis when the
// tile is too narrow for it.
func (tile *Tile) RenderChrome(theme tui.Theme, selected bool) Chrome {
	border := lipgloss.NewStyle().Foreground(theme.BorderForeground(selected))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.TitleForeground)

	maxTitle := tile.innerWidth - len("Command: ")
	title := ""
	if maxTitle > 0 {
		title = runewidth.Truncate(tile.title, maxTitle, "...")
	}
	label := " Command: " + title
	pad := tile.width - 2 - runewidth.StringWidth(label)
	if pad < 0 {
		pad = 0
	}
	side := border.Render("│")

	return Chrome{
		Top:     border.Render(tui.BoxTop(tile.width)),
		Title:   side + titleStyle.Render(label) + strings.Repeat(" ", pad) + side,
		Divider: border.Render(tui.BoxDivider(tile.width)),
		Bottom:  border.Render(tui.BoxBottom(tile.width)),
	}
}

// RenderContent produces the tile's visible content rows with their
// side borders. When the content overflows the viewport, a scrollbar
// column overdraws the right border.
func (tile *Tile) RenderContent(theme tui.Theme, selected bool) []string {
	border := lipgloss.NewStyle().Foreground(theme.BorderForeground(selected))
	side := border.Render("│")

	rows := tile.visibleRows()
	var bar []string
	if tile.MaxScroll() > 0 {
		bar = tui.RenderScrollbar(theme, rows, tile.buffer.count(), rows, tile.scroll, selected)
	}

	selStart, selEnd, hasSelection := tile.selectionRange()

	lines := make([]string, rows)
	for row := 0; row < rows; row++ {
		content := tile.renderLine(tile.scroll+row, selStart, selEnd, hasSelection)
		right := side
		if bar != nil {
			right = bar[row]
		}
		lines[row] = side + " " + content + " " + right
	}
	return lines
}

// RenderBlock assembles the complete tile, chrome plus content. The
// compositor composes the two separately to reuse cached chrome; this
// is for one-shot renders.
func (tile *Tile) RenderBlock(theme tui.Theme, selected bool) []string {
	chrome := tile.RenderChrome(theme, selected)
	block := make([]string, 0, tile.height)
	block = append(block, chrome.Top, chrome.Title, chrome.Divider)
	block = append(block, tile.RenderContent(theme, selected)...)
	return append(block, chrome.Bottom)
}

// renderLine resolves one logical line to its styled on-screen form,
// padded to the content width. Escape prefixes re-emit verbatim, with
// the selection's reverse-video state re-asserted after each in case
// the prefix carried a full reset. Rows end with a reset so child
// process colors never leak into the border or a neighboring tile.
func (tile *Tile) renderLine(lineIndex int, selStart, selEnd position, hasSelection bool) string {
	if lineIndex >= tile.buffer.count() {
		return strings.Repeat(" ", tile.innerWidth)
	}
	resolved := resolveLine(tile.buffer.line(lineIndex))

	var builder strings.Builder
	columns := 0
	inverted := false
	for _, cell := range resolved.cells {
		if cell.prefix != "" {
			builder.WriteString(cell.prefix)
			if inverted {
				builder.WriteString("\x1b[7m")
			}
		}
		selectedCell := hasSelection && cell.source >= 0 &&
			inSelection(position{line: lineIndex, index: cell.source}, selStart, selEnd)
		if selectedCell != inverted {
			if selectedCell {
				builder.WriteString("\x1b[7m")
			} else {
				builder.WriteString("\x1b[27m")
			}
			inverted = selectedCell
		}
		builder.WriteString(cell.content)
		columns += cell.width
	}
	if inverted {
		builder.WriteString("\x1b[27m")
	}
	builder.WriteString(resolved.trailing)
	builder.WriteString("\x1b[0m")
	if columns < tile.innerWidth {
		builder.WriteString(strings.Repeat(" ", tile.innerWidth-columns))
	}
	return builder.String()
}
