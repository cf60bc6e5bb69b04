// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package multiview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/tilemux/event"
	"github.com/bureau-foundation/tilemux/grid"
	"github.com/bureau-foundation/tilemux/lib/tui"
	"github.com/bureau-foundation/tilemux/tile"
)

// renderCache holds the composed frame between repaints, layered
// behind the two dirty flags. Chrome (borders, title bars) changes
// only on layout or selection changes; content changes on every
// process message. A View call with both flags clear returns the
// previous frame unchanged.
//
// The cache is a pointer field on Model because bubbletea calls View
// on a model value: the flags and the cached strings must survive
// that copy.
type renderCache struct {
	uiDirty    bool
	tilesDirty bool
	chrome     map[event.Coords]tile.Chrome
	frame      string
}

func newRenderCache() *renderCache {
	return &renderCache{
		uiDirty:    true,
		tilesDirty: true,
		chrome:     make(map[event.Coords]tile.Chrome),
	}
}

// markUI flags the chrome layer stale. Layout and selection changes
// move content too, so this implies markTiles.
func (cache *renderCache) markUI() {
	cache.uiDirty = true
	cache.tilesDirty = true
}

// markTiles flags tile content stale while leaving cached chrome
// valid.
func (cache *renderCache) markTiles() {
	cache.tilesDirty = true
}

// View implements tea.Model. It recomposes only the stale layers and
// leaves frame pacing to the bubbletea renderer.
func (model Model) View() string {
	if !model.ready {
		return ""
	}
	if !model.fits {
		return model.sizeHint()
	}

	frame := model.cache.compose(model.grid, model.theme, model.selected, model.width, model.height)
	if model.showHelp {
		frame = tui.CenterOverlay(frame, model.helpOverlay(), model.width, model.height)
	}
	return frame
}

// compose rebuilds the frame if any layer is dirty. Tiles are painted
// onto a blank canvas at their absolute geometry, which handles both
// orientations and the unpainted remainder cells of ragged layouts
// with the same code path.
func (cache *renderCache) compose(tiles *grid.Grid, theme tui.Theme, selected event.Coords, width, height int) string {
	if !cache.uiDirty && !cache.tilesDirty {
		return cache.frame
	}

	if cache.uiDirty {
		clear(cache.chrome)
	}

	blank := strings.Repeat(" ", width)
	rows := make([]string, height)
	for index := range rows {
		rows[index] = blank
	}
	frame := strings.Join(rows, "\n")

	tiles.Each(func(t *tile.Tile) {
		isSelected := t.Coords() == selected
		chrome, cached := cache.chrome[t.Coords()]
		if !cached {
			chrome = t.RenderChrome(theme, isSelected)
			cache.chrome[t.Coords()] = chrome
		}
		content := t.RenderContent(theme, isSelected)
		block := make([]string, 0, len(content)+4)
		block = append(block, chrome.Top, chrome.Title, chrome.Divider)
		block = append(block, content...)
		block = append(block, chrome.Bottom)
		x, y := t.Position()
		frame = tui.SpliceOverlay(frame, block, x, y)
	})

	cache.uiDirty = false
	cache.tilesDirty = false
	cache.frame = frame
	return frame
}

// sizeHint is shown instead of the grid while the terminal is too
// small for the layout.
func (model Model) sizeHint() string {
	needWidth, needHeight := model.grid.MinTerminalSize()
	hint := fmt.Sprintf("Terminal too small for %d tiles: need %dx%d, have %dx%d.",
		model.grid.Count(), needWidth, needHeight, model.width, model.height)
	style := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	return lipgloss.Place(model.width, model.height, lipgloss.Center, lipgloss.Center, style.Render(hint))
}
