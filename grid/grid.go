// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package grid

import (
	"log/slog"

	"github.com/bureau-foundation/tilemux/event"
	"github.com/bureau-foundation/tilemux/tile"
)

// Minimum outer tile dimensions that still render a usable frame: the
// title bar needs its label and the content area at least one cell.
const (
	MinTileWidth  = 12
	MinTileHeight = 6
)

// Grid owns the dashboard's tiles, addressed by event.Coords. All
// access to a tile goes through the grid; nothing else indexes the
// underlying groups.
//
// Internally tiles live in primary-axis groups matching the parsed
// Layout. Coords are always (row, column) regardless of orientation;
// the grid translates.
type Grid struct {
	orientation Orientation
	groups      [][]*tile.Tile
}

// New builds the tiles for a parsed layout. Tiles have no geometry
// until SetSize and no processes until StartAll.
func New(layout Layout, term string, channel chan<- event.Message, logger *slog.Logger) *Grid {
	grid := &Grid{orientation: layout.Orientation}
	for groupIndex, group := range layout.Groups {
		tiles := make([]*tile.Tile, 0, len(group))
		for cellIndex, command := range group {
			coords := grid.coords(groupIndex, cellIndex)
			tiles = append(tiles, tile.New(command, coords, term, channel, logger))
		}
		grid.groups = append(grid.groups, tiles)
	}
	return grid
}

// coords maps a (group, cell) pair to grid coordinates: groups are
// rows when row-major, columns when column-major.
func (grid *Grid) coords(group, cell int) event.Coords {
	if grid.orientation == ColumnMajor {
		return event.Coords{Row: cell, Col: group}
	}
	return event.Coords{Row: group, Col: cell}
}

// Tile returns the tile at the given coordinates, or nil when they
// point outside the grid.
func (grid *Grid) Tile(coords event.Coords) *tile.Tile {
	group, cell := coords.Row, coords.Col
	if grid.orientation == ColumnMajor {
		group, cell = coords.Col, coords.Row
	}
	if group < 0 || group >= len(grid.groups) {
		return nil
	}
	if cell < 0 || cell >= len(grid.groups[group]) {
		return nil
	}
	return grid.groups[group][cell]
}

// TileAt returns the tile whose outer rectangle contains the screen
// position, or nil when the position falls in a dead zone (layout
// remainder cells or before the first SetSize).
func (grid *Grid) TileAt(x, y int) *tile.Tile {
	for _, group := range grid.groups {
		for _, t := range group {
			if t.Contains(x, y) {
				return t
			}
		}
	}
	return nil
}

// Each calls visit for every tile in layout order.
func (grid *Grid) Each(visit func(*tile.Tile)) {
	for _, group := range grid.groups {
		for _, t := range group {
			visit(t)
		}
	}
}

// Count returns the number of tiles.
func (grid *Grid) Count() int {
	total := 0
	for _, group := range grid.groups {
		total += len(group)
	}
	return total
}

// First returns the coordinates of the tile in the top-left corner,
// the initial selection.
func (grid *Grid) First() event.Coords {
	return grid.coords(0, 0)
}

// SetSize recomputes every tile's geometry for a terminal of the
// given dimensions. Each group divides the primary axis evenly;
// within a group, each tile divides the group's span evenly, so
// groups of different lengths produce different cell sizes.
// Remainders from the integer division stay unpainted at the right
// and bottom edges.
//
// The return value reports whether every tile meets the minimum
// usable dimensions; when false the geometry is still applied (and
// propagated to the processes) but the caller should render a size
// warning instead of the tiles.
func (grid *Grid) SetSize(width, height int) bool {
	if len(grid.groups) == 0 {
		return false
	}
	fits := true
	if grid.orientation == ColumnMajor {
		tileWidth := width / len(grid.groups)
		for groupIndex, group := range grid.groups {
			tileHeight := height / len(group)
			for cellIndex, t := range group {
				t.SetGeometry(groupIndex*tileWidth, cellIndex*tileHeight, tileWidth, tileHeight)
				fits = fits && tileWidth >= MinTileWidth && tileHeight >= MinTileHeight
			}
		}
		return fits
	}
	tileHeight := height / len(grid.groups)
	for groupIndex, group := range grid.groups {
		tileWidth := width / len(group)
		for cellIndex, t := range group {
			t.SetGeometry(cellIndex*tileWidth, groupIndex*tileHeight, tileWidth, tileHeight)
			fits = fits && tileWidth >= MinTileWidth && tileHeight >= MinTileHeight
		}
	}
	return fits
}

// MinTerminalSize returns the smallest terminal that fits this
// layout at the minimum tile dimensions.
func (grid *Grid) MinTerminalSize() (width, height int) {
	longest := 0
	for _, group := range grid.groups {
		if len(group) > longest {
			longest = len(group)
		}
	}
	if grid.orientation == ColumnMajor {
		return len(grid.groups) * MinTileWidth, longest * MinTileHeight
	}
	return longest * MinTileWidth, len(grid.groups) * MinTileHeight
}

// StartAll launches every tile's command.
func (grid *Grid) StartAll() {
	grid.Each(func(t *tile.Tile) { t.Start() })
}

// KillAll terminates every tile's process.
func (grid *Grid) KillAll() {
	grid.Each(func(t *tile.Tile) { t.Kill() })
}
