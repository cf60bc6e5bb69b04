// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package grid

import (
	"io"
	"log/slog"
	"testing"

	"github.com/bureau-foundation/tilemux/event"
	"github.com/bureau-foundation/tilemux/tile"
)

// testGrid builds a grid without starting any processes.
func testGrid(t *testing.T, args ...string) *Grid {
	t.Helper()
	layout, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("ParseArgs(%v): %v", args, err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(layout, "", make(chan event.Message, 8), logger)
}

func TestCoordsRowMajor(t *testing.T) {
	t.Parallel()

	grid := testGrid(t, "a", "//", "b", "::", "c")
	wantTitles := map[event.Coords]string{
		{Row: 0, Col: 0}: "a",
		{Row: 1, Col: 0}: "b",
		{Row: 1, Col: 1}: "c",
	}
	for coords := range wantTitles {
		tile := grid.Tile(coords)
		if tile == nil {
			t.Errorf("Tile(%v) = nil", coords)
			continue
		}
		if tile.Coords() != coords {
			t.Errorf("Tile(%v).Coords() = %v", coords, tile.Coords())
		}
	}
	if grid.Count() != 3 {
		t.Errorf("Count() = %d, want 3", grid.Count())
	}
}

func TestCoordsColumnMajor(t *testing.T) {
	t.Parallel()

	// Two columns, the second stacking two tiles.
	grid := testGrid(t, "a", "::", "b", "//", "c")
	for _, coords := range []event.Coords{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
		{Row: 1, Col: 1},
	} {
		if grid.Tile(coords) == nil {
			t.Errorf("Tile(%v) = nil", coords)
		}
	}
	if grid.Tile(event.Coords{Row: 1, Col: 0}) != nil {
		t.Error("Tile(1:0) exists in a column-major grid with a single-tile first column")
	}
}

func TestTileOutOfRangeReturnsNil(t *testing.T) {
	t.Parallel()

	grid := testGrid(t, "a")
	for _, coords := range []event.Coords{
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
		{Row: 1, Col: 0},
		{Row: 0, Col: 1},
	} {
		if grid.Tile(coords) != nil {
			t.Errorf("Tile(%v) != nil", coords)
		}
	}
}

func TestFirstIsTopLeft(t *testing.T) {
	t.Parallel()

	rowMajor := testGrid(t, "a", "//", "b")
	columnMajor := testGrid(t, "a", "::", "b")
	want := event.Coords{Row: 0, Col: 0}
	if rowMajor.First() != want {
		t.Errorf("row-major First() = %v", rowMajor.First())
	}
	if columnMajor.First() != want {
		t.Errorf("column-major First() = %v", columnMajor.First())
	}
}

func TestSetSizeDividesRowsEvenly(t *testing.T) {
	t.Parallel()

	grid := testGrid(t, "a", "//", "b", "::", "c")
	if !grid.SetSize(100, 40) {
		t.Fatal("SetSize(100, 40) reported too small")
	}

	// First row: one tile spanning the full width, half the height.
	x, y := grid.Tile(event.Coords{Row: 0, Col: 0}).Position()
	if x != 0 || y != 0 {
		t.Errorf("tile 0:0 at (%d, %d), want (0, 0)", x, y)
	}

	// Second row: two tiles of half the width each.
	x, y = grid.Tile(event.Coords{Row: 1, Col: 1}).Position()
	if x != 50 || y != 20 {
		t.Errorf("tile 1:1 at (%d, %d), want (50, 20)", x, y)
	}
}

func TestSetSizeColumnMajorDividesColumns(t *testing.T) {
	t.Parallel()

	grid := testGrid(t, "a", "::", "b", "//", "c")
	if !grid.SetSize(100, 40) {
		t.Fatal("SetSize(100, 40) reported too small")
	}

	x, y := grid.Tile(event.Coords{Row: 1, Col: 1}).Position()
	if x != 50 || y != 20 {
		t.Errorf("tile 1:1 at (%d, %d), want (50, 20)", x, y)
	}

	// The single-tile first column spans the full height.
	if !grid.Tile(event.Coords{Row: 0, Col: 0}).Contains(10, 39) {
		t.Error("tile 0:0 does not span the full height of its column")
	}
}

func TestSetSizeReportsTooSmall(t *testing.T) {
	t.Parallel()

	grid := testGrid(t, "a", "::", "b")
	if grid.SetSize(2*MinTileWidth-1, MinTileHeight) {
		t.Error("SetSize accepted a terminal below the per-tile minimum")
	}
	if !grid.SetSize(2*MinTileWidth, MinTileHeight) {
		t.Error("SetSize rejected a terminal exactly at the minimum")
	}
}

func TestMinTerminalSize(t *testing.T) {
	t.Parallel()

	grid := testGrid(t, "a", "//", "b", "::", "c")
	width, height := grid.MinTerminalSize()
	if width != 2*MinTileWidth || height != 2*MinTileHeight {
		t.Errorf("MinTerminalSize() = %dx%d, want %dx%d", width, height, 2*MinTileWidth, 2*MinTileHeight)
	}
}

func TestTileAtFindsTileAndDeadZones(t *testing.T) {
	t.Parallel()

	grid := testGrid(t, "a", "::", "b")
	// Odd width leaves a one-column remainder at the right edge.
	grid.SetSize(101, 40)

	left := grid.TileAt(0, 0)
	if left == nil || left.Coords() != (event.Coords{Row: 0, Col: 0}) {
		t.Errorf("TileAt(0, 0) = %v", left)
	}
	right := grid.TileAt(99, 39)
	if right == nil || right.Coords() != (event.Coords{Row: 0, Col: 1}) {
		t.Errorf("TileAt(99, 39) = %v", right)
	}
	if grid.TileAt(100, 0) != nil {
		t.Error("TileAt found a tile in the layout remainder column")
	}
	if grid.TileAt(0, 40) != nil {
		t.Error("TileAt found a tile below the grid")
	}
}

func TestEachVisitsEveryTileOnce(t *testing.T) {
	t.Parallel()

	grid := testGrid(t, "a", "//", "b", "::", "c")
	seen := make(map[event.Coords]int)
	grid.Each(func(visited *tile.Tile) { seen[visited.Coords()]++ })
	if len(seen) != 3 {
		t.Fatalf("Each visited %d tiles, want 3", len(seen))
	}
	for coords, visits := range seen {
		if visits != 1 {
			t.Errorf("tile %v visited %d times", coords, visits)
		}
	}
}
