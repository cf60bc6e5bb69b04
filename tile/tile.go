// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tile implements a single dashboard pane: the line buffer
// holding one command's interleaved output, the viewport over it, the
// mouse selection, and the rendering of the bordered frame around it.
//
// A tile is plain state with methods; it runs no goroutines of its
// own and is only ever touched by the compositor. Output produced by
// the tile's process arrives through the compositor, which calls
// PushOutput, so all mutation is single-threaded.
package tile

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bureau-foundation/tilemux/event"
	"github.com/bureau-foundation/tilemux/lib/tui"
	"github.com/bureau-foundation/tilemux/proc"
)

// Tile is one pane of the dashboard: a bordered screen region running
// a single command. Outer geometry includes the border frame; the
// content area sits inset from it with a title bar and divider above.
type Tile struct {
	command []string
	title   string
	coords  event.Coords

	x, y          int
	width, height int

	innerX, innerY          int
	innerWidth, innerHeight int

	buffer *lineBuffer

	scroll int
	sticky bool

	selection selection

	process *proc.Process

	term    string
	channel chan<- event.Message
	logger  *slog.Logger
}

// New creates a tile for a command at a grid position. The tile has
// no geometry until SetGeometry places it, and no process until
// Start launches one. Autoscroll starts engaged.
func New(command []string, coords event.Coords, term string, channel chan<- event.Message, logger *slog.Logger) *Tile {
	return &Tile{
		command: command,
		title:   strings.Join(command, " "),
		coords:  coords,
		buffer:  newLineBuffer(0),
		sticky:  true,
		term:    term,
		channel: channel,
		logger:  logger.With("tile", coords),
	}
}

// Coords returns the tile's grid position.
func (tile *Tile) Coords() event.Coords {
	return tile.coords
}

// Running reports whether the tile currently holds a process handle.
// The handle outlives the command's natural exit; it drops on Kill.
func (tile *Tile) Running() bool {
	return tile.process != nil
}

// SetGeometry places the tile's outer frame at (x, y) with the given
// dimensions and derives the content area: two cells in from the
// left edge, three rows down from the top (border, title bar,
// divider). Content width changes re-wrap the whole buffer and drop
// any selection, whose raw positions the re-wrap invalidated. A live
// process is told its new terminal size.
func (tile *Tile) SetGeometry(x, y, width, height int) {
	tile.x, tile.y = x, y
	tile.width, tile.height = width, height
	tile.innerX = x + 2
	tile.innerY = y + 3

	innerWidth := width - 4
	if innerWidth < 1 {
		innerWidth = 1
	}
	innerHeight := height - 5
	if innerHeight < 1 {
		innerHeight = 1
	}

	widthChanged := innerWidth != tile.innerWidth
	tile.innerWidth = innerWidth
	tile.innerHeight = innerHeight
	if widthChanged {
		tile.buffer.reflow(innerWidth)
		tile.selection = selection{}
	}
	tile.clampScroll()

	if tile.process != nil {
		tile.process.Resize(innerWidth, innerHeight)
	}
}

// Position returns the top-left corner of the tile's outer frame in
// screen coordinates.
func (tile *Tile) Position() (x, y int) {
	return tile.x, tile.y
}

// Contains reports whether a screen position falls inside the tile's
// outer rectangle, border included.
func (tile *Tile) Contains(x, y int) bool {
	return x >= tile.x && x < tile.x+tile.width &&
		y >= tile.y && y < tile.y+tile.height
}

// Start launches the tile's command. Failure is narrated into the
// tile body instead of propagating, so one broken command leaves the
// rest of the dashboard running.
func (tile *Tile) Start() {
	if tile.process != nil {
		return
	}
	process, err := proc.Start(tile.command, tile.innerWidth, tile.innerHeight, tile.term, tile.coords, tile.channel, tile.logger)
	if err != nil {
		tile.logger.Error("command start failed", "error", err)
		tile.PushOutput(fmt.Sprintf("\x1b[1m\x1b[31mCouldn't run command: %v\r\x1b[0m", err))
		tile.PushOutput("\n\x1b[31m" + tui.HorizontalRule(tile.ruleWidth()) + "\x1b[39m\n")
		return
	}
	tile.process = process
}

// Kill terminates the tile's process if it holds one. Killing a tile
// whose command already exited or was never started does nothing.
func (tile *Tile) Kill() {
	if tile.process == nil {
		return
	}
	tile.process.Kill()
	tile.process = nil
}

// Restart kills any running process and launches the command again.
// The buffer keeps the previous run's output; the new run appends
// after it.
func (tile *Tile) Restart() {
	tile.Kill()
	tile.Start()
}

// PushOutput appends a chunk of output to the buffer and keeps the
// viewport pinned to the bottom while autoscroll is engaged.
func (tile *Tile) PushOutput(text string) {
	tile.buffer.push(text)
	tile.clampScroll()
}

// AddSeparator appends a neutral horizontal rule to the content,
// marking a point in a long-running stream.
func (tile *Tile) AddSeparator() {
	tile.PushOutput("\n\x1b[39m" + tui.HorizontalRule(tile.ruleWidth()) + "\n")
}

// AddFinishSeparator appends the colored rule that closes a finished
// command's output: green for success, red for failure.
func (tile *Tile) AddFinishSeparator(success bool) {
	color := "\x1b[31m"
	if success {
		color = "\x1b[32m"
	}
	tile.PushOutput("\n\x1b[39m" + color + tui.HorizontalRule(tile.ruleWidth()) + "\n")
}

// The separator rule stops one cell short of the full content width
// so it never triggers the wrap that a full-width line would.
func (tile *Tile) ruleWidth() int {
	return tile.innerWidth - 1
}
