// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package multiview is the dashboard compositor: a bubbletea model
// that owns the tile grid and serializes every source of change into
// one update loop. Process readers send output through the event
// channel, the terminal delivers decoded key, mouse, and resize
// messages, and Update applies them all on a single goroutine, so
// tile state needs no locking anywhere.
//
// Rendering is layered behind two dirty flags: the border chrome only
// rebuilds when the layout or the selected tile changes, tile content
// rebuilds on any content-bearing message, and an unchanged frame is
// returned as-is. The bubbletea renderer coalesces repaints on top of
// that, so a process flooding its tile costs one recomposition per
// painted frame, not one per chunk.
package multiview

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/tilemux/event"
	"github.com/bureau-foundation/tilemux/grid"
	"github.com/bureau-foundation/tilemux/lib/tui"
	"github.com/bureau-foundation/tilemux/tile"
)

// DefaultWheelStep is how many lines one mouse wheel notch scrolls
// when the configuration does not override it.
const DefaultWheelStep = 3

// channelMsg wraps an event.Message for delivery through the
// bubbletea message loop.
type channelMsg struct {
	message event.Message
}

// Options configures a Model beyond its layout.
type Options struct {
	// Theme colors the chrome. Zero value means tui.DefaultTheme.
	Theme tui.Theme

	// WheelStep is the scroll distance of one wheel notch. Zero
	// means DefaultWheelStep.
	WheelStep int

	// Term is the TERM value exported to child processes. Empty
	// means the supervisor's default.
	Term string

	// Logger receives supervisor and compositor events. Nil means
	// discard.
	Logger *slog.Logger
}

// Model is the top-level bubbletea model for the dashboard.
type Model struct {
	grid    *grid.Grid
	channel chan event.Message
	keys    KeyMap
	theme   tui.Theme
	logger  *slog.Logger

	wheelStep int

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// fits is false while any tile is below its minimum usable
	// dimensions; the view shows a size hint instead of the grid.
	fits bool

	// started flips when the first size report arrives: tiles need
	// geometry before their pseudo-terminals can be sized, so
	// processes launch on the first layout, not at construction.
	started bool

	selected event.Coords

	// dragging is true between a left press inside a tile and its
	// release; motion events extend that tile's selection.
	dragging bool

	showHelp bool
	help     help.Model

	// cache holds the composed frame and the per-tile chrome between
	// repaints. It lives behind a pointer because View has a value
	// receiver and must still be able to fill it.
	cache *renderCache
}

// New builds the compositor for a parsed layout. Tiles exist
// immediately; geometry and processes wait for the first terminal
// size report.
func New(layout grid.Layout, options Options) Model {
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	if options.WheelStep <= 0 {
		options.WheelStep = DefaultWheelStep
	}
	if options.Theme == (tui.Theme{}) {
		options.Theme = tui.DefaultTheme
	}

	// Buffered so process readers keep making progress while a frame
	// is being composed; a full channel blocks the producer, which
	// is the backpressure that keeps a flooding process from growing
	// an unbounded queue.
	channel := make(chan event.Message, 256)

	tiles := grid.New(layout, options.Term, channel, options.Logger)

	return Model{
		grid:      tiles,
		channel:   channel,
		keys:      DefaultKeyMap,
		theme:     options.Theme,
		logger:    options.Logger,
		wheelStep: options.WheelStep,
		selected:  tiles.First(),
		help:      help.New(),
		cache:     newRenderCache(),
	}
}

// Init implements tea.Model: it arms the event channel pump.
func (model Model) Init() tea.Cmd {
	return pumpChannel(model.channel)
}

// pumpChannel returns a tea.Cmd that blocks until a process message
// arrives, then delivers it into Update. Update re-arms it, so the
// channel and the terminal input are consumed by the same loop.
func pumpChannel(channel <-chan event.Message) tea.Cmd {
	return func() tea.Msg {
		message, ok := <-channel
		if !ok {
			return nil
		}
		return channelMsg{message: message}
	}
}

// Update implements tea.Model. Every mutation of tile state happens
// here, on the program's update goroutine.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.MouseMsg:
		model.handleMouse(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.fits = model.grid.SetSize(message.Width, message.Height)
		if !model.started {
			model.started = true
			model.grid.StartAll()
		}
		model.cache.markUI()

	case channelMsg:
		model.apply(message.message)
		return model, pumpChannel(model.channel)
	}
	return model, nil
}

// apply dispatches one process message to its tile. Messages for
// coordinates outside the grid are dropped; they cannot occur through
// the supervisor, but a dropped message is strictly better than a
// crashed loop.
func (model *Model) apply(message event.Message) {
	switch message := message.(type) {
	case event.Output:
		target := model.grid.Tile(message.Tile)
		if target == nil {
			model.logger.Warn("output for unknown tile", "tile", message.Tile)
			return
		}
		target.PushOutput(message.Text)
		model.cache.markTiles()

	case event.FinishLine:
		target := model.grid.Tile(message.Tile)
		if target == nil {
			model.logger.Warn("finish line for unknown tile", "tile", message.Tile)
			return
		}
		target.AddFinishSeparator(message.Success)
		model.cache.markTiles()
	}
}

// handleKey routes keyboard input. While the help overlay is open,
// any key other than quit closes it and is otherwise swallowed.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(message, model.keys.Quit) {
		model.grid.KillAll()
		return model, tea.Quit
	}

	if model.showHelp {
		model.showHelp = false
		return model, nil
	}

	selected := model.grid.Tile(model.selected)

	switch {
	case key.Matches(message, model.keys.Help):
		model.showHelp = true

	case key.Matches(message, model.keys.Up):
		if selected != nil {
			selected.ScrollUp(1)
			model.cache.markTiles()
		}

	case key.Matches(message, model.keys.Down):
		if selected != nil {
			selected.ScrollDown(1)
			model.cache.markTiles()
		}

	case key.Matches(message, model.keys.Top):
		if selected != nil {
			selected.ScrollToTop()
			model.cache.markTiles()
		}

	case key.Matches(message, model.keys.Bottom):
		if selected != nil {
			selected.ScrollToBottom()
			model.cache.markTiles()
		}

	case key.Matches(message, model.keys.RestartSelected):
		if selected != nil {
			selected.Restart()
			model.cache.markTiles()
		}

	case key.Matches(message, model.keys.RestartAll):
		model.grid.Each(func(t *tile.Tile) { t.Restart() })
		model.cache.markTiles()

	case key.Matches(message, model.keys.KillSelected):
		if selected != nil {
			selected.Kill()
		}

	case key.Matches(message, model.keys.KillAll):
		model.grid.KillAll()

	case key.Matches(message, model.keys.SeparatorSelected):
		if selected != nil {
			selected.AddSeparator()
			model.cache.markTiles()
		}

	case key.Matches(message, model.keys.SeparatorAll):
		model.grid.Each(func(t *tile.Tile) { t.AddSeparator() })
		model.cache.markTiles()

	case key.Matches(message, model.keys.Copy):
		if selected != nil {
			if text := selected.Copy(); text != "" {
				return model, copyToClipboard(text)
			}
		}
	}
	return model, nil
}

// handleMouse routes mouse input. A left press selects the tile under
// the cursor and anchors a selection in it; dragging extends the
// selection; the wheel scrolls whichever tile the cursor is over
// without changing the selected tile.
func (model *Model) handleMouse(message tea.MouseMsg) {
	switch message.Button {
	case tea.MouseButtonWheelUp:
		if target := model.grid.TileAt(message.X, message.Y); target != nil {
			target.ScrollUp(model.wheelStep)
			model.cache.markTiles()
		}

	case tea.MouseButtonWheelDown:
		if target := model.grid.TileAt(message.X, message.Y); target != nil {
			target.ScrollDown(model.wheelStep)
			model.cache.markTiles()
		}

	case tea.MouseButtonLeft:
		switch message.Action {
		case tea.MouseActionPress:
			target := model.grid.TileAt(message.X, message.Y)
			if target == nil {
				return
			}
			if target.Coords() != model.selected {
				model.selected = target.Coords()
				model.cache.markUI()
			}
			target.Click(message.X, message.Y)
			model.dragging = true
			model.cache.markTiles()

		case tea.MouseActionMotion:
			if !model.dragging {
				return
			}
			if target := model.grid.Tile(model.selected); target != nil {
				target.Hold(message.X, message.Y)
				model.cache.markTiles()
			}

		case tea.MouseActionRelease:
			model.dragging = false
		}

	case tea.MouseButtonNone:
		// Release events arrive with ButtonNone on some terminals.
		if message.Action == tea.MouseActionRelease {
			model.dragging = false
		}
	}
}
