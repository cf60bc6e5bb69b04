// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package multiview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the dashboard. Lower-case keys
// act on the selected tile; their upper-case variants act on every
// tile.
type KeyMap struct {
	// Viewport movement within the selected tile.
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Process lifecycle.
	RestartSelected key.Binding
	RestartAll      key.Binding
	KillSelected    key.Binding
	KillAll         key.Binding

	// Content marks.
	SeparatorSelected key.Binding
	SeparatorAll      key.Binding

	// Selection.
	Copy key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "scroll to top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "scroll to bottom"),
	),
	RestartSelected: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart command"),
	),
	RestartAll: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "restart all"),
	),
	KillSelected: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "kill command"),
	),
	KillAll: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "kill all"),
	),
	SeparatorSelected: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "add separator"),
	),
	SeparatorAll: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "separator everywhere"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy selection"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap: the one-line binding summary.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Copy, keys.RestartSelected, keys.Help, keys.Quit}
}

// FullHelp implements help.KeyMap: the column layout for the help
// overlay, grouped by concern.
func (keys KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Up, keys.Down, keys.Top, keys.Bottom},
		{keys.RestartSelected, keys.RestartAll, keys.KillSelected, keys.KillAll},
		{keys.SeparatorSelected, keys.SeparatorAll, keys.Copy},
		{keys.Help, keys.Quit},
	}
}
