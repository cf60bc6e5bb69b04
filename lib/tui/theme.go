// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the dashboard chrome. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
//
// The theme only covers chrome the dashboard itself draws: borders,
// titles, the scrollbar, help text. Child process output is passed
// through verbatim with whatever colors the process emitted, so there
// is nothing to theme inside the content area.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Tile borders. The selected tile's border and scrollbar switch
	// to SelectedBorderColor so the focus target is visible at a
	// glance across a large grid.
	BorderColor         lipgloss.Color
	SelectedBorderColor lipgloss.Color

	// Tile title bar (the "Command: ..." line).
	TitleForeground lipgloss.Color

	// Help overlay text.
	HelpText lipgloss.Color
}

// BorderForeground returns the border color for a tile in the given
// selection state. The scrollbar renderer and the tile border renderer
// both use this so the two always agree.
func (theme Theme) BorderForeground(selected bool) lipgloss.Color {
	if selected {
		return theme.SelectedBorderColor
	}
	return theme.BorderColor
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	BorderColor:         lipgloss.Color("240"),
	SelectedBorderColor: lipgloss.Color("114"), // green

	TitleForeground: lipgloss.Color("255"),

	HelpText: lipgloss.Color("241"),
}
