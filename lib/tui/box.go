// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "strings"

// Box-drawing helpers for tile frames. These return unstyled rune
// strings; callers apply color. Width is the full outer width of the
// box including both corner cells, so the horizontal run is width-2.

// BoxTop returns the top border row: "┌────┐".
func BoxTop(width int) string {
	return boxRow('┌', '┐', width)
}

// BoxDivider returns the row separating the title bar from the
// content area: "├────┤".
func BoxDivider(width int) string {
	return boxRow('├', '┤', width)
}

// BoxBottom returns the bottom border row: "└────┘".
func BoxBottom(width int) string {
	return boxRow('└', '┘', width)
}

// HorizontalRule returns a bare run of box-drawing dashes, used for
// the separator lines injected into tile content.
func HorizontalRule(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("─", width)
}

func boxRow(left, right rune, width int) string {
	if width < 2 {
		return ""
	}
	var builder strings.Builder
	builder.Grow(width * 3)
	builder.WriteRune(left)
	for index := 0; index < width-2; index++ {
		builder.WriteRune('─')
	}
	builder.WriteRune(right)
	return builder.String()
}
