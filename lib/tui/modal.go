// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderModal frames body lines in a rounded border with a bold title
// row, producing overlay lines for CenterOverlay. Body lines may
// carry their own styling; each is padded to the widest line so the
// box stays rectangular.
func RenderModal(theme Theme, title string, body []string) []string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.TitleForeground)
	styledTitle := titleStyle.Render(title)

	innerWidth := ansi.StringWidth(styledTitle)
	for _, line := range body {
		if width := ansi.StringWidth(line); width > innerWidth {
			innerWidth = width
		}
	}

	var inner strings.Builder
	inner.WriteString(padModalLine(styledTitle, innerWidth))
	for _, line := range body {
		inner.WriteString("\n")
		inner.WriteString(padModalLine(line, innerWidth))
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 1)

	return strings.Split(borderStyle.Render(inner.String()), "\n")
}

func padModalLine(line string, width int) string {
	if gap := width - ansi.StringWidth(line); gap > 0 {
		return line + strings.Repeat(" ", gap)
	}
	return line
}
