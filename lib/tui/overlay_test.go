// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func plainView(width, height int) string {
	rows := make([]string, height)
	for index := range rows {
		rows[index] = strings.Repeat(".", width)
	}
	return strings.Join(rows, "\n")
}

func TestSpliceOverlayReplacesRegion(t *testing.T) {
	t.Parallel()

	view := SpliceOverlay(plainView(10, 4), []string{"AB", "CD"}, 3, 1)
	lines := strings.Split(view, "\n")
	if got := ansi.Strip(lines[1]); got != "...AB....." {
		t.Errorf("line 1 = %q", got)
	}
	if got := ansi.Strip(lines[2]); got != "...CD....." {
		t.Errorf("line 2 = %q", got)
	}
	if got := ansi.Strip(lines[0]); got != ".........." {
		t.Errorf("line 0 = %q, want untouched", got)
	}
}

func TestSpliceOverlayKeepsLineWidths(t *testing.T) {
	t.Parallel()

	view := SpliceOverlay(plainView(20, 3), []string{"overlay"}, 5, 1)
	for index, line := range strings.Split(view, "\n") {
		if width := ansi.StringWidth(line); width != 20 {
			t.Errorf("line %d width = %d, want 20", index, width)
		}
	}
}

func TestSpliceOverlayClipsOutOfRangeLines(t *testing.T) {
	t.Parallel()

	view := SpliceOverlay(plainView(10, 2), []string{"A", "B", "C", "D"}, 0, 1)
	lines := strings.Split(view, "\n")
	if len(lines) != 2 {
		t.Fatalf("view grew to %d lines", len(lines))
	}
	if got := ansi.Strip(lines[1]); !strings.HasPrefix(got, "B") {
		t.Errorf("line 1 = %q, want overlay line B", got)
	}
}

func TestSpliceOverlayAtLeftEdge(t *testing.T) {
	t.Parallel()

	view := SpliceOverlay(plainView(10, 1), []string{"XY"}, 0, 0)
	if got := ansi.Strip(strings.Split(view, "\n")[0]); got != "XY........" {
		t.Errorf("line = %q", got)
	}
}

func TestCenterOverlayCenters(t *testing.T) {
	t.Parallel()

	view := CenterOverlay(plainView(11, 5), []string{"XXX"}, 11, 5)
	lines := strings.Split(view, "\n")
	if got := ansi.Strip(lines[2]); got != "....XXX...." {
		t.Errorf("center line = %q", got)
	}
}

func TestCenterOverlayClampsOversizedOverlay(t *testing.T) {
	t.Parallel()

	overlay := []string{"WIDE OVERLAY LINE"}
	view := CenterOverlay(plainView(5, 1), overlay, 5, 1)
	if got := ansi.Strip(strings.Split(view, "\n")[0]); !strings.HasPrefix(got, "WIDE") {
		t.Errorf("line = %q, want overlay anchored at column 0", got)
	}
}
