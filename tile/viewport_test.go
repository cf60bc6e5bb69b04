// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tile

import (
	"fmt"
	"testing"
)

func pushLines(tile *Tile, count int) {
	for index := 0; index < count; index++ {
		tile.PushOutput(fmt.Sprintf("line %d\n", index))
	}
}

func TestScrollStaysWithinBounds(t *testing.T) {
	t.Parallel()

	tile := testTile(t)
	pushLines(tile, 20)

	// 21 logical lines (trailing empty), 6 visible rows.
	if got := tile.MaxScroll(); got != 15 {
		t.Fatalf("MaxScroll(): got %d, want 15", got)
	}

	tile.ScrollUp(1000)
	if got := tile.Scroll(); got != 0 {
		t.Errorf("Scroll() after far over-scroll up: got %d, want 0", got)
	}
	tile.ScrollDown(3)
	if got := tile.Scroll(); got != 3 {
		t.Errorf("Scroll() after down 3: got %d, want 3", got)
	}
	tile.ScrollDown(1000)
	if got, want := tile.Scroll(), tile.MaxScroll(); got != want {
		t.Errorf("Scroll() after far over-scroll down: got %d, want %d", got, want)
	}

	for step := 0; step < 50; step++ {
		if step%3 == 0 {
			tile.ScrollUp(step % 7)
		} else {
			tile.ScrollDown(step % 5)
		}
		if tile.Scroll() < 0 || tile.Scroll() > tile.MaxScroll() {
			t.Fatalf("step %d: Scroll() %d outside [0, %d]", step, tile.Scroll(), tile.MaxScroll())
		}
	}
}

func TestMaxScrollZeroWhenContentFits(t *testing.T) {
	t.Parallel()

	tile := testTile(t)
	tile.PushOutput("just one line\n")

	if got := tile.MaxScroll(); got != 0 {
		t.Errorf("MaxScroll() with short content: got %d, want 0", got)
	}
	tile.ScrollDown(5)
	if got := tile.Scroll(); got != 0 {
		t.Errorf("Scroll() with short content: got %d, want 0", got)
	}
}

func TestAutoscrollFollowsOutput(t *testing.T) {
	t.Parallel()

	tile := testTile(t)
	if !tile.Sticky() {
		t.Fatal("Sticky() on a fresh tile: got false, want true")
	}

	pushLines(tile, 30)
	if got, want := tile.Scroll(), tile.MaxScroll(); got != want {
		t.Errorf("Scroll() while sticky: got %d, want %d", got, want)
	}
}

func TestScrollUpDisengagesAutoscroll(t *testing.T) {
	t.Parallel()

	tile := testTile(t)
	pushLines(tile, 30)

	tile.ScrollUp(4)
	if tile.Sticky() {
		t.Fatal("Sticky() after scroll up: got true, want false")
	}
	held := tile.Scroll()

	pushLines(tile, 10)
	if got := tile.Scroll(); got != held {
		t.Errorf("Scroll() after new output while unpinned: got %d, want %d", got, held)
	}
}

func TestScrollToBottomReengagesAutoscroll(t *testing.T) {
	t.Parallel()

	tile := testTile(t)
	pushLines(tile, 30)
	tile.ScrollUp(10)

	tile.ScrollDown(10)
	if !tile.Sticky() {
		t.Fatal("Sticky() after returning to bottom: got false, want true")
	}

	pushLines(tile, 5)
	if got, want := tile.Scroll(), tile.MaxScroll(); got != want {
		t.Errorf("Scroll() after re-pinning: got %d, want %d", got, want)
	}
}

func TestScrollDownShortOfBottomStaysUnpinned(t *testing.T) {
	t.Parallel()

	tile := testTile(t)
	pushLines(tile, 30)
	tile.ScrollUp(10)

	tile.ScrollDown(1)
	if tile.Sticky() {
		t.Error("Sticky() short of the bottom: got true, want false")
	}
}

func TestScrollToTopAndBottom(t *testing.T) {
	t.Parallel()

	tile := testTile(t)
	pushLines(tile, 30)

	tile.ScrollToTop()
	if got := tile.Scroll(); got != 0 {
		t.Errorf("Scroll() after ScrollToTop: got %d, want 0", got)
	}
	if tile.Sticky() {
		t.Error("Sticky() after ScrollToTop: got true, want false")
	}

	tile.ScrollToBottom()
	if got, want := tile.Scroll(), tile.MaxScroll(); got != want {
		t.Errorf("Scroll() after ScrollToBottom: got %d, want %d", got, want)
	}
	if !tile.Sticky() {
		t.Error("Sticky() after ScrollToBottom: got false, want true")
	}
}

func TestResizeReclampsScroll(t *testing.T) {
	t.Parallel()

	tile := testTile(t)
	pushLines(tile, 30)
	tile.ScrollUp(2)
	// Taller tile: more rows visible, smaller maximum offset.
	tile.SetGeometry(0, 0, 24, 30)

	if tile.Scroll() > tile.MaxScroll() {
		t.Errorf("Scroll() %d exceeds MaxScroll() %d after resize", tile.Scroll(), tile.MaxScroll())
	}
}

func TestResizeKeepsStickyPinned(t *testing.T) {
	t.Parallel()

	tile := testTile(t)
	pushLines(tile, 30)
	tile.SetGeometry(0, 0, 30, 8)

	if got, want := tile.Scroll(), tile.MaxScroll(); got != want {
		t.Errorf("Scroll() after resize while sticky: got %d, want %d", got, want)
	}
}
