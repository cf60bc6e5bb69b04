// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tile

import (
	"strings"
	"testing"
)

func lineString(buffer *lineBuffer, index int) string {
	return string(buffer.line(index))
}

func TestPushSingleLineVerbatim(t *testing.T) {
	t.Parallel()

	buffer := newLineBuffer(80)
	buffer.push("hello")

	if got := buffer.count(); got != 1 {
		t.Fatalf("count() after one short line: got %d, want 1", got)
	}
	if got := lineString(buffer, 0); got != "hello" {
		t.Errorf("line(0): got %q, want %q", got, "hello")
	}
}

func TestPushKeepsNewlineOnLine(t *testing.T) {
	t.Parallel()

	buffer := newLineBuffer(80)
	buffer.push("ab\ncd")

	if got := buffer.count(); got != 2 {
		t.Fatalf("count(): got %d, want 2", got)
	}
	if got := lineString(buffer, 0); got != "ab\n" {
		t.Errorf("line(0): got %q, want %q", got, "ab\n")
	}
	if got := lineString(buffer, 1); got != "cd" {
		t.Errorf("line(1): got %q, want %q", got, "cd")
	}
}

func TestPushWrapsAtWidth(t *testing.T) {
	t.Parallel()

	buffer := newLineBuffer(10)
	buffer.push(strings.Repeat("a", 25))

	if got := buffer.count(); got != 3 {
		t.Fatalf("count() for 25 cells at width 10: got %d, want 3", got)
	}
	for index, want := range []string{
		strings.Repeat("a", 10),
		strings.Repeat("a", 10),
		strings.Repeat("a", 5),
	} {
		if got := lineString(buffer, index); got != want {
			t.Errorf("line(%d): got %q, want %q", index, got, want)
		}
	}
}

func TestExactFillDoesNotWrap(t *testing.T) {
	t.Parallel()

	buffer := newLineBuffer(4)
	buffer.push("abcd")

	if got := buffer.count(); got != 1 {
		t.Fatalf("count() after exact fill: got %d, want 1", got)
	}

	// The next visible rune, not the fill itself, starts the new line.
	buffer.push("e")
	if got := buffer.count(); got != 2 {
		t.Fatalf("count() after overflow: got %d, want 2", got)
	}
	if got := lineString(buffer, 1); got != "e" {
		t.Errorf("line(1): got %q, want %q", got, "e")
	}
}

func TestWideRuneWrapsAsUnit(t *testing.T) {
	t.Parallel()

	// Width 3: "ab" leaves one cell, the wide rune needs two and must
	// move to the next line whole.
	buffer := newLineBuffer(3)
	buffer.push("ab你")

	if got := buffer.count(); got != 2 {
		t.Fatalf("count(): got %d, want 2", got)
	}
	if got := lineString(buffer, 0); got != "ab" {
		t.Errorf("line(0): got %q, want %q", got, "ab")
	}
	if got := lineString(buffer, 1); got != "你" {
		t.Errorf("line(1): got %q, want %q", got, "你")
	}
}

func TestEscapeSequencesTakeNoWidth(t *testing.T) {
	t.Parallel()

	buffer := newLineBuffer(5)
	buffer.push("\x1b[31mabcde\x1b[0m")

	if got := buffer.count(); got != 1 {
		t.Errorf("count() with escapes around an exact fill: got %d, want 1", got)
	}
}

func TestEscapeStatePersistsAcrossPush(t *testing.T) {
	t.Parallel()

	// The color sequence is split across two chunks. If the scanner
	// reset between pushes, the "1m" tail would count as two visible
	// cells and force a wrap at width 2.
	buffer := newLineBuffer(2)
	buffer.push("\x1b[3")
	buffer.push("1mab")

	if got := buffer.count(); got != 1 {
		t.Errorf("count() with split escape: got %d, want 1", got)
	}
}

func TestCarriageReturnResetsColumn(t *testing.T) {
	t.Parallel()

	buffer := newLineBuffer(5)
	buffer.push("abcde\rfghij")

	if got := buffer.count(); got != 1 {
		t.Errorf("count() after full overwrite: got %d, want 1", got)
	}
}

func TestCombiningMarksTakeNoWidth(t *testing.T) {
	t.Parallel()

	buffer := newLineBuffer(2)
	buffer.push("éx")

	if got := buffer.count(); got != 1 {
		t.Errorf("count() with combining mark: got %d, want 1", got)
	}
}

func TestVariationSelectorTakesNoWidth(t *testing.T) {
	t.Parallel()

	buffer := newLineBuffer(2)
	buffer.push("❤️!")

	if got := buffer.count(); got != 1 {
		t.Errorf("count() with variation selector: got %d, want 1", got)
	}
}

func TestReflowRoundTrip(t *testing.T) {
	t.Parallel()

	content := "first long line that wraps a few times\nshort\n" +
		strings.Repeat("x", 30) + "\ntail without newline"

	reference := newLineBuffer(12)
	reference.push(content)

	buffer := newLineBuffer(12)
	buffer.push(content)
	buffer.reflow(7)
	buffer.reflow(12)

	if got, want := buffer.count(), reference.count(); got != want {
		t.Fatalf("count() after reflow round trip: got %d, want %d", got, want)
	}
	for index := 0; index < reference.count(); index++ {
		if got, want := lineString(buffer, index), lineString(reference, index); got != want {
			t.Errorf("line(%d) after reflow round trip: got %q, want %q", index, got, want)
		}
	}
}

func TestReflowRewrapsToNewWidth(t *testing.T) {
	t.Parallel()

	buffer := newLineBuffer(10)
	buffer.push(strings.Repeat("a", 12))
	if got := buffer.count(); got != 2 {
		t.Fatalf("count() at width 10: got %d, want 2", got)
	}

	buffer.reflow(20)
	if got := buffer.count(); got != 1 {
		t.Errorf("count() after widening: got %d, want 1", got)
	}
	if got := lineString(buffer, 0); got != strings.Repeat("a", 12) {
		t.Errorf("line(0) after widening: got %q", got)
	}
}
