// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package event defines the message protocol between the goroutines
// that read child process output and the single compositor goroutine
// that owns all tile state.
//
// Every mutation of tile content travels through one buffered channel
// of Message values: process readers and exit watchers send, the
// compositor receives. Because the compositor is the only consumer,
// tile buffers need no locking. Senders block when the channel is
// full, which applies natural backpressure to processes that produce
// output faster than the terminal can absorb it.
package event

import "fmt"

// Coords identifies a tile by its position in the grid: row index
// first, then column index within that row, both zero-based. Rows may
// have different column counts, so Coords is only meaningful against
// the grid that produced it.
type Coords struct {
	Row int
	Col int
}

// String renders coordinates as "row:col" for log output.
func (c Coords) String() string {
	return fmt.Sprintf("%d:%d", c.Row, c.Col)
}

// Stream says which output stream of a child process produced a chunk.
// Both streams feed the same tile buffer; the distinction exists for
// logging and for tests that assert on provenance.
type Stream int

const (
	Stdout Stream = iota
	Stderr
)

// String returns the conventional stream name.
func (s Stream) String() string {
	switch s {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return fmt.Sprintf("stream(%d)", int(s))
	}
}

// Message is a value delivered through the compositor channel. The
// interface is sealed: the compositor switches over the concrete types
// below and a new message kind requires a matching case there.
type Message interface {
	message()
}

// Output carries a chunk of child process output, or synthetic text
// the supervisor injects into the stream (status lines, separator
// rules). Text is UTF-8; incomplete sequences at chunk boundaries are
// the reader's problem, never the receiver's.
type Output struct {
	Tile   Coords
	Stream Stream
	Text   string
}

// FinishLine asks the compositor to append a colored horizontal rule
// to a tile after its process exited: green when the command succeeded,
// red otherwise. It is a separate message rather than synthetic Output
// because the rule's width depends on tile geometry, which only the
// compositor knows at delivery time.
type FinishLine struct {
	Tile    Coords
	Success bool
}

func (Output) message()     {}
func (FinishLine) message() {}
