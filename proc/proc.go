// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package proc supervises the child processes behind tiles. Each
// process runs in its own session with a dedicated pseudo-terminal on
// stdin, so interactive commands see a real tty sized to their tile,
// while stdout and stderr flow through ordinary pipes that keep the
// two streams distinguishable.
//
// Two goroutines per process forward output chunks into the
// compositor channel. The stdout goroutine doubles as the exit
// watcher: when its stream ends it reaps the process and reports the
// outcome as synthetic output, the same way the content would arrive
// from the command itself.
package proc

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"unicode/utf8"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/tilemux/event"
)

// DefaultTerm is the TERM value exported to children when the
// configuration does not override it.
const DefaultTerm = "xterm-256color"

// Exit status lines injected into the output stream, styled the way a
// shell prompt would style them: bold green for success, bold red for
// failure. The carriage return parks the cursor at column zero so a
// subsequent separator rule starts flush left.
const (
	statusSuccess     = "\x1b[1m\x1b[32mCommand finished successfully\r\x1b[0m"
	statusInterrupted = "\x1b[1m\x1b[31mCommand was interrupted\r\x1b[0m"
	statusFailed      = "\x1b[1m\x1b[31mCommand failed with exit code %d\r\x1b[0m"
)

const readChunkSize = 4096

// Process is a running (or exited) supervised command. The zero value
// is not usable; obtain one from Start.
type Process struct {
	cmd       *exec.Cmd
	ptmx      *os.File
	closeOnce sync.Once
	logger    *slog.Logger
}

// Start launches a command bound to a fresh pseudo-terminal sized
// columns by rows. Output and exit reporting flow into channel tagged
// with coords. The returned Process stays valid after the command
// exits; Kill and Resize on an exited process are harmless.
//
// A Start error means nothing was launched and no messages will
// arrive for this attempt.
func Start(command []string, columns, rows int, term string, coords event.Coords, channel chan<- event.Message, logger *slog.Logger) (*Process, error) {
	if len(command) == 0 {
		return nil, errors.New("empty command")
	}
	if term == "" {
		term = DefaultTerm
	}

	ptmx, tty, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("open pty: %w", err)
	}
	if err := pty.Setsize(ptmx, winsize(columns, rows)); err != nil {
		logger.Warn("initial pty size rejected", "error", err)
	}

	stdoutRead, stdoutWrite, err := os.Pipe()
	if err != nil {
		ptmx.Close()
		tty.Close()
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderrRead, stderrWrite, err := os.Pipe()
	if err != nil {
		ptmx.Close()
		tty.Close()
		stdoutRead.Close()
		stdoutWrite.Close()
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stdin = tty
	cmd.Stdout = stdoutWrite
	cmd.Stderr = stderrWrite
	cmd.Env = append(os.Environ(), "TERM="+term)
	// New session with the tile's pty as controlling terminal (fd 0),
	// so job-control-aware commands behave as if run in their own
	// terminal window.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true}

	if err := cmd.Start(); err != nil {
		ptmx.Close()
		tty.Close()
		stdoutRead.Close()
		stdoutWrite.Close()
		stderrRead.Close()
		stderrWrite.Close()
		return nil, fmt.Errorf("start %q: %w", command[0], err)
	}

	// Child holds its own copies of these ends now.
	tty.Close()
	stdoutWrite.Close()
	stderrWrite.Close()

	process := &Process{cmd: cmd, ptmx: ptmx, logger: logger}
	logger.Info("command started", "tile", coords, "command", command[0], "pid", cmd.Process.Pid)

	go func() {
		forwardStream(stdoutRead, coords, event.Stdout, channel)
		process.reportExit(coords, channel)
	}()
	go forwardStream(stderrRead, coords, event.Stderr, channel)

	return process, nil
}

// Kill requests termination of the whole process group with SIGTERM
// and closes the pty master, which delivers SIGHUP as a backstop for
// commands that ignore the first signal. Safe to call more than once
// and after the process has already exited.
func (process *Process) Kill() {
	unix.Kill(-process.cmd.Process.Pid, unix.SIGTERM)
	process.closePTY()
}

// Resize propagates a new tile size to the pseudo-terminal. The
// kernel raises SIGWINCH in the child. Errors are expected after the
// process exited or was killed and are only logged.
func (process *Process) Resize(columns, rows int) {
	if err := pty.Setsize(process.ptmx, winsize(columns, rows)); err != nil {
		process.logger.Debug("pty resize failed", "error", err)
	}
}

func (process *Process) closePTY() {
	process.closeOnce.Do(func() {
		process.ptmx.Close()
	})
}

// reportExit runs on the stdout forwarder's goroutine after that
// stream ends. It reaps the child and narrates the outcome into the
// tile: a line break, a styled status line, then a request for the
// colored finish rule. The stderr forwarder may still be draining at
// this point; its chunks interleave after these messages, which is
// acceptable for the same reason stdout/stderr interleaving is.
func (process *Process) reportExit(coords event.Coords, channel chan<- event.Message) {
	channel <- event.Output{Tile: coords, Stream: event.Stdout, Text: "\n"}

	err := process.cmd.Wait()
	text := statusSuccess
	success := true
	if err != nil {
		success = false
		text = statusInterrupted
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			status, ok := exitErr.Sys().(syscall.WaitStatus)
			if !ok || !status.Signaled() {
				text = fmt.Sprintf(statusFailed, exitErr.ExitCode())
			}
		}
	}

	channel <- event.Output{Tile: coords, Stream: event.Stdout, Text: text}
	channel <- event.FinishLine{Tile: coords, Success: success}
	process.logger.Info("command exited", "tile", coords, "success", success)
}

// forwardStream copies a pipe into the compositor channel in chunks.
// Chunk boundaries fall anywhere, including inside a UTF-8 encoding,
// so a trailing incomplete sequence is held back and prepended to the
// next chunk. Whatever is still held when the stream closes goes out
// with replacement runes substituted.
func forwardStream(file *os.File, coords event.Coords, stream event.Stream, channel chan<- event.Message) {
	defer file.Close()

	buffer := make([]byte, readChunkSize)
	var partial []byte
	for {
		count, err := file.Read(buffer)
		if count > 0 {
			data := buffer[:count]
			if len(partial) > 0 {
				data = append(partial, data...)
				partial = nil
			}
			complete := len(data) - incompleteTailLength(data)
			if complete > 0 {
				channel <- event.Output{Tile: coords, Stream: stream, Text: string(data[:complete])}
			}
			if complete < len(data) {
				partial = append([]byte(nil), data[complete:]...)
			}
		}
		if err != nil {
			break
		}
	}
	if len(partial) > 0 {
		text := strings.ToValidUTF8(string(partial), string(utf8.RuneError))
		channel <- event.Output{Tile: coords, Stream: stream, Text: text}
	}
}

// incompleteTailLength returns how many bytes at the end of data form
// the beginning of a UTF-8 sequence whose remaining bytes have not
// arrived yet. Complete or outright invalid tails return zero; those
// pass through and render as-is or as replacement runes.
func incompleteTailLength(data []byte) int {
	end := len(data)
	floor := end - utf8.UTFMax
	if floor < 0 {
		floor = 0
	}
	for start := end - 1; start >= floor; start-- {
		b := data[start]
		if b < 0x80 {
			return 0
		}
		if b >= 0xC0 {
			length := encodedLength(b)
			if length > 0 && start+length > end {
				return end - start
			}
			return 0
		}
		// Continuation byte: keep scanning backward for the start.
	}
	return 0
}

func encodedLength(start byte) int {
	switch {
	case start&0xE0 == 0xC0:
		return 2
	case start&0xF0 == 0xE0:
		return 3
	case start&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

func winsize(columns, rows int) *pty.Winsize {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &pty.Winsize{Rows: uint16(rows), Cols: uint16(columns)}
}
