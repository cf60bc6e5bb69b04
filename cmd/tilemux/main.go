// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// tilemux splits the terminal into a grid of tiles and runs one
// command per tile, each in its own pseudo-terminal with independent
// scrollback, autoscroll, mouse selection, and clipboard copy.
//
// The grid comes from the argument list: "//" starts a new row, "::"
// starts a new column, and whichever separator appears first decides
// whether the top-level groups are rows or columns.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/tilemux/grid"
	"github.com/bureau-foundation/tilemux/lib/config"
	"github.com/bureau-foundation/tilemux/lib/process"
	"github.com/bureau-foundation/tilemux/lib/version"
	"github.com/bureau-foundation/tilemux/multiview"
)

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

func run() error {
	var configPath string
	var logOutput string
	var frameRate int

	flagSet := pflag.NewFlagSet("tilemux", pflag.ContinueOnError)
	// Commands carry their own flags: stop parsing at the first
	// non-flag argument so "tilemux watch -n1 date" needs no "--".
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config file (default: $"+config.EnvVar+")")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.IntVar(&frameRate, "frame-rate", 0, "maximum repaints per second (overrides config)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("tilemux")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logOutput != "" {
		settings.LogOutput = logOutput
	}
	if frameRate != 0 {
		settings.FrameRate = frameRate
		if err := settings.Validate(); err != nil {
			return err
		}
	}

	layout, err := grid.ParseArgs(flagSet.Args())
	if err != nil {
		printHelp(flagSet)
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	logger, logCleanup, err := openLogger(settings)
	if err != nil {
		return err
	}
	defer logCleanup()

	model := multiview.New(layout, multiview.Options{
		Theme:     settings.BuildTheme(),
		WheelStep: settings.WheelScrollStep,
		Term:      settings.Term,
		Logger:    logger,
	})
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithFPS(settings.FrameRate),
	)
	_, err = program.Run()
	return err
}

// openLogger builds the structured logger. The TUI owns the terminal,
// so without a log file everything is discarded rather than scribbled
// over the alt screen.
func openLogger(settings config.Config) (*slog.Logger, func(), error) {
	if settings.LogOutput == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	level, err := settings.Level()
	if err != nil {
		return nil, nil, err
	}
	file, err := os.Create(settings.LogOutput)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", settings.LogOutput, err)
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(handler), func() { file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `tilemux — run several commands side by side, each in its own tile.

Commands are separated by "::" (next column) and "//" (next row).
Whichever separator appears first decides whether the top-level
groups are rows or columns, so both of these work:

  # Two rows, the second split into two columns
  tilemux htop // tail -f /var/log/syslog :: watch -n1 date

  # Two columns, the second split into two rows
  tilemux htop :: tail -f /var/log/syslog // watch -n1 date

Inside the dashboard: click a tile to select it, drag to select
text, y copies, r/R restarts, x/X kills, s/S adds a separator,
j/k and the mouse wheel scroll, g/G jumps to the top/bottom,
? shows all bindings, q quits.

Usage:
  tilemux [flags] command... [:: command...] [// command...]

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
