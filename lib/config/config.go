// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional tilemux configuration file.
//
// Configuration is read from a single YAML file named by the --config
// flag or the TILEMUX_CONFIG environment variable; when neither is
// set, built-in defaults apply. There is no automatic discovery and
// no merging of multiple files, so the effective configuration is
// always auditable from one place.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/tilemux/lib/tui"
)

// EnvVar names the environment variable consulted for the config
// file path when the --config flag is absent.
const EnvVar = "TILEMUX_CONFIG"

// Config is the complete tilemux configuration. Fields absent from
// the file keep their defaults.
type Config struct {
	// FrameRate caps the renderer's repaint frequency in frames per
	// second.
	FrameRate int `yaml:"frame_rate"`

	// WheelScrollStep is how many lines one mouse wheel notch
	// scrolls a tile.
	WheelScrollStep int `yaml:"wheel_scroll_step"`

	// Term is the TERM value exported to child processes.
	Term string `yaml:"term"`

	// LogOutput is a file path receiving JSON log records. Empty
	// disables logging entirely: the TUI owns the terminal, so there
	// is no useful default destination.
	LogOutput string `yaml:"log_output"`

	// LogLevel is the minimum level written to LogOutput: debug,
	// info, warn, or error.
	LogLevel string `yaml:"log_level"`

	// Theme overrides individual chrome colors. Values are ANSI 256
	// color codes or hex strings, as lipgloss accepts them; empty
	// fields keep the built-in color.
	Theme ThemeColors `yaml:"theme"`
}

// ThemeColors is the color override block of the config file.
type ThemeColors struct {
	Border         string `yaml:"border"`
	SelectedBorder string `yaml:"selected_border"`
	Title          string `yaml:"title"`
	Help           string `yaml:"help"`
	Text           string `yaml:"text"`
	Faint          string `yaml:"faint"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FrameRate:       60,
		WheelScrollStep: 3,
		Term:            "xterm-256color",
		LogLevel:        "debug",
	}
}

// Load reads the configuration file at path, falling back to the
// TILEMUX_CONFIG environment variable and then to defaults when path
// is empty. The file contents overlay the defaults field by field.
// Unknown keys are errors: a typoed setting silently doing nothing is
// worse than a startup failure.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := unmarshalStrict(data, &config); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks every field and reports all problems at once.
func (config Config) Validate() error {
	var problems []error
	if config.FrameRate < 1 || config.FrameRate > 120 {
		problems = append(problems, fmt.Errorf("frame_rate %d: must be between 1 and 120", config.FrameRate))
	}
	if config.WheelScrollStep < 1 {
		problems = append(problems, fmt.Errorf("wheel_scroll_step %d: must be at least 1", config.WheelScrollStep))
	}
	if config.Term == "" {
		problems = append(problems, errors.New("term: must not be empty"))
	}
	if _, err := config.Level(); err != nil {
		problems = append(problems, err)
	}
	return errors.Join(problems...)
}

// Level parses the configured log level.
func (config Config) Level() (slog.Level, error) {
	switch config.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level %q: must be debug, info, warn, or error", config.LogLevel)
	}
}

// BuildTheme applies the configured color overrides to the default
// theme.
func (config Config) BuildTheme() tui.Theme {
	theme := tui.DefaultTheme
	applyColor(&theme.BorderColor, config.Theme.Border)
	applyColor(&theme.SelectedBorderColor, config.Theme.SelectedBorder)
	applyColor(&theme.TitleForeground, config.Theme.Title)
	applyColor(&theme.HelpText, config.Theme.Help)
	applyColor(&theme.NormalText, config.Theme.Text)
	applyColor(&theme.FaintText, config.Theme.Faint)
	return theme
}

func applyColor(target *lipgloss.Color, value string) {
	if value != "" {
		*target = lipgloss.Color(value)
	}
}

// unmarshalStrict decodes YAML with unknown fields rejected.
func unmarshalStrict(data []byte, target *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(target); err != nil && err != io.EOF {
		return err
	}
	return nil
}
