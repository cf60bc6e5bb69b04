// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// the dashboard: the color theme, box-drawing helpers for tile frames,
// the proportional scrollbar, ANSI-aware overlay splicing, and the
// bordered modal frame used by the help overlay.
//
// The compositor imports this package for consistent look and
// behavior; it owns layout, input routing, and tile state itself.
// Everything here is a pure function from data to styled strings,
// which keeps the components trivially testable.
package tui
