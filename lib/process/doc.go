// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers. These functions
// centralize the raw I/O that legitimately happens outside the
// structured logger and the TUI renderer:
//
//   - Fatal error reporting to stderr when the logger may not be
//     initialized (pre-logger).
//   - Process exit after an unrecoverable error in main().
//
// Everything else the binary writes goes through the bubbletea
// renderer (frames) or slog (diagnostics); stray writes to stdout
// would corrupt the alt-screen display.
package process
