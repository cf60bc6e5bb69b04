// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package multiview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/tilemux/lib/tui"
)

// helpOverlay renders the key binding reference as modal lines for
// splicing over the frame. The body comes from the bubbles help
// component's full view of the key map, so bindings, their grouping,
// and their descriptions stay in one place (keys.go).
func (model Model) helpOverlay() []string {
	helper := model.help
	helper.ShowAll = true
	helper.Styles.FullKey = lipgloss.NewStyle().Foreground(model.theme.NormalText)
	helper.Styles.FullDesc = lipgloss.NewStyle().Foreground(model.theme.HelpText)
	helper.Styles.FullSeparator = lipgloss.NewStyle().Foreground(model.theme.HelpText)

	body := strings.Split(helper.View(model.keys), "\n")
	body = append(body, "", lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("any key closes this overlay"))
	return tui.RenderModal(model.theme, "Key bindings", body)
}
