// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat screen: header, transcript viewport, input box,
// status bar.
func (m Model) View() string {
	if !m.ready {
		return "Starting paperchat..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.statusBar.View())

	return b.String()
}

func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("paperchat")
	meta := m.theme.HeaderMeta.Render("chat with your PDFs")
	line := title + "  " + meta
	return m.theme.Header.Width(m.width).Render(line)
}

// renderInput shows the input line. While a send is in flight the spinner
// sits in front of the prompt; typing is still captured, only submission
// is held.
func (m Model) renderInput() string {
	line := m.input.View()
	if m.busy() {
		line = m.spinner.View() + " " + line
	}
	return m.theme.InputContainer.Width(m.width - 2).Render(line)
}
