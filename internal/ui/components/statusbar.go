// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paperchat/paperchat-tui/internal/ui/styles"
	"github.com/paperchat/paperchat-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusSending
	StatusStreaming
	StatusLoading
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusSending:
		return "Sending..."
	case StatusStreaming:
		return "Streaming..."
	case StatusLoading:
		return "Loading..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// StatusBar is the bottom status bar: who is logged in, which chat is open,
// what the client is doing.
type StatusBar struct {
	Username string // empty when anonymous
	ChatID   string // empty when no chat is open
	DocCount int    // PDFs in the open chat
	Status   Status
	Width    int

	theme *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Status: StatusReady, Width: 80, theme: theme}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")

	parts := []string{}

	who := "anonymous"
	if s.Username != "" {
		who = s.Username
	}
	parts = append(parts, s.theme.HeaderMeta.Render(who))

	if s.ChatID != "" {
		chat := "chat " + util.TruncateRunes(s.ChatID, 12)
		if s.DocCount == 1 {
			chat += " (1 pdf)"
		} else if s.DocCount > 1 {
			chat += fmt.Sprintf(" (%d pdfs)", s.DocCount)
		}
		parts = append(parts, s.theme.HeaderMeta.Render(chat))
	}

	parts = append(parts, s.statusStyle().Render(s.Status.String()))

	help := s.theme.HelpKey.Render("/help") + s.theme.HelpDesc.Render(" commands")
	parts = append(parts, help)

	return s.theme.StatusBar.Width(s.Width).Render(strings.Join(parts, sep))
}

func (s *StatusBar) statusStyle() lipgloss.Style {
	switch s.Status {
	case StatusSending, StatusStreaming, StatusLoading:
		return s.theme.StatusBusy
	case StatusError:
		return s.theme.StatusError
	default:
		return s.theme.StatusOK
	}
}
