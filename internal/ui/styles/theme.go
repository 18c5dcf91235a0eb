// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	IsDark       bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// HEADER AND STATUS BAR
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderMeta  lipgloss.Style
	StatusBar   lipgloss.Style
	StatusOK    lipgloss.Style
	StatusBusy  lipgloss.Style
	StatusError lipgloss.Style

	// ==========================================================================
	// MESSAGES
	// ==========================================================================

	UserLabel      lipgloss.Style
	UserBody       lipgloss.Style
	AssistantLabel lipgloss.Style
	AssistantBody  lipgloss.Style
	SystemLabel    lipgloss.Style
	SystemBody     lipgloss.Style
	Citation       lipgloss.Style
	ErrorText      lipgloss.Style

	// ==========================================================================
	// INPUT AREA
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style

	// ==========================================================================
	// OVERLAYS
	// ==========================================================================

	ListBox          lipgloss.Style
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	HelpKey          lipgloss.Style
	HelpDesc         lipgloss.Style
	Spinner          lipgloss.Style
}

// NewTheme builds a theme for the given mode ("dark" or "light").
func NewTheme(mode string) *Theme {
	isDark := mode != "light"
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		ColorProfile: termenv.ColorProfile(),
	}

	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)
	t.HeaderMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)
	t.StatusOK = lipgloss.NewStyle().Foreground(Emerald).Bold(true)
	t.StatusBusy = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	t.StatusError = lipgloss.NewStyle().Foreground(Rose).Bold(true)

	t.UserLabel = lipgloss.NewStyle().Foreground(UserBorder).Bold(true)
	t.UserBody = lipgloss.NewStyle().Foreground(UserFg)
	t.AssistantLabel = lipgloss.NewStyle().Foreground(AssistantBorder).Bold(true)
	t.AssistantBody = lipgloss.NewStyle().Foreground(AssistantFg)
	t.SystemLabel = lipgloss.NewStyle().Foreground(SystemBorder).Bold(true)
	t.SystemBody = lipgloss.NewStyle().Foreground(SystemFg).Italic(true)
	t.Citation = lipgloss.NewStyle().Foreground(TextMuted).Faint(true)
	t.ErrorText = lipgloss.NewStyle().Foreground(Rose)

	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.InputPrompt = lipgloss.NewStyle().Foreground(Cyan).Bold(true)

	t.ListBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 1)
	t.ListItem = lipgloss.NewStyle().Foreground(TextSecondary)
	t.ListItemSelected = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	t.HelpKey = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	t.HelpDesc = lipgloss.NewStyle().Foreground(TextMuted)
	t.Spinner = lipgloss.NewStyle().Foreground(Purple)

	return t
}
