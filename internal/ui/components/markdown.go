// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// Markdown renders completed assistant answers for terminal display.
// Streaming content is never run through it; re-rendering markdown on every
// chunk is wasted work and makes partial constructs flicker.
type Markdown struct {
	renderer *glamour.TermRenderer
}

// NewMarkdown creates a renderer wrapping at width columns.
// A failed initialization degrades to plain text rather than erroring.
func NewMarkdown(width int) *Markdown {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		r = nil
	}
	return &Markdown{renderer: r}
}

// Render renders markdown content, returning the input unchanged when the
// renderer is unavailable or fails.
func (m *Markdown) Render(content string) string {
	if m.renderer == nil {
		return content
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
