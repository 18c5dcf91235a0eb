// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/paperchat/paperchat-tui/internal/model"
	"github.com/paperchat/paperchat-tui/internal/render"
	"github.com/paperchat/paperchat-tui/internal/ui/styles"
	"github.com/paperchat/paperchat-tui/internal/util"
)

// =============================================================================
// MESSAGE COMPONENT
// =============================================================================

// MessageView renders transcript messages for the viewport.
type MessageView struct {
	theme    *styles.Theme
	markdown *Markdown
	width    int
}

// NewMessageView creates a message renderer for the given width.
func NewMessageView(theme *styles.Theme, width int) *MessageView {
	return &MessageView{
		theme:    theme,
		markdown: NewMarkdown(width),
		width:    width,
	}
}

// SetWidth updates the wrap width and rebuilds the markdown renderer.
func (v *MessageView) SetWidth(width int) {
	if width == v.width {
		return
	}
	v.width = width
	v.markdown = NewMarkdown(width)
}

// Render renders one message as a labeled block.
func (v *MessageView) Render(m *model.Message) string {
	switch m.Role {
	case model.RoleUser:
		return v.renderUser(m)
	case model.RoleAssistant:
		return v.renderAssistant(m)
	default:
		return v.renderSystem(m)
	}
}

// RenderAll renders a whole transcript with blank lines between messages.
func (v *MessageView) RenderAll(messages []*model.Message) string {
	blocks := make([]string, 0, len(messages))
	for _, m := range messages {
		blocks = append(blocks, v.Render(m))
	}
	return strings.Join(blocks, "\n\n")
}

func (v *MessageView) renderUser(m *model.Message) string {
	label := v.theme.UserLabel.Render(m.Role.DisplayName())
	body := v.theme.UserBody.Render(util.WrapText(m.Content, v.width))
	return label + "\n" + body
}

func (v *MessageView) renderSystem(m *model.Message) string {
	label := v.theme.SystemLabel.Render(m.Role.DisplayName())
	body := v.theme.SystemBody.Render(util.WrapText(m.Content, v.width))
	return label + "\n" + body
}

// renderAssistant parses the raw answer into body and citations on every
// call. While the message is still streaming the body stays plain text;
// markdown rendering happens once, when the message is complete.
func (v *MessageView) renderAssistant(m *model.Message) string {
	label := v.theme.AssistantLabel.Render(m.Role.DisplayName())

	parsed := render.Render(m.Content)

	var body string
	if m.IsStreaming {
		body = v.theme.AssistantBody.Render(util.WrapText(parsed.Body, v.width))
	} else {
		body = v.markdown.Render(parsed.Body)
	}

	out := label + "\n" + body
	if len(parsed.Citations) > 0 {
		lines := make([]string, 0, len(parsed.Citations)+1)
		lines = append(lines, v.theme.Citation.Render("Sources:"))
		for _, c := range parsed.Citations {
			lines = append(lines, v.theme.Citation.Render(util.TruncateWidth(c, v.width)))
		}
		out += "\n" + strings.Join(lines, "\n")
	}
	return out
}
