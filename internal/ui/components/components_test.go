// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/paperchat/paperchat-tui/internal/model"
	"github.com/paperchat/paperchat-tui/internal/ui/styles"
)

func testView(t *testing.T) *MessageView {
	t.Helper()
	return NewMessageView(styles.NewTheme("dark"), 80)
}

func TestRenderUserMessage(t *testing.T) {
	v := testView(t)
	out := v.Render(model.NewUserMessage("what is chapter 3 about?"))

	if !strings.Contains(out, "You") {
		t.Error("user label missing")
	}
	if !strings.Contains(out, "what is chapter 3 about?") {
		t.Error("content missing")
	}
}

func TestRenderAssistantStripsBoilerplate(t *testing.T) {
	v := testView(t)
	m := model.NewMessage(model.RoleAssistant, "Answer: It covers methods.\n\nSources:\n1. paper.pdf, page 14")

	out := v.Render(m)

	if strings.Contains(out, "Answer:") {
		t.Error("Answer: prefix should be stripped")
	}
	if !strings.Contains(out, "It covers methods.") {
		t.Error("body missing")
	}
	if !strings.Contains(out, "paper.pdf, page 14") {
		t.Error("citation missing")
	}
}

func TestRenderStreamingAssistantIsPlainText(t *testing.T) {
	v := testView(t)
	m := model.NewStreamingMessage()
	m.SetStreamContent("Answer: partial ans")

	out := v.Render(m)
	if !strings.Contains(out, "partial ans") {
		t.Error("streaming content missing")
	}
}

func TestRenderAllJoinsWithBlankLines(t *testing.T) {
	v := testView(t)
	msgs := []*model.Message{
		model.NewUserMessage("hi"),
		model.NewSystemMessage("Chat loaded."),
	}

	out := v.RenderAll(msgs)
	if !strings.Contains(out, "\n\n") {
		t.Error("messages should be separated by a blank line")
	}
}

func TestStatusBarView(t *testing.T) {
	bar := NewStatusBar(styles.NewTheme("dark"))
	bar.Username = "alice"
	bar.ChatID = "chat-123456789012345"
	bar.DocCount = 2
	bar.Status = StatusStreaming
	bar.SetWidth(100)

	out := bar.View()
	if !strings.Contains(out, "alice") {
		t.Error("username missing")
	}
	if !strings.Contains(out, "Streaming...") {
		t.Error("status missing")
	}
	if !strings.Contains(out, "2 pdfs") {
		t.Error("doc count missing")
	}
}

func TestStatusBarAnonymous(t *testing.T) {
	bar := NewStatusBar(styles.NewTheme("dark"))
	out := bar.View()
	if !strings.Contains(out, "anonymous") {
		t.Error("anonymous marker missing")
	}
}

func TestMarkdownFallback(t *testing.T) {
	md := NewMarkdown(80)
	out := md.Render("plain text answer")
	if !strings.Contains(out, "plain text answer") {
		t.Errorf("rendered output should contain the source text, got %q", out)
	}
}
