// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
)

func TestNewMessage(t *testing.T) {
	m := NewUserMessage("hello")

	if m.Role != RoleUser {
		t.Errorf("Role = %v, want %v", m.Role, RoleUser)
	}
	if m.Content != "hello" {
		t.Errorf("Content = %q, want %q", m.Content, "hello")
	}
	if m.IsStreaming {
		t.Error("user message should not be streaming")
	}
	if !strings.HasPrefix(m.ID, "msg_") {
		t.Errorf("ID = %q, want msg_ prefix", m.ID)
	}
	if m.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestStreamingMessageLifecycle(t *testing.T) {
	m := NewStreamingMessage()

	if !m.IsStreaming {
		t.Fatal("new streaming message should be streaming")
	}
	if m.Role != RoleAssistant {
		t.Errorf("Role = %v, want %v", m.Role, RoleAssistant)
	}

	// Content is a full overwrite each time, not an append.
	m.SetStreamContent("Answer: The")
	m.SetStreamContent("Answer: The sky")
	if m.Content != "Answer: The sky" {
		t.Errorf("Content = %q, want overwrite semantics", m.Content)
	}

	m.FinalizeStream()
	if m.IsStreaming {
		t.Error("message should not be streaming after finalize")
	}

	// Frozen after finalize.
	m.SetStreamContent("mutated")
	if m.Content != "Answer: The sky" {
		t.Error("SetStreamContent must be a no-op after finalize")
	}
}

func TestRoleDisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAssistant, "Assistant"},
		{RoleSystem, "System"},
		{Role("other"), "other"},
	}
	for _, tt := range tests {
		if got := tt.role.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%v) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestTranscriptStreamingInvariant(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserMessage("question"))

	placeholder := tr.BeginStreaming()
	if tr.Streaming() != placeholder {
		t.Fatal("streaming message should be the placeholder")
	}
	if tr.Last() != placeholder {
		t.Fatal("streaming message must be the last element")
	}

	// Appending while a stream is live finalizes the placeholder so at most
	// one message is ever streaming, and it is always last.
	tr.Append(NewSystemMessage("interrupted"))
	if placeholder.IsStreaming {
		t.Error("placeholder should have been finalized by the append")
	}
	if tr.Streaming() != nil {
		t.Error("no message should be streaming after the system append")
	}

	count := 0
	for _, m := range tr.Messages() {
		if m.IsStreaming {
			count++
		}
	}
	if count != 0 {
		t.Errorf("streaming count = %d, want 0", count)
	}
}

func TestTranscriptDropStreaming(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserMessage("question"))
	tr.BeginStreaming()

	tr.DropStreaming()
	if tr.Len() != 1 {
		t.Errorf("Len = %d, want the placeholder removed", tr.Len())
	}
	if tr.Streaming() != nil {
		t.Error("no message should be streaming after the drop")
	}

	// A no-op when nothing is streaming; finished messages stay put.
	tr.DropStreaming()
	if tr.Len() != 1 {
		t.Errorf("Len = %d, drop must not remove finished messages", tr.Len())
	}
}

func TestTranscriptClear(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserMessage("a"))
	tr.BeginStreaming()

	tr.Clear()
	if tr.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", tr.Len())
	}
	if tr.Last() != nil {
		t.Error("Last after Clear should be nil")
	}
	if tr.Streaming() != nil {
		t.Error("Streaming after Clear should be nil")
	}
}

func TestMessagePreview(t *testing.T) {
	m := NewUserMessage("line one\nline two that is fairly long indeed")

	p := m.Preview(20)
	if strings.Contains(p, "\n") {
		t.Error("preview should be single-line")
	}
	if len([]rune(p)) > 20 {
		t.Errorf("preview length = %d, want <= 20", len([]rune(p)))
	}
}
