// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Assistant"
	case RoleSystem:
		return "System"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a chat transcript.
//
// While IsStreaming is true, Content holds the accumulated answer received
// so far and is overwritten wholesale on every chunk; once the stream ends
// the message is frozen and never mutated again.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time

	// IsStreaming marks the one message that is still receiving content.
	IsStreaming bool
}

// NewMessage creates a new message with a generated ID.
func NewMessage(role Role, content string) *Message {
	return &Message{
		ID:        "msg_" + uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) *Message {
	return NewMessage(RoleUser, content)
}

// NewSystemMessage creates a new system message.
func NewSystemMessage(content string) *Message {
	return NewMessage(RoleSystem, content)
}

// NewStreamingMessage creates an empty assistant message in streaming state.
func NewStreamingMessage() *Message {
	m := NewMessage(RoleAssistant, "")
	m.IsStreaming = true
	return m
}

// SetStreamContent replaces the accumulated content of a streaming message.
// The replacement is a full overwrite rather than an append: each stream
// update carries the authoritative buffer-so-far, so overwriting cannot
// drift even if the server re-sends cumulative snapshots.
func (m *Message) SetStreamContent(content string) {
	if m.IsStreaming {
		m.Content = content
	}
}

// FinalizeStream marks the end of streaming; the message is frozen after.
func (m *Message) FinalizeStream() {
	m.IsStreaming = false
}

// IsEmpty returns true if the message has no content.
func (m *Message) IsEmpty() bool {
	return len(m.Content) == 0
}

// Preview returns a single-line truncated preview of the message content.
func (m *Message) Preview(maxLen int) string {
	content := strings.ReplaceAll(m.Content, "\n", " ")
	runes := []rune(content)
	if len(runes) <= maxLen {
		return content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
