// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines all Bubble Tea message types used by the chat interface.
// Messages are organized into the following categories:
//   - Streaming: stream start, chunk delivery, completion, and errors
//   - Directory: chat listing and opening
//   - Upload: PDF batch upload results
//   - Auth: login, register, logout, and session restore results
//
// Every streaming message carries the chat ID it belongs to. The update loop
// drops messages whose chat ID no longer matches the open chat, so switching
// chats mid-stream can never leak a stale answer into the new transcript.
package chat

import (
	"github.com/paperchat/paperchat-tui/internal/api"
	"github.com/paperchat/paperchat-tui/internal/auth"
)

// =============================================================================
// STREAMING MESSAGES
// =============================================================================

// StreamStartMsg signals that the server accepted the message and the answer
// stream has begun.
type StreamStartMsg struct {
	ChatID string
}

// StreamChunkMsg delivers the next chunk of the answer stream.
type StreamChunkMsg struct {
	ChatID string
	Chunk  string
}

// StreamDoneMsg signals that the stream finished cleanly.
type StreamDoneMsg struct {
	ChatID string
}

// StreamErrorMsg signals a failed send. MidStream distinguishes a rejected
// request from a stream that broke after partial content arrived; partial
// content is kept either way, since the transcript already shows it.
type StreamErrorMsg struct {
	ChatID    string
	Err       error
	MidStream bool
}

// =============================================================================
// DIRECTORY MESSAGES
// =============================================================================

// ChatsLoadedMsg delivers the chat directory listing.
type ChatsLoadedMsg struct {
	Chats []api.ChatSummary
	Err   error
}

// ChatOpenedMsg delivers everything needed to switch to a chat: its stored
// history and its document list.
type ChatOpenedMsg struct {
	ChatID   string
	Messages []api.ChatMessage
	Docs     []api.DocumentInfo
	Err      error
}

// DocsLoadedMsg delivers the document list of the open chat.
type DocsLoadedMsg struct {
	ChatID string
	Docs   []api.DocumentInfo
	Err    error
}

// =============================================================================
// UPLOAD MESSAGES
// =============================================================================

// UploadDoneMsg delivers the outcome of a PDF upload batch.
type UploadDoneMsg struct {
	Result api.BatchResult
}

// =============================================================================
// AUTH MESSAGES
// =============================================================================

// LoginDoneMsg reports a login attempt.
type LoginDoneMsg struct {
	Username string
	Err      error
}

// RegisterDoneMsg reports a registration attempt.
type RegisterDoneMsg struct {
	Username string
	Err      error
}

// LogoutDoneMsg reports a logout.
type LogoutDoneMsg struct {
	Err error
}

// SessionRestoredMsg reports the startup token validation.
type SessionRestoredMsg struct {
	Mode     auth.Mode
	Username string
}
