// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paperchat/paperchat-tui/internal/api"
	"github.com/paperchat/paperchat-tui/internal/auth"
)

// =============================================================================
// ASYNC COMMANDS
// =============================================================================

// loadChatsCmd fetches the chat directory.
func loadChatsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		chats, err := client.ListChats(context.Background())
		return ChatsLoadedMsg{Chats: chats, Err: err}
	}
}

// openChatCmd fetches a chat's history and document list. The history and
// documents are loaded together so the transcript swap is all-or-nothing.
func openChatCmd(client *api.Client, chatID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		msgs, err := client.ListMessages(ctx, chatID)
		if err != nil {
			return ChatOpenedMsg{ChatID: chatID, Err: err}
		}
		docs, err := client.ListDocuments(ctx, chatID)
		if err != nil {
			return ChatOpenedMsg{ChatID: chatID, Err: err}
		}
		return ChatOpenedMsg{ChatID: chatID, Messages: msgs, Docs: docs}
	}
}

// uploadCmd uploads a batch of PDFs sequentially.
func uploadCmd(client *api.Client, paths []string, chatID string) tea.Cmd {
	return func() tea.Msg {
		return UploadDoneMsg{Result: client.UploadBatch(context.Background(), paths, chatID)}
	}
}

// loginCmd attempts a login through the gateway.
func loginCmd(gw *auth.Gateway, username, password string) tea.Cmd {
	return func() tea.Msg {
		err := gw.Login(context.Background(), username, password)
		return LoginDoneMsg{Username: username, Err: err}
	}
}

// registerCmd attempts a registration through the gateway.
func registerCmd(gw *auth.Gateway, username, password string) tea.Cmd {
	return func() tea.Msg {
		err := gw.Register(context.Background(), username, password)
		return RegisterDoneMsg{Username: username, Err: err}
	}
}

// logoutCmd drops the session.
func logoutCmd(gw *auth.Gateway) tea.Cmd {
	return func() tea.Msg {
		return LogoutDoneMsg{Err: gw.Logout()}
	}
}

// restoreSessionCmd validates a persisted token at startup.
func restoreSessionCmd(gw *auth.Gateway) tea.Cmd {
	return func() tea.Msg {
		mode := gw.Restore(context.Background())
		return SessionRestoredMsg{Mode: mode, Username: gw.Username()}
	}
}

// =============================================================================
// STREAM RUNNER
// =============================================================================

// StreamRunner bridges the blocking chat stream and the Bubble Tea program.
// It runs SendMessage on its own goroutine and forwards every event through
// program.Send, tagged with the chat it belongs to.
type StreamRunner struct {
	program *tea.Program
	client  *api.Client
}

// NewStreamRunner creates a stream runner. SetProgram must be called before
// the first Run.
func NewStreamRunner(client *api.Client) *StreamRunner {
	return &StreamRunner{client: client}
}

// SetProgram attaches the running Bubble Tea program.
func (r *StreamRunner) SetProgram(program *tea.Program) {
	r.program = program
}

// Run executes one streaming send and reports progress to the program.
// It blocks until the stream ends; callers start it on a goroutine.
func (r *StreamRunner) Run(ctx context.Context, chatID, message string) {
	if r.program == nil {
		return
	}

	r.program.Send(StreamStartMsg{ChatID: chatID})

	err := r.client.SendMessage(ctx, chatID, message, func(chunk string) {
		r.program.Send(StreamChunkMsg{ChatID: chatID, Chunk: chunk})
	})
	if err != nil {
		r.program.Send(StreamErrorMsg{
			ChatID:    chatID,
			Err:       err,
			MidStream: errors.Is(err, api.ErrStreamInterrupted),
		})
		return
	}

	r.program.Send(StreamDoneMsg{ChatID: chatID})
}

// startStreamCmd launches the runner for one send. The command returns
// immediately; all results arrive as stream messages.
func startStreamCmd(runner *StreamRunner, chatID, message string) tea.Cmd {
	return func() tea.Msg {
		go runner.Run(context.Background(), chatID, message)
		return nil
	}
}
