// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paperchat/paperchat-tui/internal/auth"
	"github.com/paperchat/paperchat-tui/internal/model"
)

// errSendFailed is shown when a chat send fails, pre-stream or mid-stream.
const errSendFailed = "An error occurred while processing your message"

// =============================================================================
// UPDATE
// =============================================================================

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StreamStartMsg:
		// The placeholder is already in the transcript; nothing to do until
		// content arrives.
		return m, nil

	case StreamChunkMsg:
		return m.handleStreamChunk(msg), nil

	case StreamDoneMsg:
		return m.handleStreamDone(msg), nil

	case StreamErrorMsg:
		return m.handleStreamError(msg), nil

	case ChatsLoadedMsg:
		return m.handleChatsLoaded(msg), nil

	case ChatOpenedMsg:
		return m.handleChatOpened(msg), nil

	case UploadDoneMsg:
		return m.handleUploadDone(msg), nil

	case DocsLoadedMsg:
		return m.handleDocsLoaded(msg), nil

	case LoginDoneMsg:
		if msg.Err != nil {
			m.appendSystem(msg.Err.Error())
		} else {
			m.appendSystem("Logged in as " + msg.Username + ".")
		}
		m.syncStatus()
		return m, nil

	case RegisterDoneMsg:
		if msg.Err != nil {
			m.appendSystem(msg.Err.Error())
		} else {
			m.appendSystem("Account " + msg.Username + " created. Use /login to sign in.")
		}
		return m, nil

	case LogoutDoneMsg:
		if msg.Err != nil {
			m.appendSystem(msg.Err.Error())
			m.syncStatus()
			return m, nil
		}
		// Logout closed the open chat; drop its transcript and re-list the
		// directory under the anonymous session.
		m.transcript.Clear()
		m.docCount = 0
		m.streamBuf = ""
		m.state = StateReady
		m.appendSystem("Logged out.")
		m.syncStatus()
		return m, loadChatsCmd(m.deps.Client)

	case SessionRestoredMsg:
		if msg.Mode == auth.Authenticated {
			m.appendSystem("Welcome back, " + msg.Username + ".")
		}
		m.syncStatus()
		return m, nil
	}

	return m.updateComponents(msg)
}

// updateComponents forwards unhandled messages to the focused components.
func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		return m.handleSubmit()

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	// Header and status bar take one line each, the input box three.
	contentHeight := msg.Height - 5
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.viewport.Width = msg.Width
	m.viewport.Height = contentHeight
	m.input.Width = msg.Width - 6

	textWidth := msg.Width - 2
	if textWidth > m.maxTextWidth {
		textWidth = m.maxTextWidth
	}
	m.msgView.SetWidth(textWidth)
	m.statusBar.SetWidth(msg.Width)
	m.refreshViewport()
	return m
}

// =============================================================================
// SUBMIT
// =============================================================================

// handleSubmit processes the input line: a slash command or a chat message.
// Submission is ignored while a send is in flight; typing stays live.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	content := strings.TrimSpace(m.input.Value())
	if content == "" {
		return m, nil
	}

	if strings.HasPrefix(content, "/") {
		m.input.Reset()
		return m.handleCommand(content)
	}

	if m.busy() {
		return m, nil
	}

	chatID := m.activeChat()
	if chatID == "" {
		m.appendSystem("No chat open. Upload a PDF with /upload or open a chat with /open.")
		return m, nil
	}

	// The user's message enters the transcript before any network I/O, so
	// the send is visible even if the request fails immediately.
	m.input.Reset()
	m.transcript.Append(model.NewUserMessage(content))
	m.transcript.BeginStreaming()
	m.streamBuf = ""
	m.state = StateSending
	m.refreshViewport()
	m.syncStatus()

	return m, tea.Batch(
		startStreamCmd(m.deps.Runner, chatID, content),
		m.spinner.Tick,
	)
}

// =============================================================================
// STREAM HANDLING
// =============================================================================

// stale reports whether a stream message belongs to a chat that is no longer
// open. Stale messages are dropped without touching the transcript.
func (m Model) stale(chatID string) bool {
	return chatID != m.activeChat()
}

func (m Model) handleStreamChunk(msg StreamChunkMsg) Model {
	if m.stale(msg.ChatID) {
		return m
	}

	if m.state == StateSending {
		m.state = StateStreaming
	}

	m.streamBuf += msg.Chunk
	if streaming := m.transcript.Streaming(); streaming != nil {
		streaming.SetStreamContent(m.streamBuf)
	}
	m.refreshViewport()
	m.syncStatus()
	return m
}

func (m Model) handleStreamDone(msg StreamDoneMsg) Model {
	if m.stale(msg.ChatID) {
		return m
	}

	m.transcript.FinalizeStreaming()
	m.state = StateReady
	m.streamBuf = ""
	m.refreshViewport()
	m.syncStatus()
	return m
}

func (m Model) handleStreamError(msg StreamErrorMsg) Model {
	if m.stale(msg.ChatID) {
		return m
	}

	// A mid-stream failure keeps the partial answer already shown; a send
	// rejected before the stream began never produced content, so its
	// placeholder is removed rather than finalized empty.
	if msg.MidStream {
		m.transcript.FinalizeStreaming()
	} else {
		m.transcript.DropStreaming()
	}
	m.appendSystem(errSendFailed)
	m.state = StateReady
	m.streamBuf = ""
	m.syncStatus()
	return m
}

// =============================================================================
// DIRECTORY AND UPLOAD HANDLING
// =============================================================================

func (m Model) handleChatsLoaded(msg ChatsLoadedMsg) Model {
	if msg.Err != nil {
		m.appendSystem("Could not load chats: " + msg.Err.Error())
		return m
	}
	m.chats = msg.Chats

	if len(msg.Chats) == 0 {
		m.appendSystem("No chats yet. Upload a PDF with /upload to start one.")
		return m
	}

	var b strings.Builder
	b.WriteString("Available chats:")
	for _, c := range msg.Chats {
		b.WriteString("\n  " + c.ID)
	}
	b.WriteString("\nOpen one with /open <id>.")
	m.appendSystem(b.String())
	return m
}

func (m Model) handleChatOpened(msg ChatOpenedMsg) Model {
	if msg.Err != nil {
		m.appendSystem("Could not open chat: " + msg.Err.Error())
		return m
	}

	// Switching chats replaces the transcript wholesale. Any in-flight
	// stream for the old chat keeps running but its messages are now stale
	// and will be dropped.
	m.deps.Session.SetActiveChat(msg.ChatID)
	m.transcript.Clear()
	m.state = StateReady
	m.streamBuf = ""
	m.docCount = len(msg.Docs)

	for _, stored := range msg.Messages {
		if stored.IsUser {
			m.transcript.Append(model.NewUserMessage(stored.Content))
		} else {
			m.transcript.Append(model.NewMessage(model.RoleAssistant, stored.Content))
		}
	}

	m.appendSystem("Chat loaded. You can now ask questions about the PDFs in this chat.")
	m.syncStatus()
	return m
}

func (m Model) handleUploadDone(msg UploadDoneMsg) Model {
	res := msg.Result

	for _, f := range res.Failed {
		m.appendSystem("Upload failed for " + f.Filename + ": " + f.Err.Error())
	}

	if len(res.Succeeded) == 0 {
		m.syncStatus()
		return m
	}

	if m.activeChat() == "" && res.ChatID != "" {
		m.deps.Session.SetActiveChat(res.ChatID)
	}
	m.docCount += len(res.Succeeded)
	m.appendSystem("PDFs uploaded successfully. You can now ask questions about them.")
	m.syncStatus()
	return m
}

func (m Model) handleDocsLoaded(msg DocsLoadedMsg) Model {
	if msg.Err != nil {
		m.appendSystem("Could not load documents: " + msg.Err.Error())
		return m
	}
	if m.stale(msg.ChatID) {
		return m
	}

	m.docCount = len(msg.Docs)
	if len(msg.Docs) == 0 {
		m.appendSystem("No PDFs in this chat yet.")
	} else {
		var b strings.Builder
		b.WriteString("PDFs in this chat:")
		for _, d := range msg.Docs {
			b.WriteString("\n  " + d.Filename)
		}
		m.appendSystem(b.String())
	}
	m.syncStatus()
	return m
}
