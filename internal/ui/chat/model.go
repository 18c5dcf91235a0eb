// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paperchat/paperchat-tui/internal/api"
	"github.com/paperchat/paperchat-tui/internal/auth"
	"github.com/paperchat/paperchat-tui/internal/model"
	"github.com/paperchat/paperchat-tui/internal/session"
	"github.com/paperchat/paperchat-tui/internal/ui/components"
	"github.com/paperchat/paperchat-tui/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
//
// Submission is only possible in StateReady; StateSending covers the window
// between submit and the first chunk, StateStreaming the rest of the answer.
type State int

const (
	StateReady     State = iota // Ready for input
	StateSending                // Message sent, waiting for the first chunk
	StateStreaming              // Receiving the answer stream
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Deps are the services the chat view drives.
type Deps struct {
	Client  *api.Client
	Gateway *auth.Gateway
	Session *session.Store
	Runner  *StreamRunner
}

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// State
	state State

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int
	ready  bool

	// Transcript of the open chat
	transcript *model.Transcript

	// Accumulated raw answer for the in-flight stream
	streamBuf string

	// Upper bound on the text wrap width, from config
	maxTextWidth int

	// Open chat metadata
	docCount int
	chats    []api.ChatSummary

	// Services
	deps Deps

	// UI components
	viewport  viewport.Model
	input     textinput.Model
	spinner   spinner.Model
	msgView   *components.MessageView
	statusBar *components.StatusBar

	// Key bindings
	keyMap KeyMap
}

// New creates a new chat model. maxWidth caps the text wrap width on wide
// terminals.
func New(theme *styles.Theme, maxWidth int, deps Deps) Model {
	if maxWidth < 20 {
		maxWidth = 80
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about your PDFs, or type /help"
	ti.CharLimit = 4096
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	sp.Style = theme.Spinner

	return Model{
		state:        StateReady,
		theme:        theme,
		transcript:   model.NewTranscript(),
		maxTextWidth: maxWidth,
		deps:         deps,
		viewport:     vp,
		input:        ti,
		spinner:      sp,
		msgView:      components.NewMessageView(theme, maxWidth),
		statusBar:    components.NewStatusBar(theme),
		keyMap:       DefaultKeyMap(),
	}
}

// Init starts the session restore and the initial directory load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		restoreSessionCmd(m.deps.Gateway),
	)
}

// State returns the current chat state.
func (m Model) State() State {
	return m.state
}

// Transcript returns the transcript of the open chat.
func (m Model) Transcript() *model.Transcript {
	return m.transcript
}

// activeChat returns the ID of the open chat, or "".
func (m Model) activeChat() string {
	return m.deps.Session.ActiveChat()
}

// busy reports whether a send is in flight. Input submission is disabled
// while busy; typing stays possible.
func (m Model) busy() bool {
	return m.state == StateSending || m.state == StateStreaming
}

// appendSystem adds a system notice to the transcript and refreshes the view.
func (m *Model) appendSystem(text string) {
	m.transcript.Append(model.NewSystemMessage(text))
	m.refreshViewport()
}

// refreshViewport re-renders the whole transcript into the viewport and
// follows the tail. Rendering is a pure function of the transcript, so a
// full redraw per update cannot drift from the buffer contents.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.msgView.RenderAll(m.transcript.Messages()))
	m.viewport.GotoBottom()
}

// syncStatus mirrors the model state into the status bar.
func (m *Model) syncStatus() {
	m.statusBar.Username = m.deps.Gateway.Username()
	m.statusBar.ChatID = m.activeChat()
	m.statusBar.DocCount = m.docCount

	switch m.state {
	case StateSending:
		m.statusBar.Status = components.StatusSending
	case StateStreaming:
		m.statusBar.Status = components.StatusStreaming
	default:
		m.statusBar.Status = components.StatusReady
	}
}
