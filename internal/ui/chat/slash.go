// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paperchat/paperchat-tui/internal/api"
	"github.com/paperchat/paperchat-tui/internal/auth"
)

// =============================================================================
// SLASH COMMANDS
// =============================================================================

const helpText = `Commands:
  /login <user> <password>     sign in
  /register <user> <password>  create an account
  /logout                      sign out
  /whoami                      show the current session
  /chats                       list chats
  /open <id>                   open a chat
  /upload <file.pdf> ...       upload PDFs to the open chat (or start one)
  /docs                        list PDFs in the open chat
  /help                        this help
  /quit                        exit`

// handleCommand dispatches a slash command line.
func (m Model) handleCommand(content string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(content)
	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case "/help":
		m.appendSystem(helpText)
		return m, nil

	case "/quit", "/exit":
		return m, tea.Quit

	case "/login":
		if len(args) != 2 {
			m.appendSystem("Usage: /login <user> <password>")
			return m, nil
		}
		return m, loginCmd(m.deps.Gateway, args[0], args[1])

	case "/register":
		if len(args) != 2 {
			m.appendSystem("Usage: /register <user> <password>")
			return m, nil
		}
		return m, registerCmd(m.deps.Gateway, args[0], args[1])

	case "/logout":
		return m, logoutCmd(m.deps.Gateway)

	case "/whoami":
		if m.deps.Gateway.Mode() == auth.Authenticated {
			m.appendSystem("Signed in as " + m.deps.Gateway.Username() + ".")
		} else {
			m.appendSystem("Anonymous session.")
		}
		return m, nil

	case "/chats":
		return m, loadChatsCmd(m.deps.Client)

	case "/open":
		if len(args) != 1 {
			m.appendSystem("Usage: /open <chat-id>")
			return m, nil
		}
		return m, openChatCmd(m.deps.Client, args[0])

	case "/upload":
		if len(args) == 0 {
			m.appendSystem("Usage: /upload <file.pdf> [more.pdf ...]")
			return m, nil
		}
		for _, path := range args {
			if err := api.ValidatePDFPath(path); err != nil {
				m.appendSystem(path + ": " + err.Error())
				return m, nil
			}
		}
		m.appendSystem("Uploading...")
		return m, uploadCmd(m.deps.Client, args, m.activeChat())

	case "/docs":
		chatID := m.activeChat()
		if chatID == "" {
			m.appendSystem("No chat open.")
			return m, nil
		}
		return m, docsCmd(m.deps.Client, chatID)

	default:
		m.appendSystem("Unknown command " + name + ". Try /help.")
		return m, nil
	}
}

// docsCmd fetches the document list of a chat.
func docsCmd(client *api.Client, chatID string) tea.Cmd {
	return func() tea.Msg {
		docs, err := client.ListDocuments(context.Background(), chatID)
		return DocsLoadedMsg{ChatID: chatID, Docs: docs, Err: err}
	}
}
