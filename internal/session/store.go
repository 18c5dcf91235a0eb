// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/paperchat/paperchat-tui/internal/util"
)

// =============================================================================
// SESSION STORE
// =============================================================================

// Store holds the client's session state: the access token and the chat the
// user currently has open. Both are independent; clearing one never touches
// the other.
//
// The token is persisted to disk so a restart can resume the session. The
// active chat is in-memory only; the server is the source of truth for which
// chats exist.
type Store struct {
	mu sync.RWMutex

	token        string
	activeChatID string

	// tokenPath is where the token is persisted; empty disables persistence.
	tokenPath string
}

// New creates a session store that persists the token at tokenPath.
// Pass an empty path for an in-memory store.
func New(tokenPath string) *Store {
	return &Store{tokenPath: tokenPath}
}

// LoadToken reads a previously persisted token from disk into the store.
// A missing file is not an error; the store simply stays anonymous.
func (s *Store) LoadToken() error {
	if s.tokenPath == "" {
		return nil
	}
	data, err := os.ReadFile(s.tokenPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read token file: %w", err)
	}

	s.mu.Lock()
	s.token = strings.TrimSpace(string(data))
	s.mu.Unlock()
	return nil
}

// Token returns the current access token, or "" when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// HasToken reports whether a token is present.
func (s *Store) HasToken() bool {
	return s.Token() != ""
}

// SetToken stores the token and persists it to disk before returning, so a
// crash immediately after login still leaves a resumable session.
func (s *Store) SetToken(token string) error {
	if err := s.persistToken(token); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// ClearToken forgets the token and removes the persisted copy.
// The active chat is left untouched.
func (s *Store) ClearToken() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if s.tokenPath == "" {
		return nil
	}
	if err := os.Remove(s.tokenPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// ActiveChat returns the ID of the currently open chat, or "" when none.
func (s *Store) ActiveChat() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeChatID
}

// SetActiveChat records which chat the user has open.
func (s *Store) SetActiveChat(chatID string) {
	s.mu.Lock()
	s.activeChatID = chatID
	s.mu.Unlock()
}

// ClearActiveChat closes the current chat without touching the token.
func (s *Store) ClearActiveChat() {
	s.SetActiveChat("")
}

// persistToken writes the token to disk atomically with owner-only
// permissions. Tokens grant account access and must not be world-readable.
func (s *Store) persistToken(token string) error {
	if s.tokenPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.tokenPath), 0755); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := util.AtomicWriteFile(s.tokenPath, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}
