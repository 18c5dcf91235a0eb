// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/paperchat/paperchat-tui/internal/api"
	"github.com/paperchat/paperchat-tui/internal/session"
)

// =============================================================================
// AUTH GATEWAY
// =============================================================================

// Mode is the client's authentication state.
type Mode int

const (
	// Anonymous means no valid token is held; the backend still serves
	// unauthenticated chats.
	Anonymous Mode = iota
	// Authenticated means a token was accepted by the server.
	Authenticated
)

func (m Mode) String() string {
	if m == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Gateway mediates between the UI, the auth endpoints, and the session
// store. It owns the mode transitions: the store is only ever updated after
// the server has accepted the operation.
type Gateway struct {
	client *api.Client
	store  *session.Store

	mu       sync.RWMutex
	mode     Mode
	username string
}

// NewGateway creates a gateway in anonymous mode.
func NewGateway(client *api.Client, store *session.Store) *Gateway {
	return &Gateway{client: client, store: store}
}

// Mode returns the current authentication mode.
func (g *Gateway) Mode() Mode {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.mode
}

// Username returns the logged-in username, or "" when anonymous.
func (g *Gateway) Username() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.username
}

// Login exchanges credentials for a token and enters authenticated mode.
// On failure the session store is left untouched and the server's detail
// message is returned for display. Never retried automatically.
func (g *Gateway) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	token, err := g.client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := g.store.SetToken(token); err != nil {
		return err
	}

	g.setMode(Authenticated, username)
	return nil
}

// Register creates an account. It does not log in afterwards; the user
// logs in explicitly. Validation failures arrive already formatted as one
// "<field path> : <message>" line per field.
func (g *Gateway) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}
	return g.client.Register(ctx, username, password)
}

// Logout drops the token and the open chat and returns to anonymous mode.
// The backend keeps serving unauthenticated requests, so listing chats after
// logout is valid.
func (g *Gateway) Logout() error {
	g.setMode(Anonymous, "")
	g.store.ClearActiveChat()
	return g.store.ClearToken()
}

// Restore validates a previously persisted token at startup. Any failure
// silently leaves the client anonymous; a dead token must never block
// startup. A token the server rejects is cleared from the store so later
// requests go out without an Authorization header, while a network failure
// keeps it for the next start.
func (g *Gateway) Restore(ctx context.Context) Mode {
	if !g.store.HasToken() {
		return Anonymous
	}

	username, err := g.client.Whoami(ctx)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.IsAuthError() {
			g.store.ClearToken()
		}
		g.setMode(Anonymous, "")
		return Anonymous
	}

	g.setMode(Authenticated, username)
	return Authenticated
}

func (g *Gateway) setMode(mode Mode, username string) {
	g.mu.Lock()
	g.mode = mode
	g.username = username
	g.mu.Unlock()
}
