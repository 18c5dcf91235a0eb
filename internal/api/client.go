// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// =============================================================================
// HTTP CLIENT
// =============================================================================

// sharedStreamingClient is used for the chat stream. It deliberately has no
// timeout: an answer can stream for minutes, and cancellation is handled
// through the request context instead.
var sharedStreamingClient = &http.Client{}

// TokenSource supplies the current bearer token, or "" when anonymous.
// It is consulted on every request so a login mid-session takes effect
// without rebuilding the client.
type TokenSource func() string

// Client talks to the paperchat backend.
type Client struct {
	rest      *resty.Client
	streaming *http.Client
	baseURL   string
	token     TokenSource
}

// New creates a backend client for baseURL. The timeout applies to every
// request except the chat stream.
func New(baseURL string, timeout time.Duration, token TokenSource) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		rest:      resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		streaming: sharedStreamingClient,
		baseURL:   baseURL,
		token:     token,
	}
}

// request starts a resty request with context and, when a token is present,
// the Authorization header.
func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.rest.R().SetContext(ctx)
	if tok := c.token(); tok != "" {
		req.SetHeader("Authorization", "Bearer "+tok)
	}
	return req
}

// decode checks the response status and unmarshals a success body into out.
// out may be nil when the caller only cares about success.
func decode(res *resty.Response, out any) error {
	if !res.IsSuccess() {
		return parseError(res.StatusCode(), res.Body())
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(res.Body(), out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// =============================================================================
// CHAT DIRECTORY
// =============================================================================

// ListChats fetches the chat directory.
func (c *Client) ListChats(ctx context.Context) ([]ChatSummary, error) {
	res, err := c.request(ctx).Get("/v1/chats")
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	var chats []ChatSummary
	if err := decode(res, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// ListMessages fetches the stored message history of a chat.
func (c *Client) ListMessages(ctx context.Context, chatID string) ([]ChatMessage, error) {
	res, err := c.request(ctx).Get("/v1/chat/" + chatID + "/messages")
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	var msgs []ChatMessage
	if err := decode(res, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// ListDocuments fetches the PDFs indexed for a chat.
func (c *Client) ListDocuments(ctx context.Context, chatID string) ([]DocumentInfo, error) {
	res, err := c.request(ctx).Get("/v1/chat/" + chatID + "/pdfs")
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	var docs []DocumentInfo
	if err := decode(res, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// =============================================================================
// AUTH ENDPOINTS
// =============================================================================

// Register creates a new account. It does not log the account in.
func (c *Client) Register(ctx context.Context, username, password string) error {
	res, err := c.request(ctx).
		SetBody(registerRequest{Username: username, Password: password}).
		Post("/v1/auth/register")
	if err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}
	return decode(res, nil)
}

// Login exchanges credentials for a bearer token. The endpoint speaks
// OAuth2 password flow, so the body is form-encoded rather than JSON.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	res, err := c.request(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		Post("/v1/auth/token")
	if err != nil {
		return "", fmt.Errorf("failed to log in: %w", err)
	}
	var tok tokenResponse
	if err := decode(res, &tok); err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// Whoami validates the current token and returns the account's username.
func (c *Client) Whoami(ctx context.Context) (string, error) {
	res, err := c.request(ctx).Get("/v1/auth/me")
	if err != nil {
		return "", fmt.Errorf("failed to validate session: %w", err)
	}
	var who whoamiResponse
	if err := decode(res, &who); err != nil {
		return "", err
	}
	return who.Username, nil
}
