// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

// =============================================================================
// WIRE TYPES
// =============================================================================

// ChatSummary is one entry of the chat directory listing.
type ChatSummary struct {
	ID string `json:"id"`
}

// ChatMessage is one stored message from a chat's history.
type ChatMessage struct {
	Content string `json:"content"`
	IsUser  bool   `json:"is_user"`
}

// DocumentInfo is one indexed PDF of a chat.
type DocumentInfo struct {
	Filename string `json:"filename"`
}

// chatRequest is the body of a send-message call.
type chatRequest struct {
	Message string `json:"message"`
}

// registerRequest is the body of a register call.
type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenResponse is the success body of the login endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// whoamiResponse is the body of the who-am-I endpoint.
type whoamiResponse struct {
	Username string `json:"username"`
}

// UploadResult is the server's confirmation of a single PDF upload.
// Older servers omit chat_id and return only pdf_id.
type UploadResult struct {
	PDFID  string `json:"pdf_id"`
	ChatID string `json:"chat_id"`
}
