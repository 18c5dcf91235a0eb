// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// SERVER-OWNED PROJECTIONS
// =============================================================================

// Chat is the client's read-only projection of a server-side chat.
// It is fetched on demand and never cached beyond the current view.
type Chat struct {
	ID        string
	Documents []Document
}

// Document is a PDF the server has indexed for a chat. The client's only
// responsibility is to display the filename once the upload is confirmed.
type Document struct {
	ID       string
	Filename string
}
