// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chats, documents, and
// transcript messages.
//
// The server owns chats and documents; the client holds read-only
// projections fetched on demand. The Transcript is the client's ordered
// view of one chat's messages, append-only except for the single message
// that may be streaming at any time.
package model
