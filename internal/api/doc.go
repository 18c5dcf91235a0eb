// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the HTTP client for the paperchat backend.
//
// All endpoints are JSON over REST except the chat endpoint, which answers
// with a chunked plain-text stream and is consumed through a dedicated
// streaming client with no request timeout. Cancellation of a stream is
// always context-driven.
package api
