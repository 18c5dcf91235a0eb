// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the paperchat
// TUI: message rendering, the status bar, and the markdown renderer for
// completed answers.
package components
