// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns raw answer text from the server into a display
// structure: the prose body with server boilerplate stripped, plus the
// parsed citation list.
//
// Render is pure and safe on partial input, so the UI can call it on the
// stream buffer after every chunk without special-casing incomplete text.
package render
