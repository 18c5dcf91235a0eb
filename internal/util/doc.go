// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across the paperchat client.
//
// String helpers are rune- and width-aware so transcript and status bar
// rendering never splits a multi-byte character. AtomicWriteFile backs the
// persisted session token slot.
package util
