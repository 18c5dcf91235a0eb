// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth owns the client's authentication state machine: anonymous
// versus authenticated, and the login, register, logout, and session
// restore transitions between them.
package auth
