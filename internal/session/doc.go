// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks the client's session state: the access token and
// the currently open chat. The token is persisted under the config
// directory so sessions survive restarts; everything else lives in memory.
package session
