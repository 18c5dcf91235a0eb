// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// Error is a non-success response from the backend.
//
// Detail carries the server's message ready for display: a plain detail
// string, or for structured validation failures one "<field path> : <message>"
// line per failed field.
type Error struct {
	StatusCode int
	Detail     string
	Fields     []FieldError
}

// FieldError is one entry of a structured validation failure.
type FieldError struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// Path joins the location segments into a dotted field path.
// Segments can be strings or array indices.
func (f FieldError) Path() string {
	parts := make([]string, 0, len(f.Loc))
	for _, seg := range f.Loc {
		switch v := seg.(type) {
		case string:
			parts = append(parts, v)
		case float64:
			parts = append(parts, fmt.Sprintf("%d", int(v)))
		default:
			parts = append(parts, fmt.Sprintf("%v", v))
		}
	}
	return strings.Join(parts, ".")
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// IsAuthError reports whether the error is an authentication or
// authorization failure.
func (e *Error) IsAuthError() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsNotFound reports whether the server could not find the resource.
func (e *Error) IsNotFound() bool {
	return e.StatusCode == 404
}

// errorBody matches the two shapes the backend uses for its detail field:
// a plain string or a list of field errors.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// parseError builds an Error from a non-success response body. Bodies that
// are not JSON, or JSON without a detail field, fall back to a generic
// status message so a broken proxy page never reaches the transcript raw.
func parseError(statusCode int, body []byte) *Error {
	apiErr := &Error{StatusCode: statusCode}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return apiErr
	}

	var plain string
	if err := json.Unmarshal(eb.Detail, &plain); err == nil {
		apiErr.Detail = plain
		return apiErr
	}

	var fields []FieldError
	if err := json.Unmarshal(eb.Detail, &fields); err == nil {
		apiErr.Fields = fields
		lines := make([]string, 0, len(fields))
		for _, f := range fields {
			lines = append(lines, f.Path()+" : "+f.Msg)
		}
		apiErr.Detail = strings.Join(lines, "\n")
	}
	return apiErr
}
