// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// =============================================================================
// CHAT STREAM
// =============================================================================

// streamChunkSize is the read buffer size for the chat stream. The server
// chunks answers far coarser than this, so each read typically surfaces a
// whole server chunk at once.
const streamChunkSize = 4096

// ErrStreamInterrupted marks a stream that failed after the response status
// was already accepted. Whatever chunks were delivered before the failure
// remain valid partial content.
var ErrStreamInterrupted = errors.New("stream interrupted")

// SendMessage posts a message to a chat and streams the answer.
//
// onChunk is called once per received chunk, in order, from the calling
// goroutine. A non-success status fails before any chunk is delivered; a
// read failure mid-body returns an error wrapping ErrStreamInterrupted.
// Cancel via ctx; the stream has no timeout of its own.
func (c *Client) SendMessage(ctx context.Context, chatID, message string, onChunk func(chunk string)) error {
	body, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/"+chatID, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.streaming.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return parseError(resp.StatusCode, errBody)
	}

	buf := make([]byte, streamChunkSize)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := resp.Body.Read(buf)
		if n > 0 {
			onChunk(string(buf[:n]))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: %v", ErrStreamInterrupted, err)
		}
	}
}
