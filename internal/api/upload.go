// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// =============================================================================
// PDF UPLOAD
// =============================================================================

// FileError records a single file that failed during a batch upload.
type FileError struct {
	Filename string
	Err      error
}

func (f FileError) Error() string {
	return fmt.Sprintf("%s: %v", f.Filename, f.Err)
}

// BatchResult is the outcome of uploading a set of files. A batch succeeds
// partially: failed files are reported but never abort the remaining ones.
type BatchResult struct {
	Succeeded []string
	Failed    []FileError

	// ChatID is the chat the documents were attached to. When the batch
	// started without a chat, the server assigns one on the first
	// successful upload and every later file is pinned to it.
	ChatID string
}

// ValidatePDFPath rejects files the server would refuse anyway, so the
// obvious mistakes never cost a network round trip.
func ValidatePDFPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("no file selected")
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("only PDF files are allowed")
	}
	return nil
}

// Upload sends one PDF to the server. chatID may be empty to let the server
// create a new chat for the document.
func (c *Client) Upload(ctx context.Context, path, chatID string) (UploadResult, error) {
	if err := ValidatePDFPath(path); err != nil {
		return UploadResult{}, err
	}

	req := c.request(ctx).SetFile("file", path)
	if chatID != "" {
		req.SetFormData(map[string]string{"chat_id": chatID})
	}

	res, err := req.Post("/v1/pdf")
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to upload %s: %w", filepath.Base(path), err)
	}

	var result UploadResult
	if err := decode(res, &result); err != nil {
		return UploadResult{}, err
	}
	// Legacy servers answer with pdf_id only; the chat is then keyed by it.
	if result.ChatID == "" {
		result.ChatID = result.PDFID
	}
	return result, nil
}

// UploadBatch uploads files sequentially. Each failure is recorded and the
// batch moves on; the first success pins the chat every later file joins.
func (c *Client) UploadBatch(ctx context.Context, paths []string, chatID string) BatchResult {
	result := BatchResult{ChatID: chatID}

	for _, path := range paths {
		if ctx.Err() != nil {
			result.Failed = append(result.Failed, FileError{
				Filename: filepath.Base(path),
				Err:      ctx.Err(),
			})
			continue
		}

		up, err := c.Upload(ctx, path, result.ChatID)
		if err != nil {
			result.Failed = append(result.Failed, FileError{
				Filename: filepath.Base(path),
				Err:      err,
			})
			continue
		}

		result.Succeeded = append(result.Succeeded, filepath.Base(path))
		if result.ChatID == "" {
			result.ChatID = up.ChatID
		}
	}

	return result
}
