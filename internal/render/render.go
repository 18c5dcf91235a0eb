// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"regexp"
	"strings"
)

// =============================================================================
// ANSWER RENDERING
// =============================================================================

// sourcesMarker separates the answer body from the citation list in the
// raw text the server streams back.
const sourcesMarker = "Sources:"

// answerPrefix is the boilerplate the server prepends to every answer.
const answerPrefix = "Answer:"

// citationStart matches the "1. ", "2. ", ... markers that begin each
// citation entry after whitespace collapsing.
var citationStart = regexp.MustCompile(`\d+\.\s`)

// whitespaceRun collapses any run of whitespace, including the newlines the
// server puts between citation entries, into a single space.
var whitespaceRun = regexp.MustCompile(`\s+`)

// Rendered is the display form of a raw answer: the prose body plus the
// parsed citation entries, if any.
type Rendered struct {
	Body      string
	Citations []string
}

// Render parses a raw answer string into its body and citations.
//
// It is pure and idempotent, and safe to call on any prefix of the final
// text: during streaming the buffer may end mid-word or even mid-marker
// ("...Sour"), in which case the partial marker simply stays in the body
// until enough bytes arrive to complete it.
func Render(raw string) Rendered {
	body := raw
	var citations []string

	if idx := strings.Index(raw, sourcesMarker); idx >= 0 {
		body = raw[:idx]
		citations = parseCitations(raw[idx+len(sourcesMarker):])
	}

	body = strings.TrimPrefix(strings.TrimSpace(body), answerPrefix)
	body = strings.TrimSpace(body)

	return Rendered{Body: body, Citations: citations}
}

// parseCitations splits the text after the Sources: marker into individual
// entries. The server emits one numbered entry per line; after collapsing
// whitespace the entries are recovered by cutting at each "N. " marker.
func parseCitations(text string) []string {
	text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	if text == "" {
		return nil
	}

	starts := citationStart.FindAllStringIndex(text, -1)
	if len(starts) == 0 {
		return []string{text}
	}

	var entries []string
	if starts[0][0] > 0 {
		if head := strings.TrimSpace(text[:starts[0][0]]); head != "" {
			entries = append(entries, head)
		}
	}
	for i, loc := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		if entry := strings.TrimSpace(text[loc[0]:end]); entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}
