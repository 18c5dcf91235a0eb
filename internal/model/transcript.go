// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is the ordered sequence of messages shown for the active chat.
//
// It is append-only from the client's perspective, with one exception: the
// last message may be mutated in place while it is streaming. At most one
// message is streaming at any time, and it is always the last element; the
// append operations below maintain that invariant.
//
// A Transcript is only ever touched from the Bubble Tea update loop, so no
// locking is needed.
type Transcript struct {
	messages []*Message
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds a message to the end of the transcript. Any message still
// marked streaming is finalized first so the invariant holds even when a
// caller appends while a placeholder is live.
func (t *Transcript) Append(m *Message) {
	if last := t.Last(); last != nil && last.IsStreaming {
		last.FinalizeStream()
	}
	t.messages = append(t.messages, m)
}

// BeginStreaming appends an empty assistant placeholder in streaming state
// and returns it.
func (t *Transcript) BeginStreaming() *Message {
	m := NewStreamingMessage()
	t.Append(m)
	return m
}

// Streaming returns the message currently being streamed, or nil.
func (t *Transcript) Streaming() *Message {
	if last := t.Last(); last != nil && last.IsStreaming {
		return last
	}
	return nil
}

// FinalizeStreaming marks the in-flight message, if any, as complete.
func (t *Transcript) FinalizeStreaming() {
	if m := t.Streaming(); m != nil {
		m.FinalizeStream()
	}
}

// DropStreaming removes the in-flight placeholder, if any. Used when a send
// is rejected before any content arrived, so the transcript never shows an
// empty assistant entry.
func (t *Transcript) DropStreaming() {
	if t.Streaming() != nil {
		t.messages = t.messages[:len(t.messages)-1]
	}
}

// Last returns the last message, or nil for an empty transcript.
func (t *Transcript) Last() *Message {
	if len(t.messages) == 0 {
		return nil
	}
	return t.messages[len(t.messages)-1]
}

// Messages returns the messages in order. The slice is shared; callers must
// not reorder or remove elements.
func (t *Transcript) Messages() []*Message {
	return t.messages
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Clear removes all messages. Used when switching chats: the transcript is
// replaced wholesale, never merged.
func (t *Transcript) Clear() {
	t.messages = nil
}
