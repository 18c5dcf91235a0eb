// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"reflect"
	"testing"
)

func TestRenderFullAnswer(t *testing.T) {
	raw := "Answer: The sky is blue because of Rayleigh scattering.\n\nSources:\n1. physics.pdf, page 12\n2. optics.pdf, page 3\n"

	got := Render(raw)

	if got.Body != "The sky is blue because of Rayleigh scattering." {
		t.Errorf("Body = %q", got.Body)
	}
	want := []string{"1. physics.pdf, page 12", "2. optics.pdf, page 3"}
	if !reflect.DeepEqual(got.Citations, want) {
		t.Errorf("Citations = %#v, want %#v", got.Citations, want)
	}
}

func TestRenderNoSources(t *testing.T) {
	got := Render("Answer: Just a plain answer.")

	if got.Body != "Just a plain answer." {
		t.Errorf("Body = %q", got.Body)
	}
	if got.Citations != nil {
		t.Errorf("Citations = %#v, want nil", got.Citations)
	}
}

func TestRenderMidMarkerPrefix(t *testing.T) {
	// A stream buffer can end partway through the Sources: marker. The
	// partial marker stays in the body until the rest arrives.
	got := Render("Answer: The sky is blue. Sour")

	if got.Body != "The sky is blue. Sour" {
		t.Errorf("Body = %q", got.Body)
	}
	if got.Citations != nil {
		t.Errorf("Citations = %#v, want nil", got.Citations)
	}

	// Completing the marker moves everything after it into citations.
	got = Render("Answer: The sky is blue. Sources:\n1. doc.pdf, page 2")
	if got.Body != "The sky is blue." {
		t.Errorf("Body = %q", got.Body)
	}
	if !reflect.DeepEqual(got.Citations, []string{"1. doc.pdf, page 2"}) {
		t.Errorf("Citations = %#v", got.Citations)
	}
}

func TestRenderEmptyAndBoilerplateOnly(t *testing.T) {
	for _, raw := range []string{"", "Answer:", "Answer: \n\nSources:\n"} {
		got := Render(raw)
		if got.Body != "" {
			t.Errorf("Render(%q).Body = %q, want empty", raw, got.Body)
		}
		if len(got.Citations) != 0 {
			t.Errorf("Render(%q).Citations = %#v, want empty", raw, got.Citations)
		}
	}
}

func TestRenderCollapsesCitationWhitespace(t *testing.T) {
	raw := "Answer: x\n\nSources:\n1. a.pdf,\n   page 1\n2. b.pdf, page 2"

	got := Render(raw)

	want := []string{"1. a.pdf, page 1", "2. b.pdf, page 2"}
	if !reflect.DeepEqual(got.Citations, want) {
		t.Errorf("Citations = %#v, want %#v", got.Citations, want)
	}
}

func TestRenderUnnumberedSources(t *testing.T) {
	got := Render("Answer: x\n\nSources:\nsome unstructured source text")

	if !reflect.DeepEqual(got.Citations, []string{"some unstructured source text"}) {
		t.Errorf("Citations = %#v", got.Citations)
	}
}

func TestRenderIdempotentOnBody(t *testing.T) {
	raw := "Answer: The sky is blue.\n\nSources:\n1. doc.pdf, page 2"

	first := Render(raw)
	second := Render(first.Body)

	if second.Body != first.Body {
		t.Errorf("second Body = %q, want %q", second.Body, first.Body)
	}
	if second.Citations != nil {
		t.Errorf("second Citations = %#v, want nil", second.Citations)
	}
}

func TestRenderGrowingPrefixesNeverPanic(t *testing.T) {
	raw := "Answer: The sky is blue.\n\nSources:\n1. doc.pdf, page 2\n2. other.pdf, page 9"
	for i := 0; i <= len(raw); i++ {
		_ = Render(raw[:i])
	}
}
