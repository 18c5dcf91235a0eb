// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, func() string { return token })
}

func TestListChats(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chats" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]ChatSummary{{ID: "c1"}, {ID: "c2"}})
	}), "tok123")

	chats, err := client.ListChats(context.Background())
	if err != nil {
		t.Fatalf("ListChats: %v", err)
	}
	if len(chats) != 2 || chats[0].ID != "c1" {
		t.Errorf("chats = %#v", chats)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestAnonymousRequestOmitsAuthHeader(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Error("anonymous request must not carry an Authorization header")
		}
		json.NewEncoder(w).Encode([]ChatSummary{})
	}), "")

	if _, err := client.ListChats(context.Background()); err != nil {
		t.Fatalf("ListChats: %v", err)
	}
}

func TestListMessages(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/c9/messages" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]ChatMessage{
			{Content: "hi", IsUser: true},
			{Content: "Answer: hello", IsUser: false},
		})
	}), "")

	msgs, err := client.ListMessages(context.Background(), "c9")
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 2 || !msgs[0].IsUser || msgs[1].IsUser {
		t.Errorf("msgs = %#v", msgs)
	}
}

func TestLoginFormEncoded(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/auth/token" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if r.PostForm.Get("username") != "alice" || r.PostForm.Get("password") != "pw" {
			t.Errorf("form = %v", r.PostForm)
		}
		json.NewEncoder(w).Encode(tokenResponse{AccessToken: "tok_new", TokenType: "bearer"})
	}), "")

	tok, err := client.Login(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok != "tok_new" {
		t.Errorf("token = %q", tok)
	}
}

func TestLoginFailureSurfacesDetail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect username or password"})
	}), "")

	_, err := client.Login(context.Background(), "alice", "wrong")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Detail != "Incorrect username or password" {
		t.Errorf("Detail = %q", apiErr.Detail)
	}
	if !apiErr.IsAuthError() {
		t.Error("401 should be an auth error")
	}
}

func TestRegisterValidationErrorFormatting(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": [
			{"loc": ["body", "username"], "msg": "field required"},
			{"loc": ["body", "password"], "msg": "too short"}
		]}`))
	}), "")

	err := client.Register(context.Background(), "", "x")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	want := "body.username : field required\nbody.password : too short"
	if apiErr.Detail != want {
		t.Errorf("Detail = %q, want %q", apiErr.Detail, want)
	}
	if len(apiErr.Fields) != 2 {
		t.Errorf("Fields = %#v", apiErr.Fields)
	}
}

func TestWhoami(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/auth/me" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Not authenticated"})
			return
		}
		json.NewEncoder(w).Encode(whoamiResponse{Username: "alice"})
	}), "tok")

	name, err := client.Whoami(context.Background())
	if err != nil {
		t.Fatalf("Whoami: %v", err)
	}
	if name != "alice" {
		t.Errorf("username = %q", name)
	}
}

func TestNonJSONErrorBodyFallsBack(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}), "")

	_, err := client.ListChats(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "" {
		t.Errorf("Detail = %q, want empty", apiErr.Detail)
	}
}
