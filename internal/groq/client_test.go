package groq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClient_EmptyKey(t *testing.T) {
	if c := NewClient(""); c != nil {
		t.Fatal("empty key should yield a nil client")
	}
}

func TestComplete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization header = %q", got)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"A Title"}}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key").WithBaseURL(srv.URL)
	out, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, 100, 0.9)
	if err != nil {
		t.Fatal(err)
	}
	if out != "A Title" {
		t.Fatalf("content = %q", out)
	}
}

func TestComplete_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer srv.Close()

	c := NewClient("bad-key").WithBaseURL(srv.URL)
	_, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, 100, 0.9)
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key").WithBaseURL(srv.URL)
	_, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, 100, 0.9)
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}
