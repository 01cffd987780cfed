package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIProvider_SetModel(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{Model: "qwen-plus"})
	if p.CurrentModel() != "qwen-plus" {
		t.Fatalf("CurrentModel=%q", p.CurrentModel())
	}
	if err := p.SetModel("  "); err == nil {
		t.Fatalf("SetModel(blank) should fail")
	}
	if err := p.SetModel("qwen-turbo"); err != nil {
		t.Fatalf("SetModel: %v", err)
	}
	if p.CurrentModel() != "qwen-turbo" {
		t.Fatalf("CurrentModel=%q after SetModel", p.CurrentModel())
	}
}

func TestOpenAIProvider_Complete(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path=%q", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"ok\":true}"}}]}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider(OpenAIConfig{BaseURL: srv.URL, APIKey: "test", Model: "m1"})
	out, err := p.Complete(context.Background(), Request{
		System:   "you are a zen oracle",
		Prompt:   "hello",
		JSONMode: true,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != `{"ok":true}` {
		t.Fatalf("Complete=%q", out)
	}

	if gotBody["model"] != "m1" {
		t.Fatalf("request model=%v", gotBody["model"])
	}
	rf, _ := gotBody["response_format"].(map[string]any)
	if rf == nil || rf["type"] != "json_object" {
		t.Fatalf("response_format=%v, want json_object", gotBody["response_format"])
	}
	msgs, _ := gotBody["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("messages len=%d, want system+user", len(msgs))
	}
}

func TestOpenAIProvider_CompleteHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewOpenAIProvider(OpenAIConfig{BaseURL: srv.URL, Model: "m1"})
	if _, err := p.Complete(context.Background(), Request{Prompt: "hi"}); err == nil {
		t.Fatalf("Complete should surface HTTP errors")
	}
}
