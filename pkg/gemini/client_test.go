package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected error for missing API key")
	}

	client, err := New(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != DefaultModel {
		t.Errorf("expected default model, got %q", client.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req geminiRequest
			json.NewDecoder(r.Body).Decode(&req)

			if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "be brief" {
				t.Errorf("system instruction not forwarded: %+v", req.SystemInstruction)
			}
			if !strings.Contains(req.Contents[0].Parts[0].Text, "hello") {
				t.Errorf("prompt not forwarded: %+v", req.Contents)
			}

			w.Write([]byte(`{
				"candidates": [{"content": {"parts": [{"text": "hi there"}]}}],
				"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 3, "totalTokenCount": 13}
			}`))
		}))
		defer ts.Close()

		client, _ := New(Config{APIKey: "test-key", APIURL: ts.URL})
		resp, err := client.GenerateContent(context.Background(), &Request{System: "be brief", Prompt: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "hi there" {
			t.Errorf("text = %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 13 {
			t.Errorf("usage = %+v", resp.Usage)
		}
	})

	t.Run("api error surfaces", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		client, _ := New(Config{APIKey: "test-key", APIURL: ts.URL})
		if _, err := client.GenerateContent(context.Background(), &Request{Prompt: "hello"}); err == nil {
			t.Error("expected error on 500")
		}
	})

	t.Run("empty candidates yield empty text", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates": []}`))
		}))
		defer ts.Close()

		client, _ := New(Config{APIKey: "test-key", APIURL: ts.URL})
		resp, err := client.GenerateContent(context.Background(), &Request{Prompt: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "" {
			t.Errorf("expected empty text, got %q", resp.Text)
		}
	})
}
