package translator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func geminiConfig(key string) ModelConfig {
	return ModelConfig{Provider: ProviderGemini, Model: "gemini-2.5-flash", APIKey: key, Label: "Gemini 2.5 Flash"}
}

func TestGeminiService_New(t *testing.T) {
	svc := NewGeminiService("")
	if svc.baseURL != DefaultGeminiBaseURL {
		t.Errorf("expected default base URL, got %q", svc.baseURL)
	}
	if svc.client.Timeout != 120*time.Second {
		t.Errorf("expected 120s timeout, got %v", svc.client.Timeout)
	}
}

func TestGeminiService_Translate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/gemini-2.5-flash:generateContent" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "gm-test" {
			t.Errorf("expected key in query, got %q", got)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("gemini must not send an Authorization header")
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.SystemInstruction.Parts) != 1 || req.SystemInstruction.Parts[0].Text != "Translate." {
			t.Errorf("unexpected system instruction %+v", req.SystemInstruction)
		}
		if len(req.Contents) != 1 || req.Contents[0].Role != "user" || req.Contents[0].Parts[0].Text != "Ciao" {
			t.Errorf("unexpected contents %+v", req.Contents)
		}
		if req.GenerationConfig.Temperature != 0.2 {
			t.Errorf("expected temperature 0.2, got %v", req.GenerationConfig.Temperature)
		}

		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "<think>hmm</think>\n Hello "}, {"text": "ignored"}]}}]}`))
	}))
	defer server.Close()

	result, err := NewGeminiService(server.URL).Translate(context.Background(), geminiConfig("gm-test"), TranslateRequest{Instructions: "Translate.", Text: "Ciao"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "Hello" {
		t.Errorf("expected 'Hello', got %q", result.TranslatedText)
	}
	if result.ServiceName != "gemini" {
		t.Errorf("expected service name 'gemini', got %q", result.ServiceName)
	}
}

func TestGeminiService_Translate_BadShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no candidates", body: `{"candidates": []}`},
		{name: "no content", body: `{"candidates": [{"finishReason": "SAFETY"}]}`},
		{name: "no parts", body: `{"candidates": [{"content": {"parts": []}}]}`},
		{name: "no text", body: `{"candidates": [{"content": {"parts": [{"inlineData": {}}]}}]}`},
		{name: "not json", body: `<html>oops</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewGeminiService(server.URL).Translate(context.Background(), geminiConfig("gm-test"), TranslateRequest{Text: "Ciao"})
			if !errors.Is(err, ErrShape) {
				t.Errorf("expected ErrShape, got %v", err)
			}
		})
	}
}

func TestGeminiService_Translate_APIErrorTruncatesBody(t *testing.T) {
	long := strings.Repeat("x", 5000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(long))
	}))
	defer server.Close()

	_, err := NewGeminiService(server.URL).Translate(context.Background(), geminiConfig("gm-test"), TranslateRequest{Text: "Ciao"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Provider != ProviderGemini || apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("unexpected API error %+v", apiErr)
	}
	if len(apiErr.Body) != maxErrorBody+len("...") {
		t.Errorf("expected body truncated to %d bytes, got %d", maxErrorBody, len(apiErr.Body))
	}
}

func TestGeminiService_Translate_NoModel(t *testing.T) {
	cfg := geminiConfig("gm-test")
	cfg.Model = " "
	_, err := NewGeminiService("http://127.0.0.1:0").Translate(context.Background(), cfg, TranslateRequest{Text: "Ciao"})
	if !errors.Is(err, ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
}
