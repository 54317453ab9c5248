package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agent-router/pkg/openai"
)

func TestNew_Validation(t *testing.T) {
	if _, err := openai.New(openai.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}

	client, err := openai.New(openai.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != openai.DefaultModel {
		t.Errorf("expected default model, got %s", client.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotBody = nil
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		if _, ok := gotBody["tools"]; ok {
			w.Write([]byte(`{
				"id": "1", "object": "chat.completion", "model": "test-model",
				"choices": [{"index": 0, "finish_reason": "tool_calls", "message": {
					"role": "assistant",
					"tool_calls": [{"id": "call_1", "type": "function", "function": {
						"name": "summarize_document", "arguments": "{\"document_text\": \"abc\"}"
					}}]
				}}],
				"usage": {"prompt_tokens": 5, "completion_tokens": 1, "total_tokens": 6}
			}`))
			return
		}
		w.Write([]byte(`{
			"id": "2", "object": "chat.completion", "model": "test-model",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "hi there"}}],
			"usage": {"prompt_tokens": 4, "completion_tokens": 2, "total_tokens": 6}
		}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "secret", Model: "test-model", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("text with system instruction", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &openai.Request{
			SystemInstruction: &openai.Content{Parts: []openai.Part{{Text: "be brief"}}},
			Messages:          []openai.Content{{Role: "user", Parts: []openai.Part{{Text: "hello"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotAuth != "Bearer secret" {
			t.Errorf("unexpected auth header: %q", gotAuth)
		}
		messages := gotBody["messages"].([]interface{})
		if len(messages) != 2 || messages[0].(map[string]interface{})["role"] != "system" {
			t.Errorf("expected system message first, got %v", messages)
		}
		if resp.Content.Parts[0].Text != "hi there" {
			t.Errorf("unexpected text: %q", resp.Content.Parts[0].Text)
		}
		if resp.Usage.TotalTokens != 6 {
			t.Errorf("expected 6 tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("tool call", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &openai.Request{
			Messages: []openai.Content{{Role: "user", Parts: []openai.Part{{Text: "summarize abc"}}}},
			Tools:    []openai.Tool{{Name: "summarize_document", Description: "d", Parameters: map[string]interface{}{"type": "object"}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].FunctionCall == nil {
			t.Fatalf("expected one function call part, got %+v", resp.Content.Parts)
		}
		fc := resp.Content.Parts[0].FunctionCall
		if fc.Name != "summarize_document" || fc.Args["document_text"] != "abc" || fc.ID != "call_1" {
			t.Errorf("unexpected function call: %+v", fc)
		}
	})
}

func TestStatusCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "Rate limit reached", "type": "requests", "code": "rate_limit_exceeded"}}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "k", Model: "test-model", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.GenerateContent(context.Background(), &openai.Request{
		Messages: []openai.Content{{Role: "user", Parts: []openai.Part{{Text: "hi"}}}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := openai.StatusCode(err); got != http.StatusTooManyRequests {
		t.Errorf("StatusCode() = %d, want 429", got)
	}
	if got := openai.StatusCode(context.Canceled); got != 0 {
		t.Errorf("StatusCode(non-HTTP error) = %d, want 0", got)
	}
}

func TestGenerateContent_MalformedToolArguments(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "3", "object": "chat.completion", "model": "test-model",
			"choices": [{"index": 0, "finish_reason": "tool_calls", "message": {
				"role": "assistant",
				"tool_calls": [{"id": "call_2", "type": "function", "function": {"name": "search_internet", "arguments": "{user_query:"}}]
			}}]
		}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "k", Model: "test-model", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &openai.Request{
		Messages: []openai.Content{{Role: "user", Parts: []openai.Part{{Text: "news?"}}}},
		Tools:    []openai.Tool{{Name: "search_internet", Parameters: map[string]any{"type": "object"}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fc := resp.Content.Parts[0].FunctionCall
	if fc == nil || fc.Name != "search_internet" {
		t.Fatalf("expected search_internet call, got %+v", resp.Content.Parts)
	}
	if fc.Args == nil || len(fc.Args) != 0 {
		t.Errorf("expected empty args for malformed JSON, got %v", fc.Args)
	}
}

func TestGenerateContent_TemperatureAlwaysSent(t *testing.T) {
	for name, temperature := range map[string]float64{"zero": 0, "configured": 0.7} {
		t.Run(name, func(t *testing.T) {
			var sent map[string]any
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewDecoder(r.Body).Decode(&sent)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"id": "4", "object": "chat.completion", "model": "test-model",
					"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "ok"}}]}`))
			}))
			defer ts.Close()

			client, err := openai.New(openai.Config{APIKey: "k", Model: "test-model", BaseURL: ts.URL})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_, err = client.GenerateContent(context.Background(), &openai.Request{
				Messages:    []openai.Content{{Role: "user", Parts: []openai.Part{{Text: "hi"}}}},
				Temperature: temperature,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, ok := sent["temperature"].(float64)
			if !ok {
				t.Fatalf("temperature missing from request: %v", sent)
			}
			if diff := got - temperature; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("temperature = %v, want %v", got, temperature)
			}
		})
	}
}
