package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"testing"

	goopenai "github.com/sashabaranov/go-openai"

	"agent-router/pkg/gemini"
	"agent-router/pkg/openai"
)

type fakeOpenAI struct {
	lastReq *openai.Request
	resp    *openai.Response
	err     error
}

func (f *fakeOpenAI) GenerateContent(ctx context.Context, req *openai.Request) (*openai.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

func (f *fakeOpenAI) Model() string { return "fake-model" }

type fakeGemini struct {
	lastReq *gemini.Request
	resp    *gemini.Response
	err     error
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

func (f *fakeGemini) Model() string { return "gemini-fake" }

func TestOpenAIAdapter(t *testing.T) {
	client := &fakeOpenAI{resp: &openai.Response{
		Content: openai.Content{Parts: []openai.Part{
			{FunctionCall: &openai.FunctionCall{ID: "call_9", Name: "search_internet", Args: map[string]interface{}{"user_query": "go"}}},
		}},
	}}
	adapter := NewOpenAIAdapter("deepseek", client)

	req := NewTextRequest("sys", "hello")
	req.Tools = []Tool{{Name: "search_internet", Description: "search"}}

	resp, err := adapter.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.lastReq.SystemInstruction.Parts[0].Text != "sys" {
		t.Errorf("system instruction not forwarded: %+v", client.lastReq.SystemInstruction)
	}
	if len(client.lastReq.Tools) != 1 || client.lastReq.Tools[0].Name != "search_internet" {
		t.Errorf("tools not forwarded: %+v", client.lastReq.Tools)
	}
	if resp.ProviderName != "deepseek" || adapter.Name() != "deepseek" {
		t.Errorf("expected vendor label deepseek, got %s", resp.ProviderName)
	}
	if resp.ModelName != "fake-model" {
		t.Errorf("expected client model, got %s", resp.ModelName)
	}
	if resp.Usage == nil {
		t.Fatal("expected non-nil usage")
	}

	calls := resp.FunctionCalls()
	if len(calls) != 1 || calls[0].ID != "call_9" || calls[0].Args["user_query"] != "go" {
		t.Errorf("unexpected function calls: %+v", calls)
	}
}

func TestGeminiAdapter(t *testing.T) {
	client := &fakeGemini{resp: &gemini.Response{
		Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: "hello back"}}},
		Usage:   &gemini.Usage{InputTokens: 2, OutputTokens: 3, TotalTokens: 5},
	}}
	adapter := NewGeminiAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), NewTextRequest("", "hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.lastReq.SystemInstruction != nil {
		t.Errorf("expected no system instruction, got %+v", client.lastReq.SystemInstruction)
	}
	if client.lastReq.Tools != nil {
		t.Errorf("expected no tools, got %+v", client.lastReq.Tools)
	}
	if resp.Text() != "hello back" || resp.Content.Role != "assistant" {
		t.Errorf("unexpected content: %+v", resp.Content)
	}
	if resp.Usage.TotalTokens != 5 || resp.ProviderName != "gemini" {
		t.Errorf("unexpected response metadata: %+v", resp)
	}
}

func TestAdapters_ClassifyErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider Provider
		want     error
	}{
		{
			name:     "gemini rate limit",
			provider: NewGeminiAdapter(&fakeGemini{err: fmt.Errorf("generate: %w", &gemini.APIError{StatusCode: 429, Message: "quota"})}),
			want:     ErrProviderRateLimited,
		},
		{
			name:     "gemini bad request",
			provider: NewGeminiAdapter(&fakeGemini{err: &gemini.APIError{StatusCode: 400, Message: "bad"}}),
			want:     ErrInvalidRequest,
		},
		{
			name:     "gemini deadline",
			provider: NewGeminiAdapter(&fakeGemini{err: context.DeadlineExceeded}),
			want:     ErrProviderTimeout,
		},
		{
			name:     "openai rate limit",
			provider: NewOpenAIAdapter("qwen", &fakeOpenAI{err: &goopenai.APIError{HTTPStatusCode: 429, Message: "slow down"}}),
			want:     ErrProviderRateLimited,
		},
		{
			name:     "openai unprocessable",
			provider: NewOpenAIAdapter("openai", &fakeOpenAI{err: &goopenai.RequestError{HTTPStatusCode: 422, Err: errors.New("schema")}}),
			want:     ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.provider.GenerateContent(context.Background(), NewTextRequest("", "hi"))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			var pe *ProviderError
			if !errors.As(err, &pe) || pe.Provider != tt.provider.Name() {
				t.Errorf("expected ProviderError from %s, got %#v", tt.provider.Name(), err)
			}
		})
	}
}
