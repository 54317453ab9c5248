package tools_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"agent-router/internal/agent"
	"agent-router/internal/agent/tools"
	"agent-router/internal/docqa"
	"agent-router/internal/summary"
	"agent-router/internal/webqa"
)

type mockSummaryUseCase struct {
	output    summary.SummarizeOutput
	err       error
	lastInput summary.SummarizeInput
}

func (m *mockSummaryUseCase) Summarize(ctx context.Context, input summary.SummarizeInput) (summary.SummarizeOutput, error) {
	m.lastInput = input
	return m.output, m.err
}

type mockDocqaUseCase struct {
	err       error
	lastInput docqa.AnswerInput
}

func (m *mockDocqaUseCase) Answer(ctx context.Context, input docqa.AnswerInput) (docqa.AnswerOutput, error) {
	m.lastInput = input
	if m.err != nil {
		return docqa.AnswerOutput{}, m.err
	}
	return docqa.AnswerOutput{Query: input.Query, Response: "from docs"}, nil
}

type mockWebqaUseCase struct {
	source *string
	err    error
}

func (m *mockWebqaUseCase) Search(ctx context.Context, input webqa.SearchInput) (webqa.SearchOutput, error) {
	if m.err != nil {
		return webqa.SearchOutput{}, m.err
	}
	return webqa.SearchOutput{Query: input.Query, Response: "from web", Source: m.source}, nil
}

func TestSummarizeDocumentTool(t *testing.T) {
	uc := &mockSummaryUseCase{output: summary.SummarizeOutput{Summary: "s"}}
	tool := tools.NewSummarizeDocumentTool(uc)

	if tool.Selection() != agent.SelectSummarize {
		t.Errorf("unexpected selection %s", tool.Selection())
	}

	res, err := tool.Invoke(context.Background(), map[string]interface{}{"document_text": "doc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := res.(agent.SummaryResult)
	if !ok {
		t.Fatalf("expected SummaryResult, got %T", res)
	}
	if got.Summary != "s" || got.Keywords == nil {
		t.Errorf("unexpected result %+v", got)
	}
	if uc.lastInput.Document != "doc" {
		t.Errorf("document not forwarded: %q", uc.lastInput.Document)
	}

	if _, err := tool.Invoke(context.Background(), map[string]interface{}{}); err == nil {
		t.Error("expected error for missing document_text")
	}
	if _, err := tool.Invoke(context.Background(), map[string]interface{}{"document_text": 42.0}); err == nil {
		t.Error("expected error for non-string document_text")
	}
}

func TestAnswerFromDocumentsTool(t *testing.T) {
	uc := &mockDocqaUseCase{}
	tool := tools.NewAnswerFromDocumentsTool(uc)

	res, err := tool.Invoke(context.Background(), map[string]interface{}{
		"user_query":     "q",
		"documents_list": []interface{}{"d1", "d2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.(agent.AnswerResult); got.Query != "q" || got.Text != "from docs" {
		t.Errorf("unexpected result %+v", got)
	}
	if !reflect.DeepEqual(uc.lastInput.Documents, []string{"d1", "d2"}) {
		t.Errorf("documents not forwarded: %v", uc.lastInput.Documents)
	}

	tests := map[string]map[string]interface{}{
		"missing documents":  {"user_query": "q"},
		"missing query":      {"documents_list": []interface{}{"d"}},
		"non-string entry":   {"user_query": "q", "documents_list": []interface{}{"d", 1.0}},
		"documents not list": {"user_query": "q", "documents_list": "d"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := tool.Invoke(context.Background(), args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSearchInternetTool(t *testing.T) {
	src := "https://example.com"
	tool := tools.NewSearchInternetTool(&mockWebqaUseCase{source: &src})

	res, err := tool.Invoke(context.Background(), map[string]interface{}{"user_query": "news"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := res.(agent.WebAnswerResult)
	if got.Source == nil || *got.Source != src || got.Text != "from web" {
		t.Errorf("unexpected result %+v", got)
	}

	failing := tools.NewSearchInternetTool(&mockWebqaUseCase{err: errors.New("no key")})
	if _, err := failing.Invoke(context.Background(), map[string]interface{}{"user_query": "news"}); err == nil {
		t.Error("expected use case error to propagate")
	}
}

func TestNewRegistry(t *testing.T) {
	registry := tools.NewRegistry(&mockSummaryUseCase{}, &mockDocqaUseCase{}, &mockWebqaUseCase{})

	defs := registry.ToFunctionDefinitions()
	want := []string{"summarize_document", "answer_query_from_documents", "search_internet"}
	if len(defs) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(defs))
	}
	for i, name := range want {
		if defs[i].Name != name {
			t.Errorf("tool %d = %s, want %s", i, defs[i].Name, name)
		}
		if defs[i].Parameters["type"] != "object" {
			t.Errorf("tool %s has no object schema", name)
		}
	}
}
