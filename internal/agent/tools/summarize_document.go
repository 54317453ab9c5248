package tools

import (
	"context"

	"agent-router/internal/agent"
	"agent-router/internal/summary"
)

// SummarizeDocumentTool summarizes a document and extracts its keywords.
type SummarizeDocumentTool struct {
	uc summary.UseCase
}

// NewSummarizeDocumentTool creates a new summarize document tool.
func NewSummarizeDocumentTool(uc summary.UseCase) agent.Capability {
	return &SummarizeDocumentTool{uc: uc}
}

func (t *SummarizeDocumentTool) Selection() agent.Selection {
	return agent.SelectSummarize
}

func (t *SummarizeDocumentTool) Description() string {
	return "Summarizes a document and extracts keywords. Use this tool when the user provides a document or text and asks for a summary or keywords. Input is the full document text."
}

func (t *SummarizeDocumentTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"document_text": map[string]interface{}{
				"type":        "string",
				"description": "The full text of the document to summarize",
			},
		},
		"required": []string{"document_text"},
	}
}

func (t *SummarizeDocumentTool) Invoke(ctx context.Context, args map[string]interface{}) (agent.Result, error) {
	document, err := stringArg(args, "document_text")
	if err != nil {
		return nil, err
	}

	output, err := t.uc.Summarize(ctx, summary.SummarizeInput{Document: document})
	if err != nil {
		return nil, err
	}

	keywords := output.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return agent.SummaryResult{Summary: output.Summary, Keywords: keywords}, nil
}
