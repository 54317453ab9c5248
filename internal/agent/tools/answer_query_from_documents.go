package tools

import (
	"context"

	"agent-router/internal/agent"
	"agent-router/internal/docqa"
)

// AnswerFromDocumentsTool answers a question from documents supplied by the user.
type AnswerFromDocumentsTool struct {
	uc docqa.UseCase
}

// NewAnswerFromDocumentsTool creates a new context answer tool.
func NewAnswerFromDocumentsTool(uc docqa.UseCase) agent.Capability {
	return &AnswerFromDocumentsTool{uc: uc}
}

func (t *AnswerFromDocumentsTool) Selection() agent.Selection {
	return agent.SelectContextAnswer
}

func (t *AnswerFromDocumentsTool) Description() string {
	return "Answers a user's question based on provided document content. Use this tool when the user provides a question AND specific context or documents to answer from. Requires both user_query and documents_list."
}

func (t *AnswerFromDocumentsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_query": map[string]interface{}{
				"type":        "string",
				"description": "The question to answer",
			},
			"documents_list": map[string]interface{}{
				"type":        "array",
				"description": "The documents to answer from, one string per document",
				"items": map[string]interface{}{
					"type": "string",
				},
			},
		},
		"required": []string{"user_query", "documents_list"},
	}
}

func (t *AnswerFromDocumentsTool) Invoke(ctx context.Context, args map[string]interface{}) (agent.Result, error) {
	query, err := stringArg(args, "user_query")
	if err != nil {
		return nil, err
	}
	documents, err := stringListArg(args, "documents_list")
	if err != nil {
		return nil, err
	}

	output, err := t.uc.Answer(ctx, docqa.AnswerInput{Query: query, Documents: documents})
	if err != nil {
		return nil, err
	}
	return agent.AnswerResult{Query: output.Query, Text: output.Response}, nil
}
