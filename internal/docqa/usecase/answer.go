package usecase

import (
	"context"
	"fmt"
	"strings"

	"agent-router/internal/docqa"
	"agent-router/pkg/llmprovider"
)

// Answer answers the query grounded in the given documents.
// The returned query is the input query, unchanged.
func (uc *implUseCase) Answer(ctx context.Context, input docqa.AnswerInput) (docqa.AnswerOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return docqa.AnswerOutput{}, docqa.ErrEmptyQuery
	}

	req := llmprovider.NewTextRequest("", fmt.Sprintf(answerPrompt, buildContext(input.Documents), input.Query))
	req.Temperature = uc.temperature

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "internal.docqa.usecase.Answer: llm.GenerateContent: %v", err)
		return docqa.AnswerOutput{}, fmt.Errorf("generate answer: %w", err)
	}

	return docqa.AnswerOutput{
		Query:    input.Query,
		Response: strings.TrimSpace(resp.Text()),
	}, nil
}

// buildContext joins the documents with a blank line, keeping their order.
func buildContext(documents []string) string {
	return strings.Join(documents, documentSeparator)
}
