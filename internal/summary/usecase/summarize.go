package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"agent-router/internal/summary"
	"agent-router/pkg/llmprovider"
)

// Summarize produces a summary and a keyword list for the document.
// Both generation calls run concurrently; the first failure cancels the other.
func (uc *implUseCase) Summarize(ctx context.Context, input summary.SummarizeInput) (summary.SummarizeOutput, error) {
	if strings.TrimSpace(input.Document) == "" {
		return summary.SummarizeOutput{}, summary.ErrEmptyDocument
	}

	var summaryText, keywordsText string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := uc.generate(gctx, fmt.Sprintf(summaryPrompt, input.Document))
		if err != nil {
			return fmt.Errorf("generate summary: %w", err)
		}
		summaryText = text
		return nil
	})
	g.Go(func() error {
		text, err := uc.generate(gctx, fmt.Sprintf(keywordsPrompt, input.Document))
		if err != nil {
			return fmt.Errorf("extract keywords: %w", err)
		}
		keywordsText = text
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "internal.summary.usecase.Summarize: %v", err)
		return summary.SummarizeOutput{}, err
	}

	return summary.SummarizeOutput{
		Summary:  summaryText,
		Keywords: parseKeywords(keywordsText),
	}, nil
}

func (uc *implUseCase) generate(ctx context.Context, prompt string) (string, error) {
	req := llmprovider.NewTextRequest("", prompt)
	req.Temperature = uc.temperature

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

// parseKeywords splits a comma-separated list, trimming each entry and
// dropping empty ones. Order and duplicates are kept.
func parseKeywords(raw string) []string {
	keywords := make([]string, 0)
	for _, kw := range strings.Split(raw, ",") {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
