package usecase

import (
	"context"
	"fmt"
	"strings"

	"agent-router/internal/webqa"
	"agent-router/pkg/llmprovider"
	"agent-router/pkg/websearch"
)

// Search answers the query from live web search results.
func (uc *implUseCase) Search(ctx context.Context, input webqa.SearchInput) (webqa.SearchOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return webqa.SearchOutput{}, webqa.ErrEmptyQuery
	}

	results, err := uc.searcher.Search(ctx, input.Query, uc.maxResults)
	if err != nil {
		uc.l.Errorf(ctx, "internal.webqa.usecase.Search: searcher.Search: %v", err)
		return webqa.SearchOutput{}, fmt.Errorf("web search: %w", err)
	}

	uc.l.Debug(ctx, "internal.webqa.usecase.Search: search completed",
		"provider", uc.searcher.Name(),
		"results", len(results),
	)

	req := llmprovider.NewTextRequest("", fmt.Sprintf(answerPrompt, buildContext(results), input.Query))
	req.Temperature = uc.temperature

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "internal.webqa.usecase.Search: llm.GenerateContent: %v", err)
		return webqa.SearchOutput{}, fmt.Errorf("generate answer: %w", err)
	}

	return webqa.SearchOutput{
		Query:    input.Query,
		Response: strings.TrimSpace(resp.Text()),
		Source:   primarySource(results),
	}, nil
}

// buildContext renders one block per result, or a fixed sentence when
// there are none.
func buildContext(results []websearch.Result) string {
	if len(results) == 0 {
		return noResultsContext
	}

	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, fmt.Sprintf("Title: %s\nURL: %s\nSnippet: %s",
			orMissing(r.Title), orMissing(r.URL), orMissing(r.Snippet)))
	}
	return strings.Join(blocks, resultSeparator)
}

func primarySource(results []websearch.Result) *string {
	if len(results) == 0 || results[0].URL == "" {
		return nil
	}
	url := results[0].URL
	return &url
}

func orMissing(s string) string {
	if s == "" {
		return missingField
	}
	return s
}
