package tools

import (
	"context"

	"agent-router/internal/agent"
	"agent-router/internal/webqa"
)

// SearchInternetTool answers a question from live web search results.
type SearchInternetTool struct {
	uc webqa.UseCase
}

// NewSearchInternetTool creates a new web search tool.
func NewSearchInternetTool(uc webqa.UseCase) agent.Capability {
	return &SearchInternetTool{uc: uc}
}

func (t *SearchInternetTool) Selection() agent.Selection {
	return agent.SelectWebAnswer
}

func (t *SearchInternetTool) Description() string {
	return "Fetches real-time, up-to-date information from the internet to answer a user's question. Use this tool when the question needs current information or external knowledge not present in provided documents."
}

func (t *SearchInternetTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_query": map[string]interface{}{
				"type":        "string",
				"description": "The question that requires an internet search",
			},
		},
		"required": []string{"user_query"},
	}
}

func (t *SearchInternetTool) Invoke(ctx context.Context, args map[string]interface{}) (agent.Result, error) {
	query, err := stringArg(args, "user_query")
	if err != nil {
		return nil, err
	}

	output, err := t.uc.Search(ctx, webqa.SearchInput{Query: query})
	if err != nil {
		return nil, err
	}
	return agent.WebAnswerResult{Query: output.Query, Text: output.Response, Source: output.Source}, nil
}
