package tavily

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"agent-router/pkg/websearch"
)

// Client searches the web through the Tavily API.
type Client struct {
	client *resty.Client
}

// New creates a Tavily search client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := DefaultTimeout
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("tavily: invalid timeout: %w", err)
		}
		timeout = d
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetAuthToken(cfg.APIKey)

	return &Client{client: client}, nil
}

// Name implements websearch.Searcher.
func (c *Client) Name() string {
	return "tavily"
}

// Search implements websearch.Searcher.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]websearch.Result, error) {
	if maxResults <= 0 {
		maxResults = websearch.DefaultMaxResults
	}

	var out searchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(searchRequest{
			Query:       query,
			MaxResults:  maxResults,
			SearchDepth: searchDepth,
		}).
		SetResult(&out).
		SetError(&APIError{}).
		Post(searchPath)
	if err != nil {
		return nil, fmt.Errorf("tavily: request failed: %w", err)
	}

	if resp.IsError() {
		if apiErr, ok := resp.Error().(*APIError); ok && apiErr.Detail.Error != "" {
			return nil, fmt.Errorf("tavily: %s (status %d)", apiErr.Detail.Error, resp.StatusCode())
		}
		return nil, fmt.Errorf("tavily: API error: %s (status %d)", resp.String(), resp.StatusCode())
	}

	results := make([]websearch.Result, 0, len(out.Results))
	for _, r := range out.Results {
		results = append(results, websearch.Result{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Content,
		})
	}
	return results, nil
}
