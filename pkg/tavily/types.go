package tavily

import "fmt"

// Config holds the Tavily client configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout string
}

// Validate fills defaults and checks required fields.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("tavily: APIKey is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	return nil
}

type searchRequest struct {
	Query       string `json:"query"`
	MaxResults  int    `json:"max_results"`
	SearchDepth string `json:"search_depth"`
}

type searchResponse struct {
	Query   string         `json:"query"`
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// APIError is the error body returned by the Tavily API.
type APIError struct {
	Detail struct {
		Error string `json:"error"`
	} `json:"detail"`
}
