package gsearch

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"agent-router/pkg/websearch"
)

// The Custom Search JSON API returns at most 10 results per page.
const maxPageSize = 10

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Config holds the Custom Search client configuration.
// APIKey takes precedence over CredentialsPath; with neither, application
// default credentials are used.
type Config struct {
	APIKey          string
	EngineID        string
	CredentialsPath string

	// Endpoint and HTTPClient override the Google endpoint, for tests.
	Endpoint   string
	HTTPClient *http.Client
}

// Client searches the web through Google Programmable Search.
type Client struct {
	service  *customsearch.Service
	engineID string
}

// New creates a Custom Search client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.EngineID == "" {
		return nil, fmt.Errorf("gsearch: EngineID is required")
	}

	opts, err := clientOptions(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gsearch: failed to create custom search service: %w", err)
	}
	return &Client{service: svc, engineID: cfg.EngineID}, nil
}

func clientOptions(ctx context.Context, cfg Config) ([]option.ClientOption, error) {
	var opts []option.ClientOption
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	switch {
	case cfg.HTTPClient != nil:
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	case cfg.CredentialsPath != "":
		data, err := os.ReadFile(cfg.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("gsearch: failed to read credentials file: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, cloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("gsearch: invalid credentials file: %w", err)
		}
		opts = append(opts, option.WithTokenSource(creds.TokenSource))
	default:
		creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("gsearch: no API key and no default credentials: %w", err)
		}
		opts = append(opts, option.WithTokenSource(creds.TokenSource))
	}
	return opts, nil
}

// Name implements websearch.Searcher.
func (c *Client) Name() string {
	return "google"
}

// Search implements websearch.Searcher.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]websearch.Result, error) {
	if maxResults <= 0 {
		maxResults = websearch.DefaultMaxResults
	}
	if maxResults > maxPageSize {
		maxResults = maxPageSize
	}

	res, err := c.service.Cse.List().
		Q(query).
		Cx(c.engineID).
		Num(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("gsearch: search failed: %w", err)
	}

	results := make([]websearch.Result, 0, len(res.Items))
	for _, item := range res.Items {
		if item == nil {
			continue
		}
		results = append(results, websearch.Result{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		})
	}
	return results, nil
}
