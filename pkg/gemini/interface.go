package gemini

import (
	"context"

	"github.com/go-resty/resty/v2"
)

// IGemini is a generateContent client. Implementations are safe for
// concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a Gemini client. The API key travels in a header, never in the URL.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := resty.New()
	if cfg.HTTPClient != nil {
		client = resty.NewWithClient(cfg.HTTPClient)
	}
	client.
		SetBaseURL(cfg.APIURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader(apiKeyHeader, cfg.APIKey)

	return &geminiImpl{client: client, model: cfg.Model}, nil
}
