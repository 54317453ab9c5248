package gemini

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

type geminiImpl struct {
	client *resty.Client
	model  string
}

// GenerateContent calls models/{model}:generateContent. Non-2xx answers
// come back as *APIError.
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var (
		result  generateResponse
		errBody errorEnvelope
	)

	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("model", g.model).
		SetBody(toWire(req)).
		SetResult(&result).
		SetError(&errBody).
		ExpectContentType("application/json").
		Post("/models/{model}:generateContent")
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Status:     errBody.Error.Status,
			Message:    errBody.Error.Message,
		}
	}

	return fromWire(&result), nil
}

func (g *geminiImpl) Model() string {
	return g.model
}
