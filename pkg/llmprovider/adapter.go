package llmprovider

import (
	"context"
	"errors"

	"agent-router/pkg/gemini"
	"agent-router/pkg/openai"
)

// GeminiAdapter exposes a gemini client as a Provider.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	gReq := &gemini.Request{
		Messages:    make([]gemini.Content, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		sys := toGemini(*req.SystemInstruction)
		gReq.SystemInstruction = &sys
	}
	for _, m := range req.Messages {
		gReq.Messages = append(gReq.Messages, toGemini(m))
	}
	for _, t := range req.Tools {
		gReq.Tools = append(gReq.Tools, gemini.Tool(t))
	}

	resp, err := a.client.GenerateContent(ctx, gReq)
	if err != nil {
		var apiErr *gemini.APIError
		status := 0
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		return nil, classify(a.Name(), status, err)
	}

	out := &Response{
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	out.Content.Role = RoleAssistant
	for _, p := range resp.Content.Parts {
		part := Part{Text: p.Text}
		if p.FunctionCall != nil {
			part.FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		out.Content.Parts = append(out.Content.Parts, part)
	}
	if resp.Usage != nil {
		out.Usage = (*Usage)(resp.Usage)
	}
	return out, nil
}

func (a *GeminiAdapter) Name() string  { return "gemini" }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

func toGemini(m Message) gemini.Content {
	c := gemini.Content{Role: m.Role, Parts: make([]gemini.Part, 0, len(m.Parts))}
	for _, p := range m.Parts {
		part := gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			part.FunctionCall = &gemini.FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		c.Parts = append(c.Parts, part)
	}
	return c
}

// OpenAIAdapter serves every OpenAI-compatible vendor (openai, qwen,
// deepseek). name is the vendor label used in logs and metrics.
type OpenAIAdapter struct {
	client openai.IOpenAI
	name   string
}

func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, name: name}
}

func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oReq := &openai.Request{
		Messages:    make([]openai.Content, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		sys := toOpenAI(*req.SystemInstruction)
		oReq.SystemInstruction = &sys
	}
	for _, m := range req.Messages {
		oReq.Messages = append(oReq.Messages, toOpenAI(m))
	}
	for _, t := range req.Tools {
		oReq.Tools = append(oReq.Tools, openai.Tool(t))
	}

	resp, err := a.client.GenerateContent(ctx, oReq)
	if err != nil {
		return nil, classify(a.name, openai.StatusCode(err), err)
	}

	out := &Response{
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Model != "" {
		out.ModelName = resp.Model
	}
	out.Content.Role = RoleAssistant
	for _, p := range resp.Content.Parts {
		part := Part{Text: p.Text}
		if p.FunctionCall != nil {
			fc := FunctionCall(*p.FunctionCall)
			part.FunctionCall = &fc
		}
		out.Content.Parts = append(out.Content.Parts, part)
	}
	if resp.Usage != nil {
		out.Usage = (*Usage)(resp.Usage)
	}
	return out, nil
}

func (a *OpenAIAdapter) Name() string  { return a.name }
func (a *OpenAIAdapter) Model() string { return a.client.Model() }

func toOpenAI(m Message) openai.Content {
	c := openai.Content{Role: m.Role, Parts: make([]openai.Part, 0, len(m.Parts))}
	for _, p := range m.Parts {
		part := openai.Part{Text: p.Text}
		if p.FunctionCall != nil {
			fc := openai.FunctionCall(*p.FunctionCall)
			part.FunctionCall = &fc
		}
		c.Parts = append(c.Parts, part)
	}
	return c
}
