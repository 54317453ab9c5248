package openai

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds the client configuration. BaseURL selects the vendor;
// any OpenAI-compatible endpoint works.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration

	// HTTPClient overrides Timeout when set.
	HTTPClient *http.Client
}

// Validate fills defaults and checks required fields.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = BaseURLOpenAI
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// Request is one chat completion call. SystemInstruction becomes the
// leading system message.
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Tools             []Tool
	Temperature       float64
	MaxTokens         int
}

type Content struct {
	Role  string
	Parts []Part
}

// Part carries text or a tool call; parts of one Content are merged
// into a single chat message.
type Part struct {
	Text         string
	FunctionCall *FunctionCall
}

// Tool is sent as a function tool with Parameters as its JSON Schema.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// FunctionCall is a tool call with its arguments already decoded from JSON.
type FunctionCall struct {
	ID   string
	Name string
	Args map[string]any
}

// Response holds the first choice of a completion.
type Response struct {
	Content Content
	Model   string
	Usage   *Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
