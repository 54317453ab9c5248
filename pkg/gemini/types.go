package gemini

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds Gemini client configuration.
type Config struct {
	APIKey  string
	Model   string
	APIURL  string
	Timeout time.Duration

	// HTTPClient replaces the default transport, mainly for tests.
	HTTPClient *http.Client
}

// Validate fills defaults and checks required fields.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("gemini: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// APIError is a non-2xx answer from the Gemini API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gemini: API error %d", e.StatusCode)
	}
	return fmt.Sprintf("gemini: API error %d %s: %s", e.StatusCode, e.Status, e.Message)
}

// Request is one generateContent call.
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Tools             []Tool
	Temperature       float64
	MaxTokens         int
}

// Content is one turn. Roles other than "assistant" and "model" are sent
// as "user".
type Content struct {
	Role  string
	Parts []Part
}

type Part struct {
	Text         string
	FunctionCall *FunctionCall
}

// Tool becomes one functionDeclaration; Parameters is an OpenAPI schema.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// FunctionCall carries no ID; Gemini matches calls by name.
type FunctionCall struct {
	Name string
	Args map[string]any
}

// Response holds the first candidate only.
type Response struct {
	Content Content
	Usage   *Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
