package llmprovider

import "context"

// Generator produces one model turn. Domain packages depend on this
// rather than on Manager so tests can script replies.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Provider is a single vendor behind the Manager.
type Provider interface {
	Generator
	// Name is the vendor label used in logs and metrics, e.g. "qwen".
	Name() string
	Model() string
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Request struct {
	SystemInstruction *Message
	Messages          []Message
	// Tools are offered for function calling; empty means plain text.
	Tools       []Tool
	Temperature float64
	MaxTokens   int
}

type Message struct {
	Role  string
	Parts []Part
}

// Part holds either text or a function call chosen by the model.
type Part struct {
	Text         string
	FunctionCall *FunctionCall
}

// Tool is a function the model may call. Parameters is a JSON Schema object.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

type FunctionCall struct {
	ID   string
	Name string
	Args map[string]any
}

type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
