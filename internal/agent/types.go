package agent

import (
	"context"

	"agent-router/pkg/llmprovider"
)

// Selection is the orchestrator's routing decision for one request.
type Selection string

const (
	SelectSummarize      Selection = "summarize_document"
	SelectContextAnswer  Selection = "answer_query_from_documents"
	SelectWebAnswer      Selection = "search_internet"
	SelectDirectResponse Selection = "direct_response"
	SelectErrorFallback  Selection = "error_fallback"
)

// toolSelections are the selections backed by a capability.
var toolSelections = map[Selection]bool{
	SelectSummarize:     true,
	SelectContextAnswer: true,
	SelectWebAnswer:     true,
}

// ParseTool maps a tool name chosen by the model to its Selection.
// It reports false for names outside the fixed tool set.
func ParseTool(name string) (Selection, bool) {
	s := Selection(name)
	return s, toolSelections[s]
}

// IsTool reports whether s names a capability.
func (s Selection) IsTool() bool {
	return toolSelections[s]
}

func (s Selection) String() string {
	return string(s)
}

// Capability is a single-step task the orchestrator can route a query to.
type Capability interface {
	// Selection identifies the capability; its string form is the
	// function name exposed to the model.
	Selection() Selection

	// Description returns what the capability does (for LLM).
	Description() string

	// Parameters returns JSON schema for the capability arguments.
	Parameters() map[string]interface{}

	// Invoke runs the capability with the arguments chosen by the model.
	Invoke(ctx context.Context, args map[string]interface{}) (Result, error)
}

// Registry holds the capabilities in registration order.
// It is built once at startup and read-only afterwards.
type Registry struct {
	capabilities map[Selection]Capability
	order        []Selection
}

// NewRegistry creates a registry with the given capabilities.
func NewRegistry(capabilities ...Capability) *Registry {
	r := &Registry{capabilities: make(map[Selection]Capability)}
	for _, c := range capabilities {
		r.Register(c)
	}
	return r
}

// Register adds a capability. Registering the same selection twice
// replaces the earlier capability and keeps its position.
func (r *Registry) Register(c Capability) {
	if _, ok := r.capabilities[c.Selection()]; !ok {
		r.order = append(r.order, c.Selection())
	}
	r.capabilities[c.Selection()] = c
}

// Get retrieves a capability by tool name.
func (r *Registry) Get(name string) (Capability, bool) {
	c, ok := r.capabilities[Selection(name)]
	return c, ok
}

// List returns all registered capabilities in registration order.
func (r *Registry) List() []Capability {
	out := make([]Capability, 0, len(r.order))
	for _, s := range r.order {
		out = append(out, r.capabilities[s])
	}
	return out
}

// ToFunctionDefinitions converts capabilities to LLM function calling format.
func (r *Registry) ToFunctionDefinitions() []llmprovider.Tool {
	tools := make([]llmprovider.Tool, 0, len(r.order))
	for _, c := range r.List() {
		tools = append(tools, llmprovider.Tool{
			Name:        c.Selection().String(),
			Description: c.Description(),
			Parameters:  c.Parameters(),
		})
	}
	return tools
}
