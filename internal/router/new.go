package router

import (
	"context"

	"agent-router/internal/agent"
	"agent-router/pkg/llmprovider"
	"agent-router/pkg/log"
)

// Router is the interface for tool selection
type Router interface {
	Route(ctx context.Context, query string) (Decision, error)
}

// ToolRouter asks the model to pick one capability by function calling.
type ToolRouter struct {
	llm         llmprovider.Generator
	registry    *agent.Registry
	l           log.Logger
	temperature float64
}

// Ensure ToolRouter implements Router interface
var _ Router = (*ToolRouter)(nil)

// New creates a new ToolRouter
func New(llm llmprovider.Generator, registry *agent.Registry, l log.Logger, temperature float64) *ToolRouter {
	return &ToolRouter{
		llm:         llm,
		registry:    registry,
		l:           l,
		temperature: temperature,
	}
}
