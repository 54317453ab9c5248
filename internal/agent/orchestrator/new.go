package orchestrator

import (
	"agent-router/internal/agent"
	"agent-router/internal/router"
	"agent-router/pkg/llmprovider"
	pkgLog "agent-router/pkg/log"
)

type Orchestrator struct {
	llm         llmprovider.Generator
	router      router.Router
	registry    *agent.Registry
	l           pkgLog.Logger
	temperature float64
}

var _ UseCase = (*Orchestrator)(nil)

func New(llm llmprovider.Generator, r router.Router, registry *agent.Registry, l pkgLog.Logger, temperature float64) *Orchestrator {
	return &Orchestrator{
		llm:         llm,
		router:      r,
		registry:    registry,
		l:           l,
		temperature: temperature,
	}
}
