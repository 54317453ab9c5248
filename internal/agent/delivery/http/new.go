package http

import (
	"agent-router/internal/agent/orchestrator"
	"agent-router/pkg/log"
)

type handler struct {
	l  log.Logger
	uc orchestrator.UseCase
}

// New creates a new HTTP handler for the orchestrator.
func New(l log.Logger, uc orchestrator.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
