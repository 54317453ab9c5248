package http

import (
	"agent-router/internal/summary"
	"agent-router/pkg/log"
)

type handler struct {
	l  log.Logger
	uc summary.UseCase
}

// New creates a new HTTP handler for the summary domain.
func New(l log.Logger, uc summary.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
