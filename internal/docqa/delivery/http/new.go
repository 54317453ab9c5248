package http

import (
	"agent-router/internal/docqa"
	"agent-router/pkg/log"
)

type handler struct {
	l  log.Logger
	uc docqa.UseCase
}

// New creates a new HTTP handler for the docqa domain.
func New(l log.Logger, uc docqa.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
