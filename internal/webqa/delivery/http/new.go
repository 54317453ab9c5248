package http

import (
	"agent-router/internal/webqa"
	"agent-router/pkg/log"
)

type handler struct {
	l  log.Logger
	uc webqa.UseCase
}

// New creates a new HTTP handler for the webqa domain.
func New(l log.Logger, uc webqa.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
