package usecase

import (
	"agent-router/pkg/llmprovider"
	"agent-router/pkg/log"
)

// implUseCase is the private implementation of summary.UseCase.
type implUseCase struct {
	llm         llmprovider.Generator
	l           log.Logger
	temperature float64
}

// New creates a new summary UseCase implementation.
func New(llm llmprovider.Generator, l log.Logger, temperature float64) *implUseCase {
	return &implUseCase{
		llm:         llm,
		l:           l,
		temperature: temperature,
	}
}
