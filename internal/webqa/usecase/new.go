package usecase

import (
	"agent-router/pkg/llmprovider"
	"agent-router/pkg/log"
	"agent-router/pkg/websearch"
)

// implUseCase is the private implementation of webqa.UseCase.
type implUseCase struct {
	llm         llmprovider.Generator
	searcher    websearch.Searcher
	l           log.Logger
	maxResults  int
	temperature float64
}

// New creates a new webqa UseCase implementation.
// maxResults <= 0 selects websearch.DefaultMaxResults.
func New(llm llmprovider.Generator, searcher websearch.Searcher, l log.Logger, maxResults int, temperature float64) *implUseCase {
	if maxResults <= 0 {
		maxResults = websearch.DefaultMaxResults
	}
	return &implUseCase{
		llm:         llm,
		searcher:    searcher,
		l:           l,
		maxResults:  maxResults,
		temperature: temperature,
	}
}
