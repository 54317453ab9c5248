package orchestrator

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Process routes the query to at most one capability and returns the
	// finalized answer. It fails only when the Route stage fails.
	Process(ctx context.Context, query string) (Output, error)
}
