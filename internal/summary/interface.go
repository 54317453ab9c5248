package summary

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Summarize(ctx context.Context, input SummarizeInput) (SummarizeOutput, error)
}
