package docqa

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Answer(ctx context.Context, input AnswerInput) (AnswerOutput, error)
}
