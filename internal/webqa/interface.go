package webqa

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
}
