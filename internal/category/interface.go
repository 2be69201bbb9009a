package category

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Classify assigns exactly one label from Labels to a transaction description.
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)
}
