package assistant

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	SubmitCommand(ctx context.Context, input SubmitCommandInput) (Response, error)
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)
	Status(ctx context.Context) StatusOutput
}
