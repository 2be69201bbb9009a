package chatbot

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Answer routes one question and always produces an answer.
	// The error return is reserved for misconfiguration; data and
	// fallback failures are reported inside the answer text.
	Answer(ctx context.Context, input AnswerInput) (AnswerOutput, error)
}
