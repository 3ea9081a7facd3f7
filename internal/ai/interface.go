package ai

import (
	"context"
)

// TextGenerator defines the contract for interacting with generative-text models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type TextGenerator interface {
	// GenerateText sends the prompt to the model and returns the raw text reply.
	// The model is an unreliable data source: the reply is plain text with no
	// shape guarantee and must be validated by the caller before use.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
