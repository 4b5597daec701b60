package llm

import "context"

// Generator is the minimal interface the valuation handler depends on.
// It abstracts the language model provider so tests can substitute a double.
type Generator interface {
	// GenerateText sends one prompt and returns the model's raw text reply.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
