package llm

import "context"

// Provider is the single opaque call into the hosted generation model. The
// prompt is fully rendered by the caller; the response is the raw model text.
type Provider interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Close() error
}

// Embedder produces a vector embedding for a block of text.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}
