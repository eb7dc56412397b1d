package domain

import "context"

// Embedder turns text into a fixed-length vector. Blank input must yield an
// all-zero vector of Dimension() length rather than an error.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
}
