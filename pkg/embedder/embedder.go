package embedder

import (
	"context"
	"math"
)

// Embedder generates vector embeddings from text.
type Embedder interface {
	// Embed returns an embedding for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch embeds all texts in one request, preserving input
	// order in the returned vectors.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension returns the width of the output vectors.
	Dimension() int

	// ModelInfo returns a model name/version string for the record.
	ModelInfo() string
}

// l2normalize scales a vector to unit length (important for cosine
// similarity downstream).
func l2normalize(v []float32) {
	var sum float32
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	inv := float32(1.0 / math.Sqrt(float64(sum)))
	for i := range v {
		v[i] *= inv
	}
}
