package embedder

import (
	"context"
	"hash/fnv"
	"strings"
)

// LocalEmbedder produces deterministic vectors without calling any
// external model, by hashing words into buckets. The vectors carry no
// real semantic meaning; it exists for offline runs and tests.
type LocalEmbedder struct {
	dim int
}

// NewLocalEmbedder creates a local hash-based embedder.
func NewLocalEmbedder(dimension int) *LocalEmbedder {
	return &LocalEmbedder{dim: dimension}
}

// Embed generates a bag-of-words style vector from text.
func (e *LocalEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dim)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(word))
		vec[int(h.Sum32()%uint32(e.dim))]++
	}
	l2normalize(vec)
	return vec, nil
}

// EmbedBatch generates embeddings for multiple texts.
func (e *LocalEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		v, err := e.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
	}
	return vectors, nil
}

// Dimension returns the embedding dimension.
func (e *LocalEmbedder) Dimension() int {
	return e.dim
}

// ModelInfo returns model information.
func (e *LocalEmbedder) ModelInfo() string {
	return "local-hash-v1"
}
