package docvec

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoDocuments means the chunk collection decoded fine but holds
	// zero segments; embedding an empty set is meaningless.
	ErrNoDocuments = errors.New("no segments to embed")

	// ErrAlignment means the embedding capability returned a vector list
	// inconsistent with the submitted texts. Accepting it would corrupt
	// the record's index alignment, so the build fails instead.
	ErrAlignment = errors.New("embedding response misaligned with input")
)

// Embedder is the narrow embedding capability Build depends on. The
// batch call is expected to preserve input order.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	ModelInfo() string
}

// Build assembles an embedding Record from segments. The embedding
// capability is invoked exactly once with the full ordered text list so
// it can batch internally. Build performs no I/O; persistence is the
// caller's job and happens only after Build succeeds.
func Build(ctx context.Context, segments []Segment, emb Embedder) (*Record, error) {
	if len(segments) == 0 {
		return nil, ErrNoDocuments
	}

	docs := make([]string, len(segments))
	metadatas := make([]map[string]string, len(segments))
	for i, seg := range segments {
		docs[i] = seg.Text
		metadatas[i] = seg.Metadata
	}

	vectors, err := emb.EmbedBatch(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("embedding %d segments: %w", len(docs), err)
	}
	if len(vectors) != len(docs) {
		return nil, fmt.Errorf("%w: got %d vectors for %d texts", ErrAlignment, len(vectors), len(docs))
	}

	// All vectors must share the width of the first one; a ragged
	// response indicates a malfunctioning embedding capability.
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("%w: vector %d has dimension %d, want %d", ErrAlignment, i, len(v), dim)
		}
	}

	return &Record{
		Docs:       docs,
		Metadatas:  metadatas,
		Embeddings: vectors,
		Model:      emb.ModelInfo(),
		Dimension:  dim,
	}, nil
}
