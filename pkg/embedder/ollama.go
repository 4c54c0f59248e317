package embedder

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/ollama/ollama/api"
)

// OllamaEmbedder uses a local Ollama server for embeddings.
type OllamaEmbedder struct {
	client *api.Client
	model  string
	dim    int
}

// NewOllamaEmbedder creates an embedder backed by an Ollama server.
// When host is empty, OLLAMA_HOST is consulted, falling back to the
// default local address.
func NewOllamaEmbedder(host, model string) (*OllamaEmbedder, error) {
	if model == "" {
		return nil, errors.New("ollama embedding model not set")
	}
	if host == "" {
		host = os.Getenv("OLLAMA_HOST")
	}
	if host == "" {
		host = "http://localhost:11434"
	}

	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}

	httpClient := &http.Client{Timeout: 5 * time.Minute}
	return &OllamaEmbedder{
		client: api.NewClient(base, httpClient),
		model:  model,
	}, nil
}

// Embed generates an embedding for a single text.
func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if len(text) == 0 {
		return nil, errors.New("cannot embed empty text")
	}
	vectors, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch sends all texts in one embed request. The server returns
// one vector per input, in order; a short response is rejected.
func (e *OllamaEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, errors.New("cannot embed an empty batch")
	}

	resp, err := e.client.Embed(ctx, &api.EmbedRequest{
		Model: e.model,
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("ollama embed request: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("ollama returned %d embeddings for %d inputs", len(resp.Embeddings), len(texts))
	}

	vectors := make([][]float32, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		v := make([]float32, len(emb))
		copy(v, emb)
		l2normalize(v)
		vectors[i] = v
	}

	// The vector width depends on the model and is only known after the
	// first response.
	if e.dim == 0 && len(vectors) > 0 {
		e.dim = len(vectors[0])
	}
	return vectors, nil
}

// Dimension returns the embedding dimension, or 0 before the first
// successful request.
func (e *OllamaEmbedder) Dimension() int {
	return e.dim
}

// ModelInfo returns model information.
func (e *OllamaEmbedder) ModelInfo() string {
	return "ollama-" + e.model
}
